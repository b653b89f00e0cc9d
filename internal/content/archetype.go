package content

import (
	"strings"

	"github.com/hpungsan/facet/internal/errors"
)

// Archetype names one of the fixed blog content categories.
type Archetype string

const (
	CrystalGuide    Archetype = "crystal_guide"
	ChakraGuide     Archetype = "chakra_guide"
	BirthstoneGuide Archetype = "birthstone_guide"
	HowToGuide      Archetype = "how_to_guide"
	SeasonalGuide   Archetype = "seasonal_guide"
)

// Template is the immutable definition of an archetype: how its title,
// keywords and section outline are phrased before variables are bound.
type Template struct {
	Archetype Archetype
	Category  string

	// TitlePattern, KeywordPatterns and Sections use {name} placeholders.
	TitlePattern    string
	KeywordPatterns []string
	Sections        []string

	// MetaPattern is the search snippet stored with the post.
	MetaPattern string

	// Tags are fixed tags added to every post of this archetype.
	Tags []string

	// PrimaryVar is the context variable that identifies the subject (and becomes a tag).
	PrimaryVar string

	// MinWords is the length the prompt asks the service for.
	MinWords int
}

var registry = map[Archetype]Template{
	CrystalGuide: {
		Archetype:    CrystalGuide,
		Category:     "Crystal Guides",
		TitlePattern: "{crystal} Meaning, Properties and Uses: The Complete Guide",
		MetaPattern:  "Discover {crystal} meaning, healing properties and everyday uses, with practical rituals for {benefit} and tips for cleansing and pairing your stone.",
		KeywordPatterns: []string{
			"{crystal} meaning",
			"{crystal} healing properties",
			"{crystal} benefits",
			"how to use {crystal}",
			"{crystal} for {benefit}",
		},
		Sections: []string{
			"What Is {crystal}?",
			"History and Origins of {crystal}",
			"{crystal} Meaning and Symbolism",
			"Healing Properties of {crystal}",
			"{crystal} for {benefit}",
			"{crystal} and the Chakras",
			"How to Use {crystal} Every Day",
			"Meditation with {crystal}",
			"Cleansing and Charging {crystal}",
			"Stones That Pair Well with {crystal}",
			"How to Spot Real {crystal}",
			"Frequently Asked Questions About {crystal}",
		},
		Tags:       []string{"crystal guide", "crystal meanings"},
		PrimaryVar: "crystal",
		MinWords:   2200,
	},
	ChakraGuide: {
		Archetype:    ChakraGuide,
		Category:     "Chakra Healing",
		TitlePattern: "{chakra} Chakra Crystals: A Complete Healing Guide for {month} {year}",
		MetaPattern:  "The best {chakra} chakra crystals and how to use them: signs of imbalance, placement, a guided meditation and a 7-day practice for {month} {year}.",
		KeywordPatterns: []string{
			"{chakra} chakra crystals",
			"{chakra} chakra healing",
			"{chakra} chakra stones",
			"balance {chakra} chakra",
			"{color} chakra stones",
		},
		Sections: []string{
			"Understanding the {chakra} Chakra",
			"Where the {chakra} Chakra Sits and What It Governs",
			"Signs Your {chakra} Chakra Is Out of Balance",
			"Why Crystals Support {chakra} Chakra Healing",
			"The Top Five {chakra} Chakra Crystals",
			"How to Choose Your {chakra} Chakra Stone",
			"Placing Crystals on the {chakra} Chakra",
			"A Guided {chakra} Chakra Meditation",
			"A 7-Day {chakra} Chakra Practice for {month}",
			"Affirmations for the {chakra} Chakra",
			"Working with the {element} Element",
			"Caring for Your {chakra} Chakra Crystals",
			"Frequently Asked Questions",
		},
		Tags:       []string{"chakra healing", "chakra crystals"},
		PrimaryVar: "chakra",
		MinWords:   2000,
	},
	BirthstoneGuide: {
		Archetype:    BirthstoneGuide,
		Category:     "Birthstones",
		TitlePattern: "{month} Birthstone Guide: {crystal} Meaning, History and Gift Ideas",
		MetaPattern:  "{crystal} is the {month} birthstone. Learn its history, meaning for {zodiac}, healing properties and thoughtful gift ideas.",
		KeywordPatterns: []string{
			"{month} birthstone",
			"{crystal} birthstone meaning",
			"{month} birthstone jewelry",
			"{crystal} for {zodiac}",
		},
		Sections: []string{
			"Meet {crystal}, the {month} Birthstone",
			"The History of {crystal} as a Birthstone",
			"{crystal} Meaning and Symbolism",
			"{crystal} and {zodiac}",
			"Healing Properties of {crystal}",
			"Colors and Varieties of {crystal}",
			"Wearing {crystal} Jewelry",
			"Gift Ideas for {month} Birthdays",
			"Caring for {crystal}",
			"Frequently Asked Questions",
		},
		Tags:       []string{"birthstones", "birthstone guide"},
		PrimaryVar: "crystal",
		MinWords:   1600,
	},
	HowToGuide: {
		Archetype:    HowToGuide,
		Category:     "How-To",
		TitlePattern: "How to Use {crystal} for {benefit}: A Step-by-Step Guide",
		MetaPattern:  "A step-by-step guide to using {crystal} for {benefit}: cleansing, intention setting, placement and a short daily meditation.",
		KeywordPatterns: []string{
			"how to use {crystal}",
			"{crystal} for {benefit}",
			"{crystal} ritual",
			"{crystal} meditation",
		},
		Sections: []string{
			"Why {crystal} Supports {benefit}",
			"What You Need Before You Begin",
			"Step 1: Cleanse Your {crystal}",
			"Step 2: Set an Intention for {benefit}",
			"Step 3: Place or Wear {crystal}",
			"Step 4: A Short {crystal} Meditation",
			"Building a Daily {crystal} Habit",
			"Frequently Asked Questions",
		},
		Tags:       []string{"how-to", "crystal rituals"},
		PrimaryVar: "crystal",
		MinWords:   1600,
	},
	SeasonalGuide: {
		Archetype:    SeasonalGuide,
		Category:     "Seasonal Guides",
		TitlePattern: "Best Crystals for {season} {year}: Harnessing the Energy of {energy}",
		MetaPattern:  "The best crystals for {season} {year}, with a crystal grid, morning and evening rituals and a 7-day practice built around {energy}.",
		KeywordPatterns: []string{
			"{season} crystals",
			"crystals for {season}",
			"{season} crystal rituals",
			"{season} energy",
			"{month} crystals",
		},
		Sections: []string{
			"The Energy of {season}",
			"Why Your Crystal Practice Should Change with the Seasons",
			"The Top Five Crystals for {season}",
			"A {season} Crystal Grid",
			"Morning Ritual for {season}",
			"Evening Ritual for {season}",
			"Crystals for {month} Intentions",
			"A 7-Day {season} Practice",
			"Cleansing Crystals in {season}",
			"Seasonal Crystal Care",
			"Frequently Asked Questions",
		},
		Tags:       []string{"seasonal guide", "crystal rituals"},
		PrimaryVar: "season",
		MinWords:   1800,
	},
}

var aliases = map[string]Archetype{
	"crystal":    CrystalGuide,
	"chakra":     ChakraGuide,
	"birthstone": BirthstoneGuide,
	"howto":      HowToGuide,
	"how-to":     HowToGuide,
	"how_to":     HowToGuide,
	"seasonal":   SeasonalGuide,
	"season":     SeasonalGuide,
}

// order fixes the iteration order for Archetypes.
var order = []Archetype{CrystalGuide, ChakraGuide, BirthstoneGuide, HowToGuide, SeasonalGuide}

// Lookup returns the template for an archetype name or one of its short aliases.
func Lookup(name string) (Template, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		key = string(a)
	}
	t, ok := registry[Archetype(key)]
	if !ok {
		return Template{}, errors.NewUnknownArchetype(name)
	}
	return t, nil
}

// Archetypes lists every registered archetype in a stable order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(order))
	copy(out, order)
	return out
}
