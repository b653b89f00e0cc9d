package content

import (
	"strconv"
	"strings"
	"time"
)

// Chakra is one row of the fixed chakra table.
type Chakra struct {
	Name    string
	Color   string
	Element string
	Stones  []string
}

// Season is one row of the fixed season table.
type Season struct {
	Name   string
	Energy string
	Stones []string
}

var chakras = []Chakra{
	{Name: "Root", Color: "Red", Element: "Earth", Stones: []string{"Red Jasper", "Black Tourmaline", "Hematite", "Smoky Quartz", "Garnet"}},
	{Name: "Sacral", Color: "Orange", Element: "Water", Stones: []string{"Carnelian", "Orange Calcite", "Moonstone", "Sunstone", "Tiger's Eye"}},
	{Name: "Solar Plexus", Color: "Yellow", Element: "Fire", Stones: []string{"Citrine", "Tiger's Eye", "Yellow Jasper", "Pyrite", "Amber"}},
	{Name: "Heart", Color: "Green", Element: "Air", Stones: []string{"Rose Quartz", "Green Aventurine", "Malachite", "Rhodonite", "Jade"}},
	{Name: "Throat", Color: "Blue", Element: "Ether", Stones: []string{"Sodalite", "Blue Lace Agate", "Aquamarine", "Lapis Lazuli", "Amazonite"}},
	{Name: "Third Eye", Color: "Indigo", Element: "Light", Stones: []string{"Amethyst", "Labradorite", "Fluorite", "Lapis Lazuli", "Iolite"}},
	{Name: "Crown", Color: "Violet", Element: "Thought", Stones: []string{"Clear Quartz", "Selenite", "Amethyst", "Howlite", "Lepidolite"}},
}

var seasons = []Season{
	{Name: "Spring", Energy: "renewal", Stones: []string{"Green Aventurine", "Rose Quartz", "Moss Agate", "Prehnite", "Amazonite"}},
	{Name: "Summer", Energy: "abundance", Stones: []string{"Citrine", "Sunstone", "Carnelian", "Peridot", "Tiger's Eye"}},
	{Name: "Fall", Energy: "grounding", Stones: []string{"Smoky Quartz", "Amber", "Carnelian", "Labradorite", "Picture Jasper"}},
	{Name: "Winter", Energy: "reflection", Stones: []string{"Garnet", "Clear Quartz", "Snowflake Obsidian", "Selenite", "Black Tourmaline"}},
}

var birthstones = map[time.Month]string{
	time.January:   "Garnet",
	time.February:  "Amethyst",
	time.March:     "Aquamarine",
	time.April:     "Clear Quartz",
	time.May:       "Emerald",
	time.June:      "Moonstone",
	time.July:      "Ruby",
	time.August:    "Peridot",
	time.September: "Sapphire",
	time.October:   "Opal",
	time.November:  "Citrine",
	time.December:  "Turquoise",
}

// zodiacs holds the sign that covers most of each month.
var zodiacs = map[time.Month]string{
	time.January:   "Capricorn",
	time.February:  "Aquarius",
	time.March:     "Pisces",
	time.April:     "Aries",
	time.May:       "Taurus",
	time.June:      "Gemini",
	time.July:      "Cancer",
	time.August:    "Leo",
	time.September: "Virgo",
	time.October:   "Libra",
	time.November:  "Scorpio",
	time.December:  "Sagittarius",
}

// Chakras returns the seven chakra rows, root to crown.
func Chakras() []Chakra {
	out := make([]Chakra, len(chakras))
	copy(out, chakras)
	return out
}

// Seasons returns the four season rows starting with Spring.
func Seasons() []Season {
	out := make([]Season, len(seasons))
	copy(out, seasons)
	return out
}

// LookupChakra matches a chakra by name, ignoring case, separators and a trailing "chakra".
// "solar-plexus", "Third Eye Chakra" and "HEART" all match.
func LookupChakra(name string) (Chakra, bool) {
	key := chakraKey(name)
	if key == "" {
		return Chakra{}, false
	}
	for _, c := range chakras {
		if chakraKey(c.Name) == key {
			return c, true
		}
	}
	switch key {
	case "base", "muladhara":
		return chakras[0], true
	case "brow", "ajna":
		return chakras[5], true
	}
	return Chakra{}, false
}

func chakraKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "chakra"))
	return strings.Join(strings.Fields(s), "")
}

// LookupSeason matches a season by name, ignoring case. "Autumn" maps to Fall.
func LookupSeason(name string) (Season, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "autumn" {
		key = "fall"
	}
	for _, s := range seasons {
		if strings.ToLower(s.Name) == key {
			return s, true
		}
	}
	return Season{}, false
}

// SeasonFor derives the season from a calendar month:
// February to April is Spring, May to July Summer, August to October Fall, otherwise Winter.
func SeasonFor(m time.Month) Season {
	switch {
	case m >= time.February && m <= time.April:
		return seasons[0]
	case m >= time.May && m <= time.July:
		return seasons[1]
	case m >= time.August && m <= time.October:
		return seasons[2]
	default:
		return seasons[3]
	}
}

// BirthstoneFor returns the birthstone of a month.
func BirthstoneFor(m time.Month) string {
	return birthstones[m]
}

// ZodiacFor returns the zodiac sign covering most of a month.
func ZodiacFor(m time.Month) string {
	return zodiacs[m]
}

// ParseMonth accepts a full or three-letter English month name, or a number 1-12.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), true
		}
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return m, true
		}
	}
	return 0, false
}
