package content

import (
	"fmt"
	"strings"
	"time"
)

// StrictExtraWords is added to the minimum length on the retry prompt.
const StrictExtraWords = 500

// Prompt is the instruction sent to the text generation service.
type Prompt struct {
	Archetype Archetype
	Text      string
	MinWords  int
	Strict    bool
}

// BuildPrompt renders the archetype-specific instruction for r.
// Output depends only on r and now.
func BuildPrompt(r *Resolved, now time.Time) Prompt {
	var intro string
	switch r.Template.Archetype {
	case ChakraGuide:
		intro = chakraIntro(r)
	case SeasonalGuide:
		intro = seasonalIntro(r)
	case BirthstoneGuide:
		intro = birthstoneIntro(r)
	default:
		// crystal_guide and how_to_guide share the crystal builder.
		intro = crystalIntro(r)
	}

	minWords := r.Template.MinWords
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Today's date is %s. Any reference to \"this month\" or \"this season\" means %s %d.\n\n",
		now.Format("January 2, 2006"), now.Month(), now.Year())
	fmt.Fprintf(&b, "TITLE: %s\n\n", r.Title)

	fmt.Fprintf(&b, "REQUIRED OUTLINE (use each as a level-2 Markdown heading, in this order, %d sections):\n", len(r.Sections))
	for i, s := range r.Sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "LENGTH: at least %d words of body text.\n\n", minWords)

	b.WriteString("REQUIRED KEYWORD PHRASES (use each naturally at least once):\n")
	for _, k := range r.Keywords {
		fmt.Fprintf(&b, "- %s\n", k)
	}
	b.WriteString("\n")

	b.WriteString("STYLE:\n")
	b.WriteString("- Write in a warm, knowledgeable voice for readers who are new to crystals.\n")
	b.WriteString("- Use short paragraphs, bulleted lists where they help, and concrete examples.\n")
	b.WriteString("- Do not add a closing summary section that repeats earlier points.\n")
	b.WriteString("- Output Markdown only. Start directly with the first heading; do not repeat the title.\n")

	return Prompt{
		Archetype: r.Template.Archetype,
		Text:      b.String(),
		MinWords:  minWords,
	}
}

// StrictPrompt returns p with the STRICT REQUIREMENTS suffix used for the single retry.
func StrictPrompt(p Prompt) Prompt {
	minWords := p.MinWords + StrictExtraWords

	var b strings.Builder
	b.WriteString(p.Text)
	b.WriteString("\nSTRICT REQUIREMENTS (the previous draft was rejected):\n")
	fmt.Fprintf(&b, "- The article MUST contain at least %d words. Shorter drafts are discarded.\n", minWords)
	b.WriteString("- Name specific stones, colors and rituals in every section. Vague wording is not acceptable.\n")
	b.WriteString("- Never use placeholder names, bracketed fill-ins or sample text.\n")
	b.WriteString("- Never refer to yourself or to being a language model.\n")
	b.WriteString("- Do not end with a summary that begins \"In conclusion\".\n")

	return Prompt{
		Archetype: p.Archetype,
		Text:      b.String(),
		MinWords:  minWords,
		Strict:    true,
	}
}

func chakraIntro(r *Resolved) string {
	v := r.Vars
	return fmt.Sprintf(
		"You are an experienced crystal healer and energy worker writing for a crystal shop's blog. "+
			"Write a complete, in-depth guide to crystals for the %s Chakra. "+
			"The %s Chakra is associated with the color %s and the element %s. "+
			"Recommend these stones by name and explain how each one supports this chakra: %s. "+
			"Include a practical 7-day practice that readers can start in %s.",
		val(v, "chakra"), val(v, "chakra"), val(v, "color"), val(v, "element"),
		strings.Join(chakraStones(v["chakra"]), ", "), val(v, "month"))
}

func seasonalIntro(r *Resolved) string {
	v := r.Vars
	stones := []string{}
	if s, ok := LookupSeason(v["season"]); ok {
		stones = s.Stones
	}
	return fmt.Sprintf(
		"You are an experienced crystal practitioner writing a seasonal guide for a crystal shop's blog. "+
			"Write about the best crystals to work with during %s %s, a season of %s. "+
			"Feature these five stones by name and give each a concrete ritual: %s. "+
			"Tie the advice to what readers are likely to be doing in %s.",
		val(v, "season"), val(v, "year"), val(v, "energy"), strings.Join(stones, ", "), val(v, "month"))
}

func birthstoneIntro(r *Resolved) string {
	v := r.Vars
	return fmt.Sprintf(
		"You are a gemstone historian and jewelry writer for a crystal shop's blog. "+
			"Write a complete guide to %s, the birthstone for %s. "+
			"Cover its history as a birthstone, its symbolism, its connection to %s, "+
			"how to wear it, how to care for it, and gift ideas for people born in %s.",
		val(v, "crystal"), val(v, "month"), val(v, "zodiac"), val(v, "month"))
}

func crystalIntro(r *Resolved) string {
	v := r.Vars
	focus := "everyday wellbeing"
	if b, ok := v["benefit"]; ok {
		focus = b
	}
	if r.Template.Archetype == HowToGuide {
		return fmt.Sprintf(
			"You are an experienced crystal practitioner writing a practical how-to article for a crystal shop's blog. "+
				"Explain step by step how to use %s for %s. "+
				"Every step must be something a beginner can do at home with one stone and ten minutes.",
			val(v, "crystal"), focus)
	}
	return fmt.Sprintf(
		"You are an experienced crystal healer and mineral enthusiast writing for a crystal shop's blog. "+
			"Write the definitive guide to %s: what it is, where it comes from, what it means, "+
			"and how to work with it, with particular attention to %s.",
		val(v, "crystal"), focus)
}

func chakraStones(name string) []string {
	if c, ok := LookupChakra(name); ok {
		return c.Stones
	}
	return nil
}

// val returns the variable or its literal placeholder, matching Resolve's pass-through.
func val(vars map[string]string, name string) string {
	if v, ok := vars[name]; ok {
		return v
	}
	return "{" + name + "}"
}
