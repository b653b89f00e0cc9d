package fallback

import (
	"fmt"
	"strings"

	"github.com/hpungsan/facet/internal/content"
)

// braceletMarkers identify the seven-chakra bracelet by substring.
var braceletMarkers = []string{"7 chakra", "seven chakra", "chakra bracelet"}

const defaultBraceletBase = "Lava Stone"

type braceletStone struct {
	Stone      string
	Color      string
	Properties string
	Benefit    string
}

var braceletStones = map[string]braceletStone{
	"Root":         {"Red Jasper", "brick red", "grounding, stamina and stability", "helps you feel safe and steady when life speeds up"},
	"Sacral":       {"Carnelian", "orange", "creativity, courage and vitality", "sparks motivation and the enjoyment of creative work"},
	"Solar Plexus": {"Tiger's Eye", "golden brown", "confidence, willpower and focus", "supports clear decisions and steady self-belief"},
	"Heart":        {"Green Aventurine", "green", "compassion, luck and emotional healing", "opens you to kindness and new opportunities"},
	"Throat":       {"Sodalite", "royal blue", "truth, communication and calm logic", "helps you speak honestly and listen well"},
	"Third Eye":    {"Amethyst", "purple", "intuition, calm and restful sleep", "quiets mental chatter so your inner voice can be heard"},
	"Crown":        {"Clear Quartz", "colorless", "clarity, amplification and spiritual connection", "amplifies the other six stones and your intention"},
}

// isBracelet reports whether a product name refers to the seven-chakra bracelet.
func isBracelet(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range braceletMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// braceletBase finds a known base stone named in the product, such as "Lava Stone 7 Chakra Bracelet".
func braceletBase(name string) string {
	lower := strings.ToLower(name)
	for _, base := range []string{"Lava Stone", "Black Onyx", "Hematite", "Howlite", "Obsidian", "Wood"} {
		if strings.Contains(lower, strings.ToLower(base)) {
			return base
		}
	}
	return defaultBraceletBase
}

func braceletMarkdown(product, month string) string {
	base := braceletBase(product)
	baseNote := noteFor(base)
	var b strings.Builder

	fmt.Fprintf(&b, "## What Is the %s?\n\n", product)
	fmt.Fprintf(&b, "The %s combines a base of %s beads with one stone for each of the seven chakras, from the Root at the "+
		"base of the spine to the Crown at the top of the head. Wearing all seven together is a simple way to support "+
		"balance across every energy center at once, without having to choose a single focus.\n\n", product, base)
	fmt.Fprintf(&b, "**The base: %s (%s).** %s The base beads make up most of the bracelet and set its overall tone, "+
		"while the seven colored stones sit together like a small rainbow.\n\n", base, baseNote.Color, baseNote.Note)

	b.WriteString("## Why Balance All Seven Chakras?\n\n")
	b.WriteString("The chakras work as a system. When one center is depleted, the others often compensate, and the " +
		"strain shows up somewhere else: a tight jaw, a restless night, a short temper. Working with all seven together " +
		"keeps the whole system in view instead of chasing one symptom at a time. A bracelet makes that practice portable, " +
		"so the reminder travels with you to work, on errands and into difficult conversations.\n\n")

	b.WriteString("## The Seven Chakra Stones\n\n")
	b.WriteString("Each stone on the bracelet is matched to one chakra by color and tradition:\n\n")
	for _, c := range content.Chakras() {
		s := braceletStones[c.Name]
		fmt.Fprintf(&b, "### %s Chakra: %s\n\n", c.Name, s.Stone)
		fmt.Fprintf(&b, "%s is a %s stone associated with %s. On this bracelet it %s. The %s Chakra's element is %s, "+
			"and its color is %s.\n\n", s.Stone, s.Color, s.Properties, s.Benefit, c.Name, strings.ToLower(c.Element),
			strings.ToLower(c.Color))
	}

	b.WriteString("## How to Wear Your Bracelet\n\n")
	b.WriteString("Many practitioners wear healing bracelets on the left wrist, which is traditionally considered the " +
		"receiving side, to draw the stones' energy in. Wear it on the right wrist when you want to project confidence " +
		"outward, such as before a presentation or a difficult conversation. Either way, the most important thing is to " +
		"wear it often and notice how you feel.\n\n")
	b.WriteString("Start each morning by holding the bracelet for a moment and setting a simple intention for the day. " +
		"During stressful moments, roll each bead between your fingers from Root to Crown and take one breath per stone. " +
		"This seven-breath pause takes less than a minute and works anywhere.\n\n")
	fmt.Fprintf(&b, "If you wear a base of %s, add a drop of essential oil to the porous beads in the morning. Lavender "+
		"calms, citrus oils lift the mood and cedarwood grounds. Keep oil away from the colored stones, which can "+
		"absorb it.\n\n", base)

	b.WriteString("## A Seven-Day Balancing Practice\n\n")
	fmt.Fprintf(&b, "Try this practice in %s to get to know each stone:\n\n", month)
	for i, c := range content.Chakras() {
		s := braceletStones[c.Name]
		fmt.Fprintf(&b, "- **Day %d: %s.** Hold the %s bead for a minute each morning and focus on %s.\n",
			i+1, c.Name, s.Stone, strings.SplitN(s.Properties, ",", 2)[0])
	}
	b.WriteString("\nAt the end of the week, notice which day felt most powerful. That chakra may deserve extra attention " +
		"in the weeks ahead.\n\n")

	b.WriteString("## Caring for Your Bracelet\n\n")
	b.WriteString("Remove your bracelet before swimming, showering or exercising hard, since water and sweat can weaken " +
		"the elastic and dull some stones. Cleanse it once a week by resting it on selenite overnight or leaving it in " +
		"moonlight. Store it flat rather than hanging it, so the cord keeps its stretch.\n\n")
	b.WriteString("If the cord ever breaks, keep the beads together and restring them on strong elastic cord. Many " +
		"people see a broken bracelet as a sign that it has done its work and take it as an invitation to choose a new " +
		"intention.\n\n")

	b.WriteString("## Frequently Asked Questions\n\n")
	b.WriteString("**Can I wear it with other bracelets?** Yes. Chakra bracelets pair well with single-stone bracelets " +
		"that target a particular need.\n\n")
	b.WriteString("**Can I sleep in it?** You can, although some people find the energy too stimulating at night. Place " +
		"it on your nightstand instead if you have trouble resting.\n\n")
	b.WriteString("**Is it a good gift?** It is one of our most popular gifts because it suits anyone, whatever their " +
		"sign or birth month.\n\n")

	fmt.Fprintf(&b, "## Shop the %s\n\n", product)
	b.WriteString("Every bracelet is handmade with hand-selected stones and cleansed before it ships. Choose your wrist " +
		"size at checkout, or pair it with a matching seven-stone set for your meditation space.\n")

	return b.String()
}
