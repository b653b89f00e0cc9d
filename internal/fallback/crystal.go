package fallback

import (
	"fmt"
	"strings"

	"github.com/hpungsan/facet/internal/catalog"
	"github.com/hpungsan/facet/internal/content"
)

// crystalMarkdown writes a guide from a crystal reference record.
func crystalMarkdown(c *catalog.Crystal, a content.Archetype, benefit, month string) string {
	var b strings.Builder
	colors := joinList(c.Colors)
	props := joinList(c.Properties)
	chakra, known := content.LookupChakra(c.Chakra)

	fmt.Fprintf(&b, "## What Is %s?\n\n", c.Name)
	b.WriteString(c.Description + "\n\n")
	fmt.Fprintf(&b, "%s is usually found in %s shades and is most closely linked with %s. Whether you are buying your "+
		"first stone or adding to a collection you have built for years, this guide covers everything you need to start "+
		"working with it.\n\n", c.Name, colors, props)
	switch a {
	case content.BirthstoneGuide:
		fmt.Fprintf(&b, "As the birthstone for %s, %s also makes a meaningful gift, carrying wishes for %s to the person "+
			"who receives it.\n\n", month, c.Name, firstOr(c.Properties, "good fortune"))
	case content.HowToGuide:
		fmt.Fprintf(&b, "This guide focuses on practical steps for using %s for %s, with routines a beginner can follow at "+
			"home.\n\n", c.Name, benefit)
	}

	b.WriteString("## Origins and Formation\n\n")
	fmt.Fprintf(&b, "Most %s on the market today comes from %s. Each deposit produces slightly different color and "+
		"clarity, which is why two pieces of the same stone can look quite different side by side. Ask your supplier where "+
		"a stone was sourced; reputable shops are happy to share.\n\n", c.Name, c.Origin)

	fmt.Fprintf(&b, "## %s Meaning and Properties\n\n", c.Name)
	fmt.Fprintf(&b, "Practitioners work with %s for the following qualities:\n\n", c.Name)
	for _, p := range c.Properties {
		fmt.Fprintf(&b, "- **%s**: hold or wear the stone when you want to invite more %s into your day.\n", capitalize(p), p)
	}
	fmt.Fprintf(&b, "\nIts element is %s, which shapes how it feels to work with. Pair it with intentions that match "+
		"that element for the strongest effect.\n\n", strings.ToLower(c.Element))

	fmt.Fprintf(&b, "## %s for %s\n\n", c.Name, capitalize(benefit))
	fmt.Fprintf(&b, "If your focus is %s, keep %s close during the times of day when you need that support most. Hold it "+
		"for a few slow breaths, name what you want to feel, and return to that intention whenever you touch the stone. "+
		"Small, repeated moments of attention are more effective than one long session each week.\n\n", benefit, c.Name)

	fmt.Fprintf(&b, "## %s and the Chakras\n\n", c.Name)
	if known {
		fmt.Fprintf(&b, "%s is associated with the %s Chakra, the %s energy center linked with the element %s. Rest it on "+
			"that area during meditation, or combine it with %s for a balanced layout.\n\n",
			c.Name, chakra.Name, strings.ToLower(chakra.Color), strings.ToLower(chakra.Element), joinList(otherStones(chakra.Stones, c.Name)))
	} else {
		fmt.Fprintf(&b, "%s is associated with the %s Chakra. Rest it on that area during meditation to focus its "+
			"energy.\n\n", c.Name, c.Chakra)
	}

	writeDailyPractice(&b, c.Name, benefit, firstOr(c.Colors, "warm"))

	fmt.Fprintf(&b, "## Stones That Pair Well with %s\n\n", c.Name)
	if known {
		for _, s := range otherStones(chakra.Stones, c.Name) {
			n := noteFor(s)
			fmt.Fprintf(&b, "- **%s** (%s). %s\n", s, n.Color, n.Note)
		}
		b.WriteString("\n")
	}
	b.WriteString("Clear Quartz amplifies the energy of any stone it sits beside, and Selenite keeps a collection " +
		"cleansed between uses.\n\n")

	writeChoosing(&b, c.Name)
	writeFAQ(&b, c.Name)

	fmt.Fprintf(&b, "## Shop %s\n\n", c.Name)
	fmt.Fprintf(&b, "Browse our %s collection for tumbled stones, raw pieces and jewelry, each hand-selected and cleansed "+
		"before it ships.\n", c.Name)

	return b.String()
}

// companionStones pair with any stone the reference database does not know.
var companionStones = []string{"Clear Quartz", "Selenite", "Rose Quartz", "Black Tourmaline"}

// skeletonMarkdown is used when the crystal is not in the reference database.
func skeletonMarkdown(name, benefit string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## What Is %s?\n\n", name)
	fmt.Fprintf(&b, "%s is a stone that many people turn to for %s. Every stone has its own character, and the best way "+
		"to get to know this one is to spend time with it: hold it, wear it, and notice how you feel over a few weeks.\n\n",
		name, benefit)

	fmt.Fprintf(&b, "## %s for %s\n\n", name, capitalize(benefit))
	fmt.Fprintf(&b, "Keep %s close during the times of day when you most need support with %s. Hold it for a few slow "+
		"breaths, name what you want to feel, and return to that intention whenever you touch the stone.\n\n", name, benefit)

	fmt.Fprintf(&b, "## Getting to Know %s\n\n", name)
	fmt.Fprintf(&b, "Spend the first week simply noticing. Carry %s with you, hold it during quiet moments and jot down "+
		"any impressions, however small: a feeling of warmth, a sense of calm, a memory that surfaces. These notes become "+
		"your personal guide to the stone, and they often say more than any book.\n\n", name)

	fmt.Fprintf(&b, "## Working with %s\n\n", capitalize(benefit))
	fmt.Fprintf(&b, "Before you begin, take a moment to describe what %s would look like in an ordinary day. Perhaps it "+
		"is waking up rested, staying calm in traffic or speaking up in a meeting. The clearer the picture, the easier "+
		"it is to notice progress, and the stone becomes a reminder of that specific picture rather than a vague wish.\n\n", benefit)
	b.WriteString("Write your picture down and keep the note beside the stone. Read it aloud once in the morning and " +
		"once before bed for the first week, then as often as feels useful.\n\n")

	writeDailyPractice(&b, name, benefit, "soft")

	fmt.Fprintf(&b, "## A Weekly Ritual with %s\n\n", name)
	fmt.Fprintf(&b, "A simple weekly ritual helps %s become part of your routine rather than an object on a shelf. "+
		"Choose one evening each week, light a candle and sit with the stone for ten quiet minutes. Begin by reading your "+
		"written picture of %s, then hold the stone and recall one moment from the past week when it felt a little closer. "+
		"Finish by cleansing the stone and setting it somewhere you will see it the next morning. Over a month, these "+
		"small evenings add up to a record of change you can actually see.\n\n", name, benefit)

	fmt.Fprintf(&b, "## Caring for Your %s\n\n", name)
	fmt.Fprintf(&b, "Treat %s gently, as you would any natural material. Store it apart from harder stones so its "+
		"surface does not scratch, and wrap it in a soft cloth when you travel. Dust it with a dry brush rather than harsh "+
		"cleaners, and keep it away from sudden changes in temperature, which can cause fine cracks in many minerals. If a "+
		"piece chips or breaks, you do not need to throw it away. Smaller fragments work well in a pouch, a plant pot or a "+
		"grid, and many people keep them as reminders of the time they spent with the stone.\n\n", name)

	fmt.Fprintf(&b, "## Stones That Pair Well with %s\n\n", name)
	for _, s := range companionStones {
		n := noteFor(s)
		fmt.Fprintf(&b, "- **%s** (%s). %s\n", s, n.Color, n.Note)
	}
	b.WriteString("\n")

	writeChoosing(&b, name)
	writeFAQ(&b, name)

	fmt.Fprintf(&b, "## Shop %s\n\n", name)
	fmt.Fprintf(&b, "Browse our collection for %s and other hand-selected stones, each cleansed before it ships.\n", name)

	return b.String()
}

func writeDailyPractice(b *strings.Builder, name, benefit, color string) {
	fmt.Fprintf(b, "## How to Use %s Every Day\n\n", name)
	fmt.Fprintf(b, "1. **Cleanse it.** Before first use, cleanse %s with smoke, sound or moonlight.\n", name)
	fmt.Fprintf(b, "2. **Set an intention.** Hold the stone and say one sentence about %s out loud.\n", benefit)
	b.WriteString("3. **Keep it close.** Carry it in a pocket, wear it as jewelry or place it on your desk.\n")
	b.WriteString("4. **Pause with it.** Whenever you notice the stone, take one slow breath and recall your intention.\n")
	b.WriteString("5. **Reflect weekly.** At the end of each week, note any changes you have noticed and refresh your intention.\n\n")
	b.WriteString("Consistency matters more than duration. A stone you touch twenty times a day for a few seconds becomes " +
		"a stronger anchor than one you sit with for an hour once a month.\n\n")

	fmt.Fprintf(b, "## Meditation with %s\n\n", name)
	fmt.Fprintf(b, "Sit comfortably and hold %s in your receiving hand, which for most people is the left. Close your "+
		"eyes and breathe in for a count of four, hold for four and breathe out for six. Picture a %s light spreading "+
		"from the stone up your arm and through your body. Stay with the image for five to ten minutes, then open your eyes "+
		"slowly and notice how you feel.\n\n", name, color)
	b.WriteString("If your mind wanders, simply bring your attention back to the weight and temperature of the stone in " +
		"your hand. That small return is the practice.\n\n")

	fmt.Fprintf(b, "## Cleansing and Charging %s\n\n", name)
	b.WriteString("Regular cleansing keeps a stone feeling fresh. Moonlight and sound are safe for every stone. Smoke from " +
		"dried herbs works well too. Check whether your stone tolerates water and sunlight before using either, since some " +
		"minerals fade or dissolve. After cleansing, hold the stone and restate your intention to charge it.\n\n")
}

func writeChoosing(b *strings.Builder, name string) {
	fmt.Fprintf(b, "## Choosing Your %s\n\n", name)
	fmt.Fprintf(b, "There is no single right piece of %s. Tumbled stones are affordable and easy to carry, raw pieces "+
		"feel closer to the earth, and polished points or spheres make beautiful focal pieces for a desk or altar. "+
		"Jewelry keeps the stone in contact with your skin throughout the day.\n\n", name)
	b.WriteString("When you can, choose in person and hold a few pieces before deciding. Most people find that one stone " +
		"simply feels right, even if they cannot explain why. When buying online, look for clear photos, an honest " +
		"description of any treatment and a named country of origin.\n\n")
}

func writeFAQ(b *strings.Builder, name string) {
	fmt.Fprintf(b, "## Frequently Asked Questions About %s\n\n", name)
	fmt.Fprintf(b, "**Can I wear %s every day?** Yes. Daily wear is one of the easiest ways to keep its energy close. "+
		"Remove jewelry before swimming or cleaning to protect the stone.\n\n", name)
	fmt.Fprintf(b, "**How do I know if my %s is real?** Buy from shops that name the origin of their stones, and be "+
		"cautious of prices that seem too good to be true or colors that look unnaturally bright.\n\n", name)
	fmt.Fprintf(b, "**Where should I keep %s at home?** Keep it where you spend the most time, such as your desk, "+
		"nightstand or meditation corner.\n\n", name)
	fmt.Fprintf(b, "**Can I combine %s with other stones?** Yes. Start with one or two companions so you can notice how "+
		"each one feels, then add more as you learn what works for you.\n\n", name)
	b.WriteString("**What if I lose my stone?** Many practitioners believe a lost stone has finished its work. Thank it, " +
		"and choose a new one when you are ready.\n\n")
}

func otherStones(stones []string, exclude string) []string {
	out := make([]string, 0, len(stones))
	for _, s := range stones {
		if !strings.EqualFold(s, exclude) {
			out = append(out, s)
		}
	}
	return out
}

// joinList joins items as "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func firstOr(items []string, def string) string {
	if len(items) > 0 && items[0] != "" {
		return items[0]
	}
	return def
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
