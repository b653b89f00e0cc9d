package fallback

import (
	"fmt"
	"strings"

	"github.com/hpungsan/facet/internal/content"
)

type seasonProfile struct {
	Intro     string
	Shift     string
	Grid      string
	Morning   string
	Evening   string
	Intention string
	Cleansing string
}

var seasonProfiles = map[string]seasonProfile{
	"Spring": {
		Intro: "Spring is the season of renewal. Days lengthen, gardens wake up and most of us feel a pull to clear out the old " +
			"and start something new. It is a natural time to plant intentions, begin projects that stalled over the winter " +
			"and open the heart to fresh connections.",
		Shift: "After months of rest and reflection, spring energy rises quickly. Stones that supported deep rest in winter can " +
			"feel too heavy now. Lighter, greener and softer stones match the mood of growth and help you act on the ideas that " +
			"formed during the quiet months.",
		Grid: "Place Moss Agate in the center to represent the seed of your intention. Surround it with Green Aventurine for " +
			"opportunity, Rose Quartz for self-kindness, Prehnite for trust in timing and Amazonite for honest communication. " +
			"Add a small potted plant or a vase of fresh flowers beside the grid and refresh them weekly.",
		Morning: "Open a window, hold Green Aventurine and take five deep breaths of fresh air. Name one small thing you will " +
			"start or tend today, then carry the stone with you as a reminder.",
		Evening: "Hold Rose Quartz over your heart and list three things that grew or went well today, however small. Place the " +
			"stone on your nightstand before sleep.",
		Intention: "Write your intentions on a slip of paper and tuck it under Moss Agate. Spring intentions work best when they " +
			"are specific and gentle: one new habit, one relationship to nurture, one space to clear.",
		Cleansing: "Spring rain is a lovely cleanser for hard stones such as quartz and agate. Set them outside during a light " +
			"shower, then dry them in the open air. Keep softer or water-sensitive stones indoors and use smoke or sound instead.",
	},
	"Summer": {
		Intro: "Summer is the season of abundance. Long days, warm evenings and full gardens invite us to celebrate, connect and " +
			"enjoy what we have worked for. Energy runs high, so it is a wonderful time for confidence, creativity and joy.",
		Shift: "Summer's intensity can be both a gift and a challenge. Bright, fiery stones help you make the most of the long days, " +
			"while a few steadier stones keep you from burning out. Adjusting your collection to the season helps your practice " +
			"feel alive rather than routine.",
		Grid: "Place Citrine in the center as a symbol of abundance. Surround it with Sunstone for joy, Carnelian for creative " +
			"courage, Peridot for warmth and Tiger's Eye for steady focus. Set the grid where it catches morning light, but move " +
			"color-sensitive stones out of direct afternoon sun.",
		Morning: "Step outside barefoot if you can, hold Sunstone and face the morning light. Name one thing you will celebrate " +
			"today and one person you will connect with.",
		Evening: "As the evening cools, hold Tiger's Eye and review the day. Notice where your energy went and decide what you " +
			"will protect time for tomorrow.",
		Intention: "Summer intentions are about expression and enjoyment. Write down one creative project, one adventure and one " +
			"way you will rest, and keep the list under Citrine until the season turns.",
		Cleansing: "Summer sun is a strong cleanser but can fade amethyst, citrine and rose quartz. Cleanse those stones by " +
			"moonlight on warm nights instead, and give hardy stones such as Tiger's Eye and Carnelian an hour of early sun.",
	},
	"Fall": {
		Intro: "Fall is the season of grounding. Leaves turn, routines return and the light softens. It is a natural time to " +
			"harvest what you started in spring, let go of what no longer serves you and build steady foundations for the colder " +
			"months ahead.",
		Shift: "The energy of fall moves inward. Earthy, warm and protective stones support the transition from summer's " +
			"outward activity to a more reflective pace. They help you release what you have outgrown and settle into routines " +
			"that will carry you through winter.",
		Grid: "Place Smoky Quartz in the center to anchor the grid. Surround it with Amber for warmth, Carnelian for motivation, " +
			"Labradorite for transformation and Picture Jasper for patience. Add a few fallen leaves, acorns or a small candle " +
			"to connect the grid to the season.",
		Morning: "Hold Picture Jasper while your coffee or tea brews and name one thing you are grateful to have harvested this " +
			"year. Set one steady intention for the day.",
		Evening: "Hold Smoky Quartz and imagine the tension of the day draining down into the earth. Write one thing you are " +
			"ready to release, then tear up the paper.",
		Intention: "Fall intentions focus on completion and release. Finish one lingering project, clear one cluttered space and " +
			"choose one habit to let go of, keeping your notes under Smoky Quartz.",
		Cleansing: "Fall is an ideal time for earth cleansing. Bury hardy stones in a pot of soil overnight, or rest them on a " +
			"bed of dried leaves. Brush them off and hold each one for a moment to restate your intention.",
	},
	"Winter": {
		Intro: "Winter is the season of reflection. The nights are long, the world is quiet and our bodies ask for more rest. " +
			"Rather than fighting this slower pace, winter invites us to look inward, review the year and dream about what comes " +
			"next.",
		Shift: "Winter calls for stones that warm, protect and illuminate. Deep reds bring warmth, clear and white stones bring " +
			"light to the darker days, and black stones protect your energy when you are more sensitive than usual.",
		Grid: "Place Clear Quartz in the center to bring light to the darkest season. Surround it with Garnet for warmth, Selenite " +
			"for peace, Snowflake Obsidian for reflection and Black Tourmaline for protection. Light a candle beside the grid on " +
			"long evenings.",
		Morning: "Before getting out of bed, hold Garnet in both hands and take five slow breaths. Name one thing that will bring " +
			"you warmth today.",
		Evening: "Sit with a candle and Snowflake Obsidian. Reflect on one lesson from the day and one thing you are ready to " +
			"leave behind in the old year.",
		Intention: "Winter intentions are about reflection and rest. Write a letter to yourself about the year that has passed " +
			"and the year you hope for, and keep it under Clear Quartz until spring.",
		Cleansing: "Fresh snow can cleanse hard stones such as quartz and obsidian, but avoid it for selenite, which dissolves " +
			"in water. Selenite itself is the simplest winter cleanser: rest your other stones on it overnight.",
	},
}

// seasonalMarkdown writes the fixed seasonal guide for one row of the season table.
func seasonalMarkdown(s content.Season, month, year string) string {
	p := seasonProfiles[s.Name]
	var b strings.Builder

	fmt.Fprintf(&b, "## The Energy of %s\n\n", s.Name)
	b.WriteString(p.Intro + "\n\n")
	fmt.Fprintf(&b, "In this guide for %s %s you will find the five stones we recommend for %s, a simple grid, a morning "+
		"and evening ritual, and a seven-day practice that fits into busy days. Everything here works with a handful of "+
		"tumbled stones and a few minutes of quiet.\n\n", s.Name, year, strings.ToLower(s.Name))

	b.WriteString("## Why Your Practice Should Change with the Seasons\n\n")
	b.WriteString(p.Shift + "\n\n")
	fmt.Fprintf(&b, "Think of your collection like a wardrobe. You do not need new stones every season, but bringing "+
		"different ones to the front of the shelf helps your practice stay in tune with the energy of %s.\n\n", s.Energy)

	fmt.Fprintf(&b, "## The Top Five Crystals for %s\n\n", s.Name)
	for i, name := range s.Stones {
		n := noteFor(name)
		fmt.Fprintf(&b, "%d. **%s** (%s). %s\n", i+1, name, n.Color, n.Note)
	}
	fmt.Fprintf(&b, "\nIf you only choose one, start with %s. It captures the spirit of %s better than any other stone "+
		"on this list.\n\n", s.Stones[0], strings.ToLower(s.Name))

	fmt.Fprintf(&b, "## A %s Crystal Grid\n\n", s.Name)
	b.WriteString(p.Grid + "\n\n")
	b.WriteString("Sit in front of the grid for a few minutes each day, breathing slowly and picturing your intention as " +
		"already complete. Cleanse and rearrange the stones whenever the grid starts to feel stale.\n\n")

	fmt.Fprintf(&b, "## Morning Ritual for %s\n\n", s.Name)
	b.WriteString(p.Morning + "\n\n")
	b.WriteString("Morning rituals do not need to be long. Two or three minutes of focused attention sets the tone for the " +
		"day far better than an elaborate routine you cannot keep.\n\n")

	fmt.Fprintf(&b, "## Evening Ritual for %s\n\n", s.Name)
	b.WriteString(p.Evening + "\n\n")
	b.WriteString("Evening rituals help you close the day with intention rather than letting it blur into the next. If you " +
		"fall asleep before finishing, that is a sign the ritual is working.\n\n")

	fmt.Fprintf(&b, "## Crystals for %s Intentions\n\n", month)
	b.WriteString(p.Intention + "\n\n")
	fmt.Fprintf(&b, "Revisit your list at the end of %s. Cross off what is complete, rewrite what still matters and "+
		"release what no longer feels important.\n\n", month)

	fmt.Fprintf(&b, "## A 7-Day %s Practice\n\n", s.Name)
	fmt.Fprintf(&b, "- **Days 1-2: Choose and cleanse.** Select %s and %s, cleanse them and write one intention for the "+
		"week.\n", s.Stones[0], s.Stones[1])
	fmt.Fprintf(&b, "- **Days 3-4: Morning focus.** Follow the morning ritual each day, carrying %s afterward as a "+
		"reminder of your intention.\n", s.Stones[2])
	fmt.Fprintf(&b, "- **Day 5: Build the grid.** Lay out the %s grid and spend ten minutes with it in the evening.\n", s.Name)
	fmt.Fprintf(&b, "- **Day 6: Reflect.** Journal with %s beside you about what has shifted since day one.\n", s.Stones[3])
	fmt.Fprintf(&b, "- **Day 7: Celebrate.** Hold %s, read your intention aloud and choose which ritual you will keep for "+
		"the rest of the season.\n\n", s.Stones[4])

	fmt.Fprintf(&b, "## Cleansing Crystals in %s\n\n", s.Name)
	b.WriteString(p.Cleansing + "\n\n")

	b.WriteString("## Seasonal Crystal Care\n\n")
	b.WriteString("Whatever the season, store stones where they will not knock against each other, dust them gently and " +
		"keep water-sensitive pieces such as selenite dry. Sound from a singing bowl or bell is a safe cleanser for every " +
		"stone in any month.\n\n")

	fmt.Fprintf(&b, "## Caring for Yourself in %s\n\n", s.Name)
	fmt.Fprintf(&b, "Stones support a practice, but they work best alongside simple daily care. Match your sleep, food and "+
		"movement to the season where you can, spend a little time outdoors each day, and notice how your mood shifts as "+
		"the light changes. Let %s guide your choices: when you are unsure what to do next, ask which option supports "+
		"it.\n\n", s.Energy)

	b.WriteString("## Frequently Asked Questions\n\n")
	fmt.Fprintf(&b, "**Do I need all five stones?** No. One or two stones used every day will do more than a full set "+
		"that stays on a shelf. Start with %s and add others as your practice grows.\n\n", s.Stones[0])
	b.WriteString("**Can I keep using my favorite stones from last season?** Of course. Seasonal stones are an " +
		"invitation, not a rule. Keep whatever feels supportive and simply bring a few seasonal pieces to the front.\n\n")
	b.WriteString("**How often should I cleanse my stones?** Once a week is a good rhythm, or whenever a stone starts " +
		"to feel dull or heavy. Stones used in daily rituals benefit from more frequent cleansing.\n\n")
	b.WriteString("**Where should I place a seasonal grid?** Choose a spot you pass every day, such as a windowsill, " +
		"a bedside table or a shelf near your desk, so the grid becomes part of your routine.\n\n")

	fmt.Fprintf(&b, "## Shop the %s Collection\n\n", s.Name)
	fmt.Fprintf(&b, "Every stone in this guide is available in our shop, hand-selected and cleansed before it ships. Browse "+
		"our %s collection for tumbled stones, grid sets and jewelry chosen to help you embrace the %s of the season.\n",
		s.Name, s.Energy)

	return b.String()
}
