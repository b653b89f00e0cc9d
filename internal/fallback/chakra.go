package fallback

import (
	"fmt"
	"strings"

	"github.com/hpungsan/facet/internal/content"
)

type chakraProfile struct {
	Sanskrit     string
	Location     string
	Governs      string
	Intro        string
	Imbalance    []string
	Balanced     string
	Placement    string
	Affirmations []string
}

var chakraProfiles = map[string]chakraProfile{
	"Root": {
		Sanskrit: "Muladhara",
		Location: "at the base of the spine",
		Governs:  "safety, stability, money worries, physical energy and the feeling of belonging",
		Intro: "When this center is steady you feel at home in your body and in your life. Bills, deadlines and family " +
			"obligations still arrive, but they feel manageable. When it is depleted, even small changes can feel like threats, " +
			"and it becomes hard to rest, eat well or trust that things will work out.",
		Imbalance: []string{
			"Persistent anxiety about money, housing or security",
			"Feeling spacey, restless or unable to sit still",
			"Trouble sleeping through the night",
			"Tension in the legs, feet or lower back",
			"Resisting change even when you know it would help",
			"A sense of not belonging anywhere",
		},
		Balanced: "A balanced Root Chakra feels like solid ground under your feet. You can meet challenges calmly, you take care of " +
			"your body without forcing it, and you trust that your basic needs will be met.",
		Placement: "Lie down and rest a stone at the base of the spine or between the thighs, or hold one in each hand with your feet flat on the floor.",
		Affirmations: []string{
			"I am safe, supported and at home in my body.",
			"I have everything I need in this moment.",
			"I trust the ground beneath me.",
			"I release fear and welcome stability.",
			"I belong here.",
		},
	},
	"Sacral": {
		Sanskrit: "Svadhisthana",
		Location: "in the lower belly, about two inches below the navel",
		Governs:  "creativity, pleasure, emotions, sensuality and the ability to go with the flow",
		Intro: "This is the center of creative and emotional flow. When it is open, ideas arrive easily, you can enjoy simple " +
			"pleasures without guilt, and feelings move through you instead of getting stuck. When it is blocked, life can feel " +
			"flat, creative work stalls and emotions either swing wildly or shut down entirely.",
		Imbalance: []string{
			"Creative block or a lack of inspiration",
			"Feeling emotionally numb or, at the other extreme, overwhelmed",
			"Difficulty enjoying food, rest, touch or play",
			"Guilt around pleasure",
			"Rigid routines that leave no room for spontaneity",
			"Discomfort in the lower abdomen or hips",
		},
		Balanced: "A balanced Sacral Chakra brings a sense of ease and delight. You feel your emotions honestly, you let yourself " +
			"play and create, and relationships feel warm rather than draining.",
		Placement: "Lie down and place a stone just below the navel, or keep one in a front pocket so it rests near the lower belly during the day.",
		Affirmations: []string{
			"I allow myself to feel pleasure and joy.",
			"My creativity flows freely.",
			"I honor my emotions without judging them.",
			"I am open to new experiences.",
			"I move through life with ease and grace.",
		},
	},
	"Solar Plexus": {
		Sanskrit: "Manipura",
		Location: "in the upper abdomen, between the navel and the breastbone",
		Governs:  "confidence, willpower, self-esteem, decision making and personal boundaries",
		Intro: "This is your center of personal power. When it is strong you make decisions without agonizing, you keep the " +
			"promises you make to yourself and you can say no without apologizing. When it is weak, you may defer to everyone " +
			"else, procrastinate on what matters or swing between self-doubt and a need to control.",
		Imbalance: []string{
			"Low self-esteem or constant comparison with others",
			"Difficulty making decisions",
			"Procrastination and low motivation",
			"A need to control people or outcomes",
			"Digestive discomfort during stress",
			"Trouble setting or keeping boundaries",
		},
		Balanced: "A balanced Solar Plexus Chakra feels like quiet confidence. You know what you value, you act on it, and you " +
			"respect other people's choices without giving up your own.",
		Placement: "Lie down and place a stone on the upper abdomen just below the ribs, or hold one against the same spot while you breathe deeply.",
		Affirmations: []string{
			"I am confident in who I am.",
			"I make decisions with clarity and ease.",
			"I honor my boundaries.",
			"My energy is mine to direct.",
			"I am worthy of success.",
		},
	},
	"Heart": {
		Sanskrit: "Anahata",
		Location: "in the center of the chest",
		Governs:  "love, compassion, forgiveness, connection and the balance between giving and receiving",
		Intro: "The heart center is the bridge between the three lower chakras, which relate to the physical world, and the " +
			"three upper chakras, which relate to thought and spirit. When it is open you give and receive love freely. When it " +
			"is closed you may guard yourself against connection, hold on to old hurts or give endlessly while struggling to receive.",
		Imbalance: []string{
			"Difficulty trusting others or letting people in",
			"Holding grudges or struggling to forgive",
			"People-pleasing and giving until you are empty",
			"Loneliness even when surrounded by others",
			"Harsh self-criticism",
			"Tightness in the chest or shallow breathing",
		},
		Balanced: "A balanced Heart Chakra feels like warmth and openness. You are kind to yourself, you forgive without " +
			"forgetting your boundaries, and you feel connected to the people and world around you.",
		Placement: "Lie down and rest a stone in the center of the chest, or wear one on a pendant long enough to sit over the heart.",
		Affirmations: []string{
			"I give and receive love freely.",
			"I forgive myself and others.",
			"My heart is open and protected.",
			"I am worthy of love.",
			"I treat myself with kindness.",
		},
	},
	"Throat": {
		Sanskrit: "Vishuddha",
		Location: "at the base of the throat",
		Governs:  "communication, truth, self-expression, listening and creative voice",
		Intro: "This center governs how you express what is inside you. When it is clear you speak honestly and kindly, you " +
			"listen well and your words match your actions. When it is blocked you may swallow your opinions, talk over people, " +
			"or find it hard to put feelings into words.",
		Imbalance: []string{
			"Fear of speaking up in meetings or conversations",
			"Saying yes when you mean no",
			"Talking too much or interrupting",
			"Difficulty finding the right words",
			"Frequent sore throats or jaw tension",
			"Feeling unheard",
		},
		Balanced: "A balanced Throat Chakra feels like ease in your own voice. You say what you mean, you listen without " +
			"planning your reply, and you trust that your perspective is worth sharing.",
		Placement: "Lie down and rest a small stone in the hollow at the base of the throat, or wear a short necklace that keeps the stone in that area.",
		Affirmations: []string{
			"I speak my truth with kindness.",
			"My voice matters.",
			"I listen with an open mind.",
			"I express myself clearly and confidently.",
			"I communicate my needs with ease.",
		},
	},
	"Third Eye": {
		Sanskrit: "Ajna",
		Location: "on the forehead, between the eyebrows",
		Governs:  "intuition, imagination, insight, memory and the ability to see the bigger picture",
		Intro: "This is the center of inner sight. When it is open you trust your intuition, remember your dreams and notice " +
			"patterns that others miss. When it is clouded you may overthink every choice, dismiss your gut feelings or feel " +
			"stuck in the details without seeing where you are heading.",
		Imbalance: []string{
			"Overthinking and second-guessing decisions",
			"Difficulty concentrating or remembering",
			"Ignoring or distrusting your intuition",
			"Headaches or eye strain",
			"Lack of vision for the future",
			"Restless or vivid but confusing dreams",
		},
		Balanced: "A balanced Third Eye Chakra feels like clarity. You can imagine possibilities, you trust your inner knowing, " +
			"and you balance logic with intuition.",
		Placement: "Lie down and rest a stone on the forehead between the eyebrows, or hold one there for a few breaths before a decision.",
		Affirmations: []string{
			"I trust my intuition.",
			"I see clearly and act wisely.",
			"I am open to inner guidance.",
			"My imagination is a gift.",
			"I know what is right for me.",
		},
	},
	"Crown": {
		Sanskrit: "Sahasrara",
		Location: "at the top of the head",
		Governs:  "spiritual connection, meaning, awareness and a sense of peace with the larger whole",
		Intro: "The highest of the seven centers connects you to meaning beyond everyday concerns. When it is open you feel " +
			"part of something larger, you find peace in stillness and you approach life with curiosity. When it is blocked you " +
			"may feel cut off, cynical or unable to quiet the mind long enough to rest.",
		Imbalance: []string{
			"Feeling disconnected or without purpose",
			"Cynicism or closed-mindedness",
			"Constant mental chatter",
			"Difficulty meditating or resting quietly",
			"Sensitivity to light and noise",
			"Feeling isolated from others",
		},
		Balanced: "A balanced Crown Chakra feels like peace. You feel connected to yourself, to others and to whatever you " +
			"consider sacred, and everyday worries lose some of their weight.",
		Placement: "Lie down and set a stone on the floor just above the crown of the head, or rest one on a pillow behind you as you meditate.",
		Affirmations: []string{
			"I am connected to something greater than myself.",
			"I welcome peace and stillness.",
			"I trust the journey of my life.",
			"I am open to wisdom.",
			"I am whole.",
		},
	},
}

// chakraMarkdown writes the fixed chakra guide for one row of the chakra table.
func chakraMarkdown(c content.Chakra, month string) string {
	p := chakraProfiles[c.Name]
	name := c.Name + " Chakra"
	var b strings.Builder

	fmt.Fprintf(&b, "## Understanding the %s\n\n", name)
	fmt.Fprintf(&b, "The %s, known in Sanskrit as %s, sits %s. It governs %s. Its color is %s and its element is %s, "+
		"so stones in %s tones are its most natural companions.\n\n",
		name, p.Sanskrit, p.Location, p.Governs, strings.ToLower(c.Color), strings.ToLower(c.Element), strings.ToLower(c.Color))
	b.WriteString(p.Intro + "\n\n")
	fmt.Fprintf(&b, "This guide for %s walks you through the signs that the %s needs attention, the five stones we "+
		"recommend most often for it, and a simple seven-day practice you can begin today. You do not need any experience "+
		"with crystals or meditation. All you need is one or two stones, a quiet corner and a few minutes each day.\n\n",
		month, name)

	fmt.Fprintf(&b, "## Signs Your %s Is Out of Balance\n\n", name)
	b.WriteString("Energy centers rarely switch off completely. More often they become underactive or overactive, and the " +
		"signs show up in how you feel, think and behave. Common signs include:\n\n")
	for _, s := range p.Imbalance {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\n" + p.Balanced + "\n\n")
	b.WriteString("If several of these signs feel familiar, that is not a cause for worry. It simply points to where your " +
		"attention will be most useful this week. Crystal work is a gentle complement to rest, movement, good food and, " +
		"where needed, professional care.\n\n")

	fmt.Fprintf(&b, "## The Top Five %s Crystals\n\n", name)
	fmt.Fprintf(&b, "These are the five stones we reach for first when working with the %s:\n\n", name)
	for i, s := range c.Stones {
		n := noteFor(s)
		fmt.Fprintf(&b, "%d. **%s** (%s). %s\n", i+1, s, n.Color, n.Note)
	}
	fmt.Fprintf(&b, "\nYou do not need all five. Hold each stone you are drawn to for a moment and notice which one feels "+
		"right. Many people begin with %s because it is easy to find and gentle to work with, then add others as their "+
		"practice grows.\n\n", c.Stones[0])

	fmt.Fprintf(&b, "## How to Use Your %s Crystals\n\n", name)
	fmt.Fprintf(&b, "**Placement.** %s Breathe slowly for five to ten minutes and imagine %s light gathering around the "+
		"stone and spreading with each exhale.\n\n", p.Placement, strings.ToLower(c.Color))
	b.WriteString("**Carry it.** Keep a tumbled stone in your pocket or bag and hold it whenever you notice one of the signs " +
		"above. The stone becomes a physical reminder to pause, breathe and return to your intention.\n\n")
	b.WriteString("**Wear it.** Bracelets, rings and pendants keep a stone in contact with your skin all day. Choose a piece " +
		"you enjoy wearing, since you will reach for it more often.\n\n")
	b.WriteString("**Place it at home.** Set a larger stone on your desk, nightstand or meditation space. Keeping it where " +
		"you spend time turns it into a quiet, constant reminder.\n\n")
	fmt.Fprintf(&b, "**Meditate with it.** Sit comfortably with a stone in your left hand. Close your eyes, bring your "+
		"attention to the area %s and silently repeat one of the affirmations below for a few minutes.\n\n", p.Location)

	fmt.Fprintf(&b, "## A 7-Day %s Practice for %s\n\n", name, month)
	fmt.Fprintf(&b, "Use this plan to build a steady habit this %s. Each step takes ten to fifteen minutes.\n\n", month)
	fmt.Fprintf(&b, "- **Days 1-2: Set your intention.** Cleanse your %s, hold it and write one sentence about what you "+
		"would like to feel more of this week. Keep that sentence somewhere you will see it.\n", c.Stones[0])
	fmt.Fprintf(&b, "- **Days 3-4: Daily placement.** Lie down with %s in place for ten minutes each evening, breathing "+
		"slowly and noticing any sensations without judging them.\n", c.Stones[1])
	fmt.Fprintf(&b, "- **Day 5: Carry your stone.** Keep %s with you all day. Each time you touch it, take one slow breath "+
		"and check in with how you feel.\n", c.Stones[2])
	fmt.Fprintf(&b, "- **Day 6: Journal.** Spend fifteen minutes writing about what has shifted, using %s as a focus "+
		"stone on the page beside you.\n", c.Stones[3])
	fmt.Fprintf(&b, "- **Day 7: Integrate.** Create a small layout with all five stones around you, repeat your intention "+
		"aloud and decide which part of the practice you will keep going next week. %s makes a good anchor for the center "+
		"of the layout.\n\n", c.Stones[4])

	fmt.Fprintf(&b, "## Affirmations for the %s\n\n", name)
	b.WriteString("Affirmations work best when spoken slowly while holding a stone. Choose one that resonates and repeat it " +
		"morning and evening:\n\n")
	for _, a := range p.Affirmations {
		fmt.Fprintf(&b, "- *%s*\n", a)
	}
	b.WriteString("\nIf an affirmation feels untrue at first, soften it with \"I am learning to\" at the start. Over time " +
		"the words become easier to believe.\n\n")

	b.WriteString("## Caring for and Charging Your Stones\n\n")
	b.WriteString("Stones are believed to absorb the energy around them, so regular cleansing keeps them feeling fresh. " +
		"Rest them on a slab of selenite overnight, pass them through the smoke of dried herbs, or leave them on a windowsill " +
		"under the full moon. Sound from a singing bowl or bell works for every stone.\n\n")
	b.WriteString("Some stones fade in strong sunlight and some dislike water. When in doubt, choose moonlight or sound, " +
		"which are safe for everything. After cleansing, hold each stone for a moment and restate your intention to charge " +
		"it for the week ahead.\n\n")

	fmt.Fprintf(&b, "## Find Your %s Stones\n\n", name)
	fmt.Fprintf(&b, "Every stone in this guide is available in our shop, hand-selected and cleansed before it ships. Browse "+
		"our %s collection to find tumbled stones, raw pieces and jewelry in %s tones, or choose a ready-made chakra set "+
		"to begin your practice this %s.\n", name, strings.ToLower(c.Color), month)

	return b.String()
}

// chakraOverviewMarkdown covers all seven chakras when the requested one is not recognized.
func chakraOverviewMarkdown(month string) string {
	var b strings.Builder

	b.WriteString("## Understanding the Seven Chakras\n\n")
	b.WriteString("The chakra system describes seven energy centers that run from the base of the spine to the top of the " +
		"head. Each one is linked to a color, an element and an area of life, and each has stones that are traditionally " +
		"used to support it. This guide gives you a short tour of all seven, with the stones we recommend for each.\n\n")
	fmt.Fprintf(&b, "If you are new to chakra work, %s is a good time to begin. Read through each center, notice which "+
		"descriptions feel familiar, and start with the one that stands out.\n\n", month)

	for _, c := range content.Chakras() {
		p := chakraProfiles[c.Name]
		fmt.Fprintf(&b, "## The %s Chakra\n\n", c.Name)
		fmt.Fprintf(&b, "The %s Chakra (%s) sits %s and governs %s. Its color is %s and its element is %s.\n\n",
			c.Name, p.Sanskrit, p.Location, p.Governs, strings.ToLower(c.Color), strings.ToLower(c.Element))
		b.WriteString(p.Intro + "\n\n")
		b.WriteString("Signs it needs attention:\n\n")
		for _, s := range p.Imbalance {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\nRecommended stones: %s.\n\n", strings.Join(c.Stones, ", "))
		fmt.Fprintf(&b, "Try this affirmation: *%s*\n\n", p.Affirmations[0])
	}

	b.WriteString("## Caring for and Charging Your Stones\n\n")
	b.WriteString("Rest your stones on selenite overnight, pass them through the smoke of dried herbs, or leave them under " +
		"the full moon to refresh them. Sound from a singing bowl is safe for every stone.\n\n")

	b.WriteString("## Find Your Chakra Stones\n\n")
	b.WriteString("Every stone in this guide is available in our shop, hand-selected and cleansed before it ships. Choose a " +
		"complete seven-stone chakra set or build your own collection one center at a time.\n")

	return b.String()
}
