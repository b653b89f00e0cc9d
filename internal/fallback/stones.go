package fallback

// stoneNote is the one-line description used wherever a stone is listed.
type stoneNote struct {
	Color string
	Note  string
}

var stoneNotes = map[string]stoneNote{
	"Red Jasper":         {"brick red", "Known as the stone of endurance, it steadies scattered energy and helps you stay with a task or feeling until it is finished."},
	"Black Tourmaline":   {"black", "A classic protective stone that many people keep by the front door or in a pocket to feel shielded from stress and heavy moods."},
	"Hematite":           {"metallic grey", "Heavy and cool in the hand, it pulls attention down into the body and is a favorite for anyone who feels lightheaded or distracted."},
	"Smoky Quartz":       {"smoky brown", "Gently grounding without feeling heavy, it is used to release tension at the end of the day and to turn worry into calm action."},
	"Garnet":             {"deep red", "Associated with passion and commitment, it rekindles motivation and reminds you that your body is a safe place to live in."},
	"Carnelian":          {"orange", "A bright, warming stone of courage and creative fire that encourages you to start projects and enjoy the process."},
	"Orange Calcite":     {"soft orange", "Playful and uplifting, it lifts a flat mood and is often used to reconnect with pleasure after a stressful stretch."},
	"Moonstone":          {"milky white", "Tied to the moon and its cycles, it supports emotional flow, intuition and kindness toward your own changing needs."},
	"Sunstone":           {"peach with glitter", "Sparkling with tiny inclusions, it carries a cheerful, sunny energy that supports joy, confidence and healthy independence."},
	"Tiger's Eye":        {"golden brown", "Its shimmering bands are linked to courage and clear judgment, helping you act with confidence rather than hesitation."},
	"Citrine":            {"golden yellow", "The merchant's stone, it is associated with abundance, optimism and the confidence to ask for what you want."},
	"Yellow Jasper":      {"mustard yellow", "A steady, protective stone for the will, it helps you keep promises to yourself and follow through on daily routines."},
	"Pyrite":             {"brassy gold", "Often called fool's gold, it is kept on desks as a reminder of drive, ambition and practical action."},
	"Amber":              {"warm honey", "Fossilized tree resin rather than a mineral, it brings warmth, comfort and a sense of sunlight held in the hand."},
	"Rose Quartz":        {"pale pink", "The stone of unconditional love, it softens self-criticism and invites compassion for yourself and for others."},
	"Green Aventurine":   {"sparkling green", "Called the stone of opportunity, it encourages optimism, openness to new connections and a lighter heart."},
	"Malachite":          {"banded green", "A strong stone of transformation that helps release old emotional patterns; keep it polished and dry."},
	"Rhodonite":          {"pink with black veins", "Known for emotional first aid, it supports forgiveness and helps you heal old wounds without reopening them."},
	"Jade":               {"soft green", "Treasured across many cultures for harmony and good fortune, it brings a calm, nurturing steadiness to the heart."},
	"Sodalite":           {"royal blue", "A stone of logic and honest speech, it helps you organize your thoughts before you share them."},
	"Blue Lace Agate":    {"pale blue", "Gentle and soothing, its lacy bands are used to calm a nervous voice and to encourage patient, kind communication."},
	"Aquamarine":         {"sea blue", "Once carried by sailors, it is associated with serenity and with speaking clearly even when emotions run high."},
	"Lapis Lazuli":       {"deep blue with gold flecks", "Treasured by royalty for thousands of years, it is linked to wisdom, truth and inner vision."},
	"Amazonite":          {"blue-green", "The stone of harmony and truth, it helps you set boundaries and express yourself calmly."},
	"Amethyst":           {"purple", "A calming violet quartz that supports intuition, restful sleep and a quieter, clearer mind."},
	"Labradorite":        {"grey with blue flash", "Its flashes of color are linked to transformation, imagination and protecting your energy during change."},
	"Fluorite":           {"purple and green", "Called the genius stone, it brings order to scattered thoughts and supports focus while studying."},
	"Iolite":             {"violet blue", "Once used by navigators to find the sun on cloudy days, it is associated with inner direction and insight."},
	"Clear Quartz":       {"colorless", "The master healer, it amplifies intention and the energy of the stones placed near it."},
	"Selenite":           {"satin white", "Named after the moon goddess, it is used to cleanse spaces and other stones and to bring a feeling of peace."},
	"Howlite":            {"white with grey veins", "A calming stone for an overactive mind, often placed under the pillow to ease into sleep."},
	"Lepidolite":         {"lilac", "Naturally containing lithium, it is reached for during anxious periods and big life transitions."},
	"Moss Agate":         {"green inclusions", "With tiny green patterns that resemble moss, it is the gardener's stone of growth, patience and new beginnings."},
	"Prehnite":           {"pale green", "A stone of unconditional love and preparedness, it helps you trust the timing of new plans."},
	"Peridot":            {"olive green", "Formed deep within the earth, it is associated with warmth, renewal and the release of old resentments."},
	"Picture Jasper":     {"sandy brown", "Its landscape-like patterns connect you to the earth and support patient, steady progress."},
	"Snowflake Obsidian": {"black with white flecks", "Volcanic glass with white patches, it brings balance during quiet, reflective months and helps you see patterns clearly."},
	"Lava Stone":         {"charcoal black", "Porous volcanic rock that grounds and steadies, and can hold a drop of essential oil through the day."},
}

// noteFor returns the stone's line, or a plain line naming the stone if it is not in the table.
func noteFor(name string) stoneNote {
	if n, ok := stoneNotes[name]; ok {
		return n
	}
	return stoneNote{Color: "natural", Note: "A well-loved stone that many practitioners keep close for steady, everyday support."}
}
