package alignment

// Outcome is the ending shown for one of the nine labels.
type Outcome struct {
	Title       string
	Description string
}

var outcomes = map[string]Outcome{
	"Lawful Good": {
		Title: "THE KNIGHT: Lawful Good",
		Description: "You are a paragon of order and justice. You believe in using\n" +
			"law and tradition to create a better world for all. Your\n" +
			"choices reflect a commitment to doing what is right,\n" +
			"even when it is difficult - following a strict moral code.",
	},
	"Neutral Good": {
		Title: "THE HERO: Neutral Good",
		Description: "You are a kind soul who does good without being bound\n" +
			"by strict codes. You follow your conscience and help others\n" +
			"because it's the right thing to do, regardless of laws\n" +
			"or perceived righteouness.",
	},
	"Chaotic Good": {
		Title: "THE REBEL: Chaotic Good",
		Description: "You are a free spirit who believes in doing good on your\n" +
			"own terms. You value individual freedom and will bend\n" +
			"or even break rules when they threaten what you believe is right.",
	},
	"Lawful Neutral": {
		Title: "THE JUDGE: Lawful Neutral",
		Description: "You believe in order, law, and tradition above all else.\n" +
			"You follow a personal code or the laws of society,\n" +
			"regardless of whether they lead to good or evil outcomes.",
	},
	"True Neutral": {
		Title: "THE LURKER: True Neutral",
		Description: "You maintain perfect balance in all things. You avoid\n" +
			"extremes and believe that all forces should exist in harmony.\n" +
			"You are neither altruistic nor selfish, lawful nor chaotic. In other words...\n" +
			"unaffected by the petty squabbles of the masses.",
	},
	"Chaotic Neutral": {
		Title: "THE NARCISSIST: Chaotic Neutral",
		Description: "You are a true individualist who values personal freedom\n" +
			"above all else. You follow your whims and desires,\n" +
			"unconcerned with laws, traditions, or moral codes.\n" +
			"A true self loving spirit.",
	},
	"Lawful Evil": {
		Title: "THE OVERLORD: Lawful Evil",
		Description: "You use society's rules and laws to gain power and control.\n" +
			"You believe in order, but use it for selfish or cruel purposes.\n" +
			"You are a ruthless ruler.",
	},
	"Neutral Evil": {
		Title: "THE VILLAIN: Neutral Evil",
		Description: "You do whatever you can get away with, without loyalty\n" +
			"to anyone but yourself. You have no regard for laws or\n" +
			"traditions. Persuing only personal power and pleasure.",
	},
	"Chaotic Evil": {
		Title: "THE SADIST: Chaotic Evil",
		Description: "You are a destructive force of unadulterated narcissism and violence.\n" +
			"You reject all laws, traditions, and moral obligation.\n" +
			"You do whatever you want, whenever you want with no regard.",
	},
}

// Lookup returns the ending for a combined label.
func Lookup(label string) (Outcome, bool) {
	o, ok := outcomes[label]
	return o, ok
}

// Labels lists the nine combined labels in tag order.
func Labels() []string {
	return []string{
		"Lawful Good", "Neutral Good", "Chaotic Good",
		"Lawful Neutral", "True Neutral", "Chaotic Neutral",
		"Lawful Evil", "Neutral Evil", "Chaotic Evil",
	}
}
