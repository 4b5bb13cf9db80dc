package quiz

// Detailed-mode dimensions, modelled on the SCL-90 symptom factors.
const (
	DimSomatization  = "Somatization"
	DimObsessive     = "Obsessive-Compulsive"
	DimInterpersonal = "Interpersonal Sensitivity"
	DimDepression    = "Depression"
	DimAnxiety       = "Anxiety"
	DimHostility     = "Hostility"
	DimPhobic        = "Phobic Anxiety"
	DimParanoid      = "Paranoid Ideation"
	DimPsychoticism  = "Psychoticism"
)

var normalQuestions = []Question{
	{
		ID:        "n1",
		Text:      "Your boss pings you at 11pm with \"got a sec?\". You:",
		Dimension: "Career Anxiety",
		Options: []string{
			"Reply tomorrow. Sleep is a human right.",
			"Stare at it for an hour, then reply \"sure!\"",
			"Already drafted a resignation letter in my head",
		},
	},
	{
		ID:        "n2",
		Text:      "A neighbour auntie makes eye contact in the lift. You:",
		Dimension: "Social Avoidance",
		Options: []string{
			"Smile and chat about the weather",
			"Suddenly find my phone fascinating",
			"Take the stairs for the next three months",
		},
	},
	{
		ID:        "n3",
		Text:      "Your last date was:",
		Dimension: "Romantic Drought",
		Options: []string{
			"Recently, and it went fine",
			"Before the last phone upgrade",
			"With a delivery rider, if that counts",
		},
	},
	{
		ID:        "n4",
		Text:      "Family group chat asks when you will settle down. You:",
		Dimension: "Family Pressure",
		Options: []string{
			"Answer honestly and move on",
			"Send a sticker and mute the chat",
			"Leave the group and blame the network",
		},
	},
	{
		ID:        "n5",
		Text:      "How many hours a day do you scroll short videos?",
		Dimension: "Digital Escapism",
		Options: []string{
			"Under one",
			"Two to four",
			"I measure it in battery cycles",
		},
	},
	{
		ID:        "n6",
		Text:      "Lunch is a 15-yuan box meal. Your thought:",
		Dimension: "Existential Drift",
		Options: []string{
			"Good value, honestly",
			"This is fine. Everything is fine.",
			"So this is the bottom layer of the logic",
		},
	},
}

var detailedQuestions = []Question{
	{ID: "d1", Dimension: DimSomatization, Text: "Headaches or a heavy head after a day of meetings"},
	{ID: "d2", Dimension: DimSomatization, Text: "Soreness in your lower back or neck"},
	{ID: "d3", Dimension: DimSomatization, Text: "Feeling weak in parts of your body"},

	{ID: "d4", Dimension: DimObsessive, Text: "Checking and double-checking what you just sent"},
	{ID: "d5", Dimension: DimObsessive, Text: "Trouble making even small decisions"},
	{ID: "d6", Dimension: DimObsessive, Text: "Unwanted thoughts that keep coming back"},

	{ID: "d7", Dimension: DimInterpersonal, Text: "Feeling that others do not understand you"},
	{ID: "d8", Dimension: DimInterpersonal, Text: "Feeling inferior to the people around you"},
	{ID: "d9", Dimension: DimInterpersonal, Text: "Feeling uneasy when people watch or talk about you"},

	{ID: "d10", Dimension: DimDepression, Text: "Feeling low in energy or slowed down"},
	{ID: "d11", Dimension: DimDepression, Text: "Losing interest in things you used to enjoy"},
	{ID: "d12", Dimension: DimDepression, Text: "Feeling hopeless about the future"},

	{ID: "d13", Dimension: DimAnxiety, Text: "Feeling nervous or shaky inside"},
	{ID: "d14", Dimension: DimAnxiety, Text: "Sudden fright for no reason"},
	{ID: "d15", Dimension: DimAnxiety, Text: "Feeling so restless you cannot sit still"},

	{ID: "d16", Dimension: DimHostility, Text: "Feeling easily annoyed or irritated"},
	{ID: "d17", Dimension: DimHostility, Text: "Urges to smash or break things"},
	{ID: "d18", Dimension: DimHostility, Text: "Getting into frequent arguments"},

	{ID: "d19", Dimension: DimPhobic, Text: "Feeling afraid in open spaces or on the street"},
	{ID: "d20", Dimension: DimPhobic, Text: "Avoiding places or activities because they frighten you"},
	{ID: "d21", Dimension: DimPhobic, Text: "Feeling nervous when you are left alone"},

	{ID: "d22", Dimension: DimParanoid, Text: "Feeling that most people cannot be trusted"},
	{ID: "d23", Dimension: DimParanoid, Text: "Feeling that you are watched or talked about"},
	{ID: "d24", Dimension: DimParanoid, Text: "Others not giving you proper credit for your work"},

	{ID: "d25", Dimension: DimPsychoticism, Text: "Feeling lonely even when you are with people"},
	{ID: "d26", Dimension: DimPsychoticism, Text: "The idea that something is wrong with your mind"},
	{ID: "d27", Dimension: DimPsychoticism, Text: "Never feeling close to another person"},
}

var dimensions = []Dimension{
	{ID: DimSomatization, QuestionIDs: []string{"d1", "d2", "d3"}},
	{ID: DimObsessive, QuestionIDs: []string{"d4", "d5", "d6"}},
	{ID: DimInterpersonal, QuestionIDs: []string{"d7", "d8", "d9"}},
	{ID: DimDepression, QuestionIDs: []string{"d10", "d11", "d12"}},
	{ID: DimAnxiety, QuestionIDs: []string{"d13", "d14", "d15"}},
	{ID: DimHostility, QuestionIDs: []string{"d16", "d17", "d18"}},
	{ID: DimPhobic, QuestionIDs: []string{"d19", "d20", "d21"}},
	{ID: DimParanoid, QuestionIDs: []string{"d22", "d23", "d24"}},
	{ID: DimPsychoticism, QuestionIDs: []string{"d25", "d26", "d27"}},
}

// defaultCatalog is built once at init; a broken seed is a programming error.
var defaultCatalog = mustCatalog(normalQuestions, detailedQuestions, dimensions)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustCatalog(normal, detailed []Question, dims []Dimension) *Catalog {
	c, err := NewCatalog(normal, detailed, dims)
	if err != nil {
		panic(err)
	}
	return c
}
