package content

// questionBank is the full mixed-kind exercise pool. The quiz engine samples
// from it without caring about the distribution of kinds, so new entries can
// be appended freely.
var questionBank = []Question{
	// True/False
	{Kind: KindTrueFalse, Topic: "Nutrition", Prompt: "The ideal water pH when dosing organic acids is below 6.0.", Truth: true},
	{Kind: KindTrueFalse, Topic: "Nutrition", Prompt: "Lipogenesis is the phase where the bird gains the most protein.", Truth: false,
		Explanation: "Lipogenesis is the creation of fat, not protein."},
	{Kind: KindTrueFalse, Topic: "Pathology", Prompt: "A birnavirus is the cause of Gumboro disease.", Truth: true},
	{Kind: KindTrueFalse, Topic: "Finance", Prompt: "Hedging increases the risk of feed price swings.", Truth: false,
		Explanation: "Hedging exists to stabilise the feed price, not to amplify it."},
	{Kind: KindTrueFalse, Topic: "Pathology", Prompt: "Newcastle disease is treated effectively with antibiotics.", Truth: false,
		Explanation: "Newcastle is viral; antibiotics have no effect on viruses."},
	{Kind: KindTrueFalse, Topic: "Finance", Prompt: "The feed conversion ratio measures the economic performance of the flock.", Truth: true,
		Explanation: "A low FCR means less feed per kilogram of meat, which raises the margin."},
	{Kind: KindTrueFalse, Topic: "Biosecurity", Prompt: "The sanitary break between flocks must last at least 14 days.", Truth: true},
	{Kind: KindTrueFalse, Topic: "Housing", Prompt: "Floor temperature at brooding should be 32 degrees C.", Truth: true},
	{Kind: KindTrueFalse, Topic: "Pathology", Prompt: "A sick bird should be vaccinated immediately.", Truth: false,
		Explanation: "Never vaccinate a sick bird; the vaccine would add stress without protection."},
	{Kind: KindTrueFalse, Topic: "Housing", Prompt: "Overstocking lowers the effective temperature felt by the birds.", Truth: false,
		Explanation: "Density adds heat and humidity, raising the effective temperature."},
	{Kind: KindTrueFalse, Topic: "Nutrition", Prompt: "Insoluble fibre at 3-4% stimulates the gizzard.", Truth: true},
	{Kind: KindTrueFalse, Topic: "Genetics", Prompt: "Feed conversion and lay rate are heritable traits.", Truth: true},

	// Multiple choice
	{Kind: KindMultipleChoice, Topic: "Pathology", Prompt: "Which organ is destroyed by the Gumboro virus?",
		Options: []string{"Liver", "Kidneys", "Bursa of Fabricius", "Heart"}, Answer: "Bursa of Fabricius"},
	{Kind: KindMultipleChoice, Topic: "Finance", Prompt: "Which is the single most important financial KPI?",
		Options: []string{"Mortality rate", "FCR", "Gross margin", "Fixed cost"}, Answer: "FCR"},
	{Kind: KindMultipleChoice, Topic: "Marketing", Prompt: "At what temperature must chilled carcasses be stored?",
		Options: []string{"20 to 25 C", "10 to 15 C", "0 to 4 C", "Below 0 C"}, Answer: "0 to 4 C"},
	{Kind: KindMultipleChoice, Topic: "Pathology", Prompt: "Bloody droppings are the classic emergency sign of which disease?",
		Options: []string{"Infectious bronchitis", "Coccidiosis", "Fowl pox", "Salmonellosis"}, Answer: "Coccidiosis"},
	{Kind: KindMultipleChoice, Topic: "Nutrition", Prompt: "Which amino acid is usually first limiting for broiler growth?",
		Options: []string{"Glycine", "Lysine", "Tryptophan", "Valine"}, Answer: "Lysine"},
	{Kind: KindMultipleChoice, Topic: "Housing", Prompt: "What is the optimal broiler stocking density?",
		Options: []string{"3 to 5 per m2", "7 to 9 per m2", "12 to 15 per m2", "20 per m2"}, Answer: "7 to 9 per m2"},
	{Kind: KindMultipleChoice, Topic: "Pathology", Prompt: "Which disease presents twisted necks and paralysis?",
		Options: []string{"Newcastle disease", "Aspergillosis", "Coccidiosis", "Fowl cholera"}, Answer: "Newcastle disease"},
	{Kind: KindMultipleChoice, Topic: "Biosecurity", Prompt: "Above what ammonia level does the litter become critical?",
		Options: []string{"5 ppm", "10 ppm", "25 ppm", "100 ppm"}, Answer: "25 ppm"},
	{Kind: KindMultipleChoice, Topic: "Finance", Prompt: "What share of the cost of production does feed represent?",
		Options: []string{"10 to 20%", "30 to 40%", "60 to 70%", "90%"}, Answer: "60 to 70%"},
	{Kind: KindMultipleChoice, Topic: "Flocks", Prompt: "How many hours of light stimulate lay in layers?",
		Options: []string{"8 to 10", "14 to 16", "20 to 22", "24"}, Answer: "14 to 16"},
	{Kind: KindMultipleChoice, Topic: "Genetics", Prompt: "Crossing unrelated lines to boost vigour is called what?",
		Options: []string{"Inbreeding", "Heterosis", "Selection", "Mutation"}, Answer: "Heterosis"},
	{Kind: KindMultipleChoice, Topic: "Quality", Prompt: "What does HACCP identify in the production chain?",
		Options: []string{"Critical control points", "Breeding lines", "Feed suppliers", "Market prices"}, Answer: "Critical control points"},

	// Free text
	{Kind: KindFreeText, Topic: "Nutrition", Prompt: "What is the maximum recommended moisture level for stored feed?", Answer: "13%"},
	{Kind: KindFreeText, Topic: "Flocks", Prompt: "What is the ideal rooster-to-hen ratio for breeders?", Answer: "1/10"},
	{Kind: KindFreeText, Topic: "Genetics", Prompt: "Which performance ratio is strongly heritable and drives genetic progress?", Answer: "FCR"},
	{Kind: KindFreeText, Topic: "Biosecurity", Prompt: "How many days must the sanitary break last, at minimum?", Answer: "14"},
	{Kind: KindFreeText, Topic: "Housing", Prompt: "What floor temperature in degrees C is required at brooding?", Answer: "32"},
	{Kind: KindFreeText, Topic: "Water", Prompt: "What is the TDS limit for drinking water in ppm?", Answer: "1000"},
	{Kind: KindFreeText, Topic: "Flocks", Prompt: "What is the broiler live-weight target in kg at 42 days?", Answer: "2.5"},
	{Kind: KindFreeText, Topic: "Pathology", Prompt: "Which test must precede antibiotic treatment of colibacillosis?", Answer: "Antibiogram"},
}

// QuestionBank returns the mixed exercise pool.
func QuestionBank() []Question {
	return questionBank
}

var diagnosticCards = []DiagnosticCard{
	{
		Symptom: "Very liquid greenish droppings with nervous signs (twisted neck).",
		Answer:  "Newcastle disease",
		Options: []string{"Coccidiosis", "Colibacillosis", "Newcastle disease", "Infectious bronchitis"},
	},
	{
		Symptom: "Fresh blood in the droppings and lethargy.",
		Answer:  "Coccidiosis",
		Options: []string{"Infectious bronchitis", "Coccidiosis", "Aflatoxicosis", "Newcastle disease"},
	},
	{
		Symptom: "Eye lesions and tracheal rales with cough.",
		Answer:  "Infectious laryngotracheitis",
		Options: []string{"Infectious laryngotracheitis", "Gumboro disease", "Infectious anaemia", "Mycoplasmosis"},
	},
	{
		Symptom: "Swollen abdomen full of fluid, laboured breathing.",
		Answer:  "Ascites",
		Options: []string{"Salmonellosis", "Ascites", "Avian tuberculosis", "Fowl cholera"},
	},
	{
		Symptom: "Feather loss and lesions on the head.",
		Answer:  "Feather pecking",
		Options: []string{"Fowl pox", "Feather pecking", "Mycoplasmosis", "Gumboro disease"},
	},
	{
		Symptom: "Crusty nodular lesions on the skin (dry form).",
		Answer:  "Fowl pox",
		Options: []string{"Fowl pox", "Coccidiosis", "Colibacillosis", "Avian tuberculosis"},
	},
}

// DiagnosticCards returns the symptom cards for the timed diagnostic game.
func DiagnosticCards() []DiagnosticCard {
	return diagnosticCards
}

var reminders = []Reminder{
	{Day: 1, Event: "Review Module 1: Housing & Biosecurity"},
	{Day: 7, Event: "Weekly quiz: Nutrition (Module 2)"},
	{Day: 15, Event: "Technical read: sensors in the poultry house"},
	{Day: 21, Event: "Exercise: compute the break-even point (Finance)"},
	{Day: 28, Event: "Simulation: crisis management drill (Module 6)"},
}

// Reminders returns the fixed monthly study reminders.
func Reminders() []Reminder {
	return reminders
}
