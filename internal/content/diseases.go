package content

var diseases = []Disease{
	{
		Name:       "Newcastle Disease",
		Type:       "Viral",
		Symptoms:   "Greenish diarrhoea, nervous signs (twisted neck, paralysis), rapid mortality.",
		Cause:      "Avian paramyxovirus type 1. Spread by aerosols, droppings and contaminated equipment.",
		Remedy:     "No curative treatment. Support with electrolytes and vitamins A, D, E. Prevention: mass vaccination.",
		Prevention: "No uncontrolled transport; quarantine new birds for 14 days.",
	},
	{
		Name:       "Infectious Bronchitis",
		Type:       "Viral",
		Symptoms:   "Respiratory signs (rales, cough), drop in lay and misshapen eggs in layers.",
		Cause:      "Avian coronavirus. Highly contagious by air.",
		Remedy:     "No curative treatment. Respiratory support and air management.",
		Prevention: "Avoid sudden temperature swings and excess dust.",
	},
	{
		Name:       "Gumboro Disease",
		Type:       "Viral",
		Symptoms:   "Prostration, watery diarrhoea, dehydration, severe immunosuppression.",
		Cause:      "Birnavirus attacking the bursa of Fabricius, the immune organ.",
		Remedy:     "No treatment. Immune support and control of secondary infections.",
		Prevention: "Vaccinate at the optimal window (day 7 and 14).",
	},
	{
		Name:       "Infectious Laryngotracheitis",
		Type:       "Viral",
		Symptoms:   "Tracheal rales, bloody cough, laboured breathing.",
		Cause:      "Herpesvirus. Very contagious by direct contact or fomites.",
		Remedy:     "Emergency vaccination of the uninfected flock; intensive cleaning.",
		Prevention: "Keep air quality high; ammonia is a trigger.",
	},
	{
		Name:       "Fowl Pox",
		Type:       "Viral",
		Symptoms:   "Crusty nodular skin lesions (dry form) or mouth and throat lesions (wet form).",
		Cause:      "Poxvirus carried by mosquito bites or direct contact.",
		Remedy:     "Symptomatic treatment; prevention by wing-web vaccination.",
		Prevention: "Control mosquitoes and other vectors.",
	},
	{
		Name:       "Colibacillosis",
		Type:       "Bacterial",
		Symptoms:   "Pericarditis, airsacculitis, omphalitis; heavy early-flock mortality.",
		Cause:      "Escherichia coli, usually secondary to chilling or ventilation failure.",
		Remedy:     "Targeted antibiotics after an antibiogram.",
		Prevention: "Keep humidity down and drinkers sanitised.",
	},
	{
		Name:       "Salmonellosis",
		Type:       "Bacterial",
		Symptoms:   "Greenish diarrhoea, arthritis and lameness, chick mortality.",
		Cause:      "Salmonella; vertical transmission through the egg or horizontal from the environment.",
		Remedy:     "Antibiotics by sensitivity; strict cold-chain control downstream.",
		Prevention: "Clean water and rodent control in the house.",
	},
	{
		Name:       "Mycoplasmosis (CRD)",
		Type:       "Bacterial",
		Symptoms:   "Chronic respiratory disease: cough, sneezing, nasal discharge.",
		Cause:      "Mycoplasma gallisepticum or M. synoviae; vertical and horizontal transmission.",
		Remedy:     "Specific antibiotics (tylosin); eradication is difficult.",
		Prevention: "Limit heat stress and overstocking, which accelerate spread.",
	},
	{
		Name:       "Fowl Cholera",
		Type:       "Bacterial",
		Symptoms:   "Sudden death without signs, yellow-green diarrhoea, swollen wattles.",
		Cause:      "Pasteurella multocida; contamination from wild birds and stagnant water.",
		Remedy:     "Rapid antibiotics and intense disinfection; preventive vaccination.",
		Prevention: "No contact with wild birds; dispose of carcasses properly.",
	},
	{
		Name:       "Avian Tuberculosis",
		Type:       "Bacterial",
		Symptoms:   "Progressive wasting, pallor, nodular lesions on liver and spleen.",
		Cause:      "Mycobacterium avium ingested with contaminated feed.",
		Remedy:     "No treatment. Cull and fully disinfect the site.",
		Prevention: "Do not keep old birds; they are a chronic source.",
	},
	{
		Name:       "Coccidiosis",
		Type:       "Parasitic",
		Symptoms:   "Bloody or orange droppings, ruffled feathers, weight loss and lethargy.",
		Cause:      "Ingestion of sporulated Eimeria oocysts.",
		Remedy:     "Coccidiostats (toltrazuril); prevention by dry litter and vaccination.",
		Prevention: "Avoid high humidity and overstocking.",
	},
	{
		Name:       "Aspergillosis",
		Type:       "Fungal",
		Symptoms:   "Severe respiratory distress, mould plaques in lungs and air sacs.",
		Cause:      "Aspergillus fumigatus spores inhaled from mouldy litter or feed.",
		Remedy:     "Antifungals (rarely effective); remove the source.",
		Prevention: "Dry litter; never store feed above 13% moisture.",
	},
	{
		Name:       "Blackhead (Histomonosis)",
		Type:       "Parasitic",
		Symptoms:   "Necrotic liver lesions, swollen caeca, cyanotic head.",
		Cause:      "Histomonas meleagridis, often carried by earthworms or the Heterakis nematode.",
		Remedy:     "Anti-protozoal drugs; control intestinal worms.",
		Prevention: "Do not mix with turkeys or give access to untreated ground.",
	},
	{
		Name:       "Gapeworm",
		Type:       "Parasitic",
		Symptoms:   "Chronic cough, noisy breathing, loss of voice, tracheitis.",
		Cause:      "Syngamus trachea or the respiratory mite Sternostoma tracheacolum.",
		Remedy:     "Antiparasitics (ivermectin).",
		Prevention: "Good ventilation and dust control.",
	},
	{
		Name:       "Tapeworm Infestation",
		Type:       "Parasitic",
		Symptoms:   "Wasting, drop in lay, diarrhoea.",
		Cause:      "Cestodes carried by intermediate hosts such as snails and insects.",
		Remedy:     "Regular deworming (niclosamide).",
		Prevention: "Limit outdoor contact and manage debris.",
	},
	{
		Name:       "Ascites",
		Type:       "Metabolic",
		Symptoms:   "Fluid-filled swollen abdomen, laboured breathing from an overloaded heart.",
		Cause:      "Growth too fast for oxygen supply, poor air quality or constant cold.",
		Remedy:     "Slow the growth curve, improve ventilation, reduce stress.",
		Prevention: "Avoid hyper-energetic rations with weak ventilation.",
	},
	{
		Name:       "Sudden Death Syndrome",
		Type:       "Metabolic",
		Symptoms:   "Sudden death of apparently healthy birds, usually fast-growing males.",
		Cause:      "Cardiac arrhythmia driven by growth speed.",
		Remedy:     "Slower, controlled light and feeding program.",
		Prevention: "Avoid accelerated growth and excess stress.",
	},
	{
		Name:       "Cage Layer Fatigue",
		Type:       "Metabolic",
		Symptoms:   "Lameness, difficulty moving, soft bones in layers.",
		Cause:      "Calcium or vitamin D3 deficiency, poor absorption or excessive demand.",
		Remedy:     "Rebalance calcium, phosphorus and vitamin D3 in the ration.",
		Prevention: "Correct pre-lay ration.",
	},
}

// Diseases returns the pathology reference cards.
func Diseases() []Disease {
	return diseases
}
