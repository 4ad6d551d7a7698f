package content

// modules is the lesson catalogue, ordered for display. Bodies are plain
// text; paragraphs are separated by blank lines.
var modules = []Module{
	{
		Title: "Module 1: Modern Housing & Biosecurity",
		Lessons: []Lesson{
			{
				Title: "1.1 Poultry House Design",
				Body: "Modern house design combines passive and active thermal insulation, pressure-controlled ventilation and automated litter management. The goal is thermal and hygrometric stability: swings of 5-10 degrees C cause heat stress and open the door to pathogens.\n\nBase airflow formula: air volume (m3/h) = total live weight (kg) x specific ventilation factor. The factor ranges from 1.0 to 4.0 with ambient temperature. A well-designed house cuts energy cost by 15-20% against conventional builds.",
			},
			{
				Title: "1.2 Biosecurity Levels I, II and III",
				Body: "Level I (base) requires strict zone separation. Level II (operational) adds daily cleaning and disinfection of drinkers and footbaths renewed twice a day. Level III (emergency) isolates any sentinel bird showing symptoms immediately.\n\nThe sanitary break between flocks must last at least 14 days to break parasite cycles. Key disinfection sequence: clean, rinse, dry, disinfect, rest.",
			},
			{
				Title: "1.3 Flock Cycles and Rotation",
				Body: "A rigorous flock plan maximises house utilisation and limits risk. Rotate crops on neighbouring plots to avoid attracting rodent vectors. After any disease outbreak, follow the sanitary break with fumigation. Layer replacement runs on a 72 to 80 week cycle.",
			},
			{
				Title: "1.4 Water Quality: pH and TDS",
				Body: "Water is 70% of the bird's body. Keep pH neutral (6.5-7.5), or slightly acid (5.5-6.0) when dosing organic acids. Total dissolved solids above 1000 ppm depress water intake and worsen the feed conversion ratio. Test water monthly for E. coli and toxic minerals.",
			},
			{
				Title: "1.5 Stocking Density and Effective Temperature",
				Body: "Optimal density is 7 to 9 broilers per square metre, adjusted for real ambient temperature. Overstocking raises heat and humidity output, driving water and respiratory stress. Effective temperature combines ambient temperature, humidity and density; keep it inside the thermoneutral comfort zone.",
			},
			{
				Title: "1.6 Brooding and the Mortality Peak",
				Body: "The first 7 days are critical: 24 hours of light and a floor temperature of 32 degrees C. The mortality peak between day 7 and day 14 usually traces back to management errors such as chilling or missing feed and water. Acceptable losses are at most 0.5% over the first week.",
			},
			{
				Title: "1.7 Lighting Programs",
				Body: "Use a controlled photoperiod: around 23 hours light and 1 hour dark for growth, 14-16 hours for lay. Start at 20-40 lux at floor level, then reduce to 5-10 lux during growth to prevent feather pecking.",
			},
		},
	},
	{
		Title: "Module 2: Nutritional Engineering",
		Lessons: []Lesson{
			{
				Title: "2.1 The Energy/Protein Balance",
				Body: "The energy-to-protein ratio is the performance equation. Starter phase (day 1-10): about 1:120 to 1:130, protein-heavy. Finisher phase (day 30 to slaughter): 1:160 to 1:170, energy-heavy. Formulation software adjusts essential amino acids, chiefly lysine and methionine.",
			},
			{
				Title: "2.2 Starter Phase: High-Lysine Protocol",
				Body: "A hyper-protein starter ration (22-24% crude protein, 1.1% lysine) drives rapid development of the intestinal villi. A missed start costs roughly 300 g of live weight at slaughter.",
			},
			{
				Title: "2.3 Finisher Phase Economics",
				Body: "Cut protein to 18-20% in the finisher to reduce feed cost while maximising fattening; laying down fat needs less protein than muscle. Transition feeds over 3 days to avoid necrotic enteritis.",
			},
			{
				Title: "2.4 The Feed Conversion Ratio",
				Body: "FCR is the financial KPI: feed consumed (kg) divided by live weight gained (kg). Automatic weighing systems compute it in real time so ventilation and temperature can be corrected immediately. Every 0.1 point gained on FCR lifts gross margin by 5 to 8%.",
			},
			{
				Title: "2.5 Water Acidification and Prebiotics",
				Body: "Organic acids (formic, propionic) in drinking water suppress pathogenic gut bacteria such as E. coli and salmonella. Prebiotics and probiotics reinforce beneficial microflora, improving nutrient absorption and reducing dysbacteriosis.",
			},
			{
				Title: "2.6 Feed Storage and Moisture",
				Body: "Feed stored above 13% moisture grows moulds producing aflatoxins, which kill outright or cause severe immunosuppression. Check silo moisture twice a week.",
			},
			{
				Title: "2.7 FCR Beyond the Feed",
				Body: "Conversion is also driven by temperature, water quality and stress. A heat-stressed bird burns energy cooling itself instead of gaining weight, and the ratio degrades.",
			},
			{
				Title: "2.8 Insoluble Fibre",
				Body: "Insoluble fibre at 3-4% stimulates the gizzard, improving gut motility and dropping consistency, and helps prevent necrotic enteritis.",
			},
		},
	},
	{
		Title: "Module 3: Managing Specific Flocks",
		Lessons: []Lesson{
			{
				Title: "3.1 Broilers: Precise Thermal Maintenance",
				Body: "The world-class target is 2.5 kg in 42 days. Drop house temperature by 0.5 degrees C per day after the first week. Chronic stress from temperature or noise raises both the conversion ratio and cardiac mortality.",
			},
			{
				Title: "3.2 Layers: Hormonal Lighting",
				Body: "Target 300-330 eggs per hen per year. Light stimulation of 14 to 16 hours is the strongest hormonal lever; a wrong program can trigger an early moult and stop the lay.",
			},
			{
				Title: "3.3 Pre-Lay: Calcium and Target Weight",
				Body: "The calcium transition from 1.0% to 4.0% is vital for shell strength. Target body weight at onset of lay is 1.6 to 1.8 kg depending on strain; underweight pullets start laying late.",
			},
			{
				Title: "3.4 Breeders: Rationing and Fertility",
				Body: "Ration roosters strictly; obesity ruins fertility. Keep one rooster per 10 hens and candle eggs twice a week to track fertility.",
			},
			{
				Title: "3.5 Growth Curve Monitoring",
				Body: "Weigh weekly and plot the real growth curve against the breeder-supplied standard. Adjust feeder and drinker access to keep the flock uniform.",
			},
			{
				Title: "3.6 Wet Litter, Ammonia and Footpad Burns",
				Body: "Wet litter from poor ventilation or liquid droppings produces ammonia, causing eye and respiratory damage and footpad lesions. Immediate action: add lime or dry straw and raise the ventilation rate.",
			},
			{
				Title: "3.7 Behaviour as a Welfare Indicator",
				Body: "Huddling signals cold, dispersal signals heat, and excessive pecking signals stress or pain. These behavioural KPIs precede clinical disease by days.",
			},
			{
				Title: "3.8 Waterfowl Notes",
				Body: "Ducks and geese need water for bathing as well as drinking, take less protein than turkeys, and are particularly sensitive to aspergillosis from mouldy, humid litter.",
			},
		},
	},
	{
		Title: "Module 4: Avian Pathology & Pharmacopoeia",
		Lessons: []Lesson{
			{
				Title: "4.1 Classifying the Threats",
				Body: "Viral threats (Newcastle, Gumboro) are the most destructive because no treatment exists. Bacterial threats such as colibacillosis are treatable but costly. Prevention is 90% of the work.",
			},
			{
				Title: "4.2 Rapid Diagnosis from Droppings",
				Body: "Green droppings can indicate salmonellosis or fever; bloody droppings indicate coccidiosis and are an emergency; creamy white droppings point to kidney trouble such as infectious bronchitis. Visual diagnosis is the first tool.",
			},
			{
				Title: "4.3 Vaccination Protocol",
				Body: "Schedule: Gumboro on day 7 and 14 via drinking water; Newcastle on day 1 by eye drop, then day 14 and 28 in water. Cold-chain control all the way to the bird is vital, and a sick bird is never vaccinated.",
			},
			{
				Title: "4.4 Coccidiosis: Life Cycle and Control",
				Body: "A parasitic disease caused by Eimeria with a 4 to 7 day cycle. Emergency treatment is toltrazuril or amprolium; prevention is dry litter management and rotation of in-feed coccidiostats.",
			},
			{
				Title: "4.5 Viral Disease: Supportive Strategy",
				Body: "Newcastle causes nervous signs, twisted necks and paralysis, and has no cure. Support unaffected birds with vitamins A, D and E plus electrolytes in the water.",
			},
			{
				Title: "4.6 Antibiograms and Resistance",
				Body: "Before treating colibacillosis, run an antibiogram to pick an antibiotic that works. Blind or under-dosed use breeds resistance that renders future outbreaks untreatable.",
			},
			{
				Title: "4.7 Infectious Laryngotracheitis",
				Body: "A severe respiratory disease with bloody cough. Control it with mass vaccination and level III biosecurity; air quality, humidity and dust are the triggering factors.",
			},
		},
	},
	{
		Title: "Module 5: Poultry Financial Engineering",
		Lessons: []Lesson{
			{
				Title: "5.1 Modelling the Cost of Production",
				Body: "Cost of production = (feed cost + chick cost + fixed operating cost) / total live weight produced. Feed is 60 to 70% of the total. The competitive target is under 1000 currency units per kg.",
			},
			{
				Title: "5.2 Gross Margin and Break-Even",
				Body: "Gross margin is total sales minus feed and chick cost. Break-even point = total fixed costs / margin per unit: the kilograms you must sell before any profit appears. Projections can anticipate it three months out.",
			},
			{
				Title: "5.3 Hedging Feed Prices",
				Body: "Maize and soya prices are volatile. Hedging fixes a future raw-material price today through forward contracts, stabilising the cost of production and protecting the margin against market shocks.",
			},
			{
				Title: "5.4 SWOT and Differentiation",
				Body: "Precise flock monitoring is a strength; the premium, traceable, antibiotic-free market is the opportunity. Documented monitoring justifies a 10-15% higher price.",
			},
			{
				Title: "5.5 Return per Square Metre",
				Body: "Profit per square metre focuses optimisation on space use. Amortise major equipment such as ventilation and generators over 5 to 10 years inside fixed costs.",
			},
			{
				Title: "5.6 Business Plans and Cash Flow",
				Body: "A solid plan includes a worst-case / best-case sensitivity analysis. Project cash flow over 12 months to negotiate loans and avoid liquidity gaps between flocks.",
			},
			{
				Title: "5.7 Grants and Green Finance",
				Body: "Government and NGO grants fund agricultural modernisation; green finance is available for solar and resource-efficient projects; venture capital suits rapid expansion.",
			},
		},
	},
	{
		Title: "Module 6: Quality Management Systems",
		Lessons: []Lesson{
			{
				Title: "6.1 Introduction to HACCP",
				Body: "HACCP (hazard analysis of critical control points) is mandatory for export. It identifies critical control points in the production chain, such as incubation temperature and carcass chilling, and sets their thresholds.",
			},
			{
				Title: "6.2 Standard Operating Procedures",
				Body: "Document a procedure for every recurring task: drinker cleaning, litter changes, entry into the house. Standardisation reduces human error.",
			},
			{
				Title: "6.3 Monitoring Critical Control Points",
				Body: "Put continuous monitoring on each control point: metal detection, cooking and chilling temperatures.",
			},
			{
				Title: "6.4 Documentation and ISO Archiving",
				Body: "ISO compliance demands rigorous traceability and archiving of all procedures and control-point records; the archive is the proof of process quality.",
			},
		},
	},
	{
		Title: "Module 7: Genetics & Flock Improvement",
		Lessons: []Lesson{
			{
				Title: "7.1 Genetic Lines",
				Body: "Each strain (Ross, Cobb, Arbor Acres) has specific nutritional and climatic needs. Use the breeder-supplied growth curve as the benchmark.",
			},
			{
				Title: "7.2 Heritability of Economic Traits",
				Body: "Feed conversion and lay rate are heritable. Selecting breeders of both sexes is the key to genetic progress in the flock.",
			},
			{
				Title: "7.3 Crossbreeding and Heterosis",
				Body: "Crossing unrelated lines maximises hybrid vigour, giving better growth and survival.",
			},
			{
				Title: "7.4 Genetic Evaluation",
				Body: "Statistical evaluation of breeders (BLUP) estimates true genetic merit independent of environmental effects.",
			},
		},
	},
	{
		Title: "Module 8: Sensors & Data in the House",
		Lessons: []Lesson{
			{
				Title: "8.1 Sensor Placement",
				Body: "Place temperature, ammonia and weight sensors strategically for real-time data. Ammonia and humidity readings are the early warning for respiratory trouble.",
			},
			{
				Title: "8.2 Outbreak Prediction",
				Body: "Correlating falling water intake, rising temperature and behavioural anomalies can flag an outbreak up to three days before it becomes visible.",
			},
			{
				Title: "8.3 Camera-Based Behaviour Analysis",
				Body: "Cameras detect huddling, lethargy and pecking, allowing early targeted intervention.",
			},
			{
				Title: "8.4 Predictive Maintenance",
				Body: "Performance data from fans and generators predicts failures before they happen, avoiding a thermal catastrophe.",
			},
		},
	},
	{
		Title: "Module 9: Law & Regulation",
		Lessons: []Lesson{
			{
				Title: "9.1 Permits and Licences",
				Body: "Obtain sanitary and environmental licences. Local law governs disposal of waste and carcasses, usually by composting or incineration.",
			},
			{
				Title: "9.2 Antibiotic Regulation",
				Body: "International bodies push reduction of critically important antibiotics. Precision monitoring minimises the need for them.",
			},
			{
				Title: "9.3 Veterinary Hygiene Standards",
				Body: "Understand the health certificates required for moving birds and the cadence of regular veterinary inspections.",
			},
			{
				Title: "9.4 Animal Welfare Rules",
				Body: "Respect transport density and humane slaughter standards; they condition quality certification.",
			},
		},
	},
	{
		Title: "Module 10: Marketing & the Cold Chain",
		Lessons: []Lesson{
			{
				Title: "10.1 Farm to Consumer Cold Chain",
				Body: "Breaking the cold chain above 4 degrees C after slaughter is the first cause of contamination. Sequence: slaughter, rapid chilling, storage at 0 to 4 degrees C.",
			},
			{
				Title: "10.2 Branding and Traceability",
				Body: "A traceability code backed by flock records guarantees quality and origin; premium consumers pay more for food safety.",
			},
			{
				Title: "10.3 Competitive Pricing",
				Body: "Use the cost-of-production analysis to set a price that maximises margin while undercutting imports.",
			},
			{
				Title: "10.4 Direct Sales vs Wholesalers",
				Body: "Direct sale to markets and restaurants gives a better gross margin but demands more logistics.",
			},
		},
	},
}

// Modules returns the lesson catalogue in display order.
func Modules() []Module {
	return modules
}

// TotalLessons counts every lesson across all modules.
func TotalLessons() int {
	n := 0
	for _, m := range modules {
		n += len(m.Lessons)
	}
	return n
}
