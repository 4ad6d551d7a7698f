package content

var concepts = []Concept{
	{
		Term:       "Break-Even Point",
		Domain:     "Finance / Accounting",
		Definition: "The production volume where total revenue equals total cost. Example: with fixed costs of 1,000,000 and a gross margin of 100 per kg, break-even is 10,000 kg.",
		KPI:        true,
	},
	{
		Term:       "Hedging",
		Domain:     "Finance / Markets",
		Definition: "Fixing the future price of raw materials (maize, soya) today through forward contracts to minimise cost volatility.",
	},
	{
		Term:       "Feed Conversion Ratio",
		Domain:     "Performance / Operations",
		Definition: "Feed consumed (kg) over live weight produced (kg). Keep at or below 1.7 to optimise gross margin.",
		KPI:        true,
	},
	{
		Term:       "Working Capital",
		Domain:     "Finance / Treasury",
		Definition: "Short-term liquidity: current assets minus current liabilities. Positive working capital pays for feed before the flock is sold.",
		KPI:        true,
	},
	{
		Term:       "Sensitivity Analysis",
		Domain:     "Finance / Planning",
		Definition: "Modelling the impact of one variable shifting, for example a 10% soya price rise, on the final cost of production.",
	},
	{
		Term:       "Premium Positioning",
		Domain:     "Marketing / Sales",
		Definition: "Justifying a higher price through full traceability or antibiotic-free certification, targeting a 15% gross margin lift.",
	},
	{
		Term:       "Cost of Production",
		Domain:     "Finance / Accounting",
		Definition: "Feed, chick and fixed operating costs divided by total live weight produced. Feed alone is 60-70% of it.",
		KPI:        true,
	},
	{
		Term:       "Amortisation",
		Domain:     "Finance / Accounting",
		Definition: "Spreading the cost of major equipment (ventilation, generators) over 5 to 10 years inside fixed costs.",
	},
	{
		Term:       "Return per Square Metre",
		Domain:     "Performance / Operations",
		Definition: "Net profit divided by house surface. Focuses optimisation on space use.",
		KPI:        true,
	},
	{
		Term:       "Cash-Flow Projection",
		Domain:     "Finance / Treasury",
		Definition: "A 12-month inflow/outflow forecast used to negotiate loans and avoid liquidity gaps between flocks.",
	},
}

// Concepts returns the finance and marketing concept cards.
func Concepts() []Concept {
	return concepts
}
