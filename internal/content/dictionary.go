package content

import "strings"

var terms = []Term{
	{Term: "Ammonia (NH3)", Domain: "Biosecurity", Definition: "Toxic gas released by wet litter. Causes respiratory and eye lesions. Critical level: above 25 ppm."},
	{Term: "FCR", Domain: "Performance", Definition: "Feed conversion ratio: feed consumed (kg) over live weight gained (kg). Target at or below 1.7 to protect gross margin."},
	{Term: "Lysine", Domain: "Nutrition", Definition: "Essential amino acid, usually first limiting for broiler growth. Indispensable for protein synthesis."},
	{Term: "Bursa of Fabricius", Domain: "Pathology", Definition: "Lymphoid organ of birds behind the cloaca. Destroyed by the Gumboro virus, causing immunosuppression."},
	{Term: "Cash Flow", Domain: "Finance", Definition: "Money entering and leaving the business over a period. Crucial for liquidity between flocks."},
	{Term: "TDS", Domain: "Water Quality", Definition: "Total dissolved solids in water. High TDS depresses appetite and degrades conversion. Limit: 1000 ppm."},
	{Term: "Antibiogram", Domain: "Pathology", Definition: "Sensitivity test run on an isolated bacterial strain to pick the effective antibiotic and avoid resistance."},
	{Term: "HACCP", Domain: "Quality", Definition: "Hazard analysis and critical control points. Mandatory for export and quality certification."},
	{Term: "Heritability", Domain: "Genetics", Definition: "Transmission of genetic traits. Feed conversion and lay rate are strongly heritable."},
	{Term: "Gross Margin", Domain: "Finance", Definition: "Total sales minus variable costs (feed, chicks, medicine). What remains to cover fixed costs."},
	{Term: "Sanitary Break", Domain: "Biosecurity", Definition: "Empty period between flocks, minimum 14 days, that interrupts parasite and pathogen cycles."},
	{Term: "Thermoneutral Zone", Domain: "Housing", Definition: "Temperature band in which the bird spends no extra energy heating or cooling itself."},
	{Term: "Candling", Domain: "Breeding", Definition: "Shining light through eggs to check fertility and embryo development."},
	{Term: "Coccidiostat", Domain: "Pathology", Definition: "In-feed additive suppressing Eimeria. Rotated to avoid resistance."},
	{Term: "Photoperiod", Domain: "Housing", Definition: "The daily light/dark cycle. Drives growth in broilers and lay hormones in layers."},
	{Term: "Aflatoxin", Domain: "Nutrition", Definition: "Mould toxin from feed stored above 13% moisture. Lethal or severely immunosuppressive."},
	{Term: "Break-Even Point", Domain: "Finance", Definition: "Production volume where total revenue equals total cost; below it every kilogram sold loses money."},
	{Term: "Footbath", Domain: "Biosecurity", Definition: "Disinfectant bath at the house entrance, renewed twice daily under level II biosecurity."},
	{Term: "Culling", Domain: "Management", Definition: "Removing sick or unproductive birds to protect flock health and average performance."},
	{Term: "Vertical Transmission", Domain: "Pathology", Definition: "Pathogen passage from hen to chick through the egg, as with salmonella and mycoplasma."},
}

// Terms returns the full dictionary.
func Terms() []Term {
	return terms
}

// SearchTerms returns up to limit terms whose name or definition contains
// query, case-insensitively. An empty query matches nothing.
func SearchTerms(query string, limit int) []Term {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []Term
	for _, t := range terms {
		if strings.Contains(strings.ToLower(t.Term), query) ||
			strings.Contains(strings.ToLower(t.Definition), query) {
			out = append(out, t)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}
