package staticdata

import "broodcore/pkg/domain"

// eyes lists eye types with their breeding probabilities. Entries with
// probability 0 exist on site but can never hatch; they stay in the
// collection because the presentation layer still lists them.
var eyes = []domain.EyeType{
	{Name: "Common", OnSiteID: 0, Probability: 0.458},
	{Name: "Uncommon", OnSiteID: 1, Probability: 0.242},
	{Name: "Unusual", OnSiteID: 2, Probability: 0.111},
	{Name: "Rare", OnSiteID: 3, Probability: 0.091},
	{Name: "Bright", OnSiteID: 4, Probability: 0.022},
	{Name: "Pastel", OnSiteID: 5, Probability: 0.021},
	{Name: "Goat", OnSiteID: 6, Probability: 0.018},
	{Name: "Faceted", OnSiteID: 7, Probability: 0.018},
	{Name: "Primal", OnSiteID: 8, Probability: 0.014},
	{Name: "Multi-Gaze", OnSiteID: 9, Probability: 0.005},
	{Name: "Glowing", OnSiteID: 10, Probability: 0},
	{Name: "Dark Sclera", OnSiteID: 11, Probability: 0},
	{Name: "Swirl", OnSiteID: 12, Probability: 0},
	{Name: "Innocent", OnSiteID: 13, Probability: 0},
	{Name: "Button", OnSiteID: 14, Probability: 0},
}
