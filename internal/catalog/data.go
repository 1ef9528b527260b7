package catalog

// Built-in catalog. Unit weights are pounds per unit.
var defaultEntries = []Entry{
	{Key: "geo-bar-bulk", ProductID: "444", DisplayName: "Geo Bar - Bulk", Unit: "Ton", UnitWeight: 2000},
	{Key: "geo-bar-sack", ProductID: "445", DisplayName: "Geo Bar - Sack", Unit: "100#", UnitWeight: 100},
	{Key: "geo-gel", ProductID: "101", DisplayName: "Geo Gel", Unit: "50#", UnitWeight: 50},
	{Key: "geo-gel-bulk", ProductID: "102", DisplayName: "Geo Gel - Bulk", Unit: "Ton", UnitWeight: 2000},
	{Key: "caustic-soda", ProductID: "117", DisplayName: "Caustic Soda", Unit: "50#", UnitWeight: 50},
	{Key: "soda-ash", ProductID: "118", DisplayName: "Soda Ash", Unit: "50#", UnitWeight: 50},
	{Key: "lime", ProductID: "120", DisplayName: "Lime", Unit: "50#", UnitWeight: 50},
	{Key: "geo-thin", ProductID: "133", DisplayName: "Geo Thin", Unit: "1 GAL", UnitWeight: 8.6},
	{Key: "geo-drill-pac", ProductID: "152", DisplayName: "Geo Drill Pac", Unit: "50#", UnitWeight: 50},
	{Key: "poly-plus", ProductID: "160", DisplayName: "Poly Plus", Unit: "5 GAL", UnitWeight: 43},
	{Key: "geo-seal-fine", ProductID: "179", DisplayName: "Geo Seal - Fine", Unit: "40#", UnitWeight: 40},
	{Key: "geo-seal-medium", ProductID: "180", DisplayName: "Geo Seal - Medium", Unit: "40#", UnitWeight: 40},
	{Key: "sawdust", ProductID: "171", DisplayName: "Sawdust", Unit: "Sack", UnitWeight: 40},
	{Key: "diesel", ProductID: "200", DisplayName: "Diesel", Unit: "BBL", UnitWeight: 295},
}
