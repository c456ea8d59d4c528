package models

// Clés de tri supportées par le moteur de filtrage
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortCarbon    = "carbon"
)

// Bandes d'économie carbone (low < 5, medium 5–15, high ≥ 15)
const (
	CarbonBandLow    = "low"
	CarbonBandMedium = "medium"
	CarbonBandHigh   = "high"
)

// Niveaux du filtre durabilité (règles métier, voir catalog.SustainabilityRules)
const (
	SustainabilityExcellent = "excellent"
	SustainabilityGood      = "good"
)

// FilterConfig décrit la vue demandée par une session : éphémère,
// reconstruite à chaque requête, jamais persistée.
type FilterConfig struct {
	SearchTerm           string     `json:"searchTerm"`
	CategoryFilter       string     `json:"categoryFilter"`
	ConditionFilter      string     `json:"conditionFilter"`
	PriceRange           [2]float64 `json:"priceRange"` // [min, max] inclusif
	CarbonSavingsFilter  string     `json:"carbonSavingsFilter"`
	SustainabilityFilter string     `json:"sustainabilityFilter"`
	SortBy               string     `json:"sortBy"`
}
