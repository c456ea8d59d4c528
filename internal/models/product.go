package models

import "time"

// Conditions possibles d'un produit d'occasion
const (
	ConditionNew         = "New"
	ConditionLikeNew     = "Like New"
	ConditionGood        = "Good"
	ConditionFair        = "Fair"
	ConditionRefurbished = "Refurbished"
)

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	CarbonSaved float64   `json:"carbonSaved"` // kg de CO2e évités
	Seller      string    `json:"seller"`
	ListedDate  time.Time `json:"listedDate"`
	Image       string    `json:"image"`
}

// ProductDraft représente une annonce soumise par un vendeur (flux "sell")
type ProductDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
	CarbonSaved float64 `json:"carbonSaved"`
	Image       string  `json:"image"`
}
