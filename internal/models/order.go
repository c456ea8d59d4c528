package models

import "time"

// Order est la trace minimale laissée par le checkout (stub : pas de paiement)
type Order struct {
	ID               string     `json:"id"`
	SessionID        string     `json:"sessionId"`
	Lines            []CartLine `json:"lines"`
	Subtotal         float64    `json:"subtotal"`
	TotalCarbonSaved float64    `json:"totalCarbonSaved"`
	CreatedAt        time.Time  `json:"createdAt"`
}
