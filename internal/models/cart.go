package models

// CartLine est une ligne du panier : un produit distinct et sa quantité.
// Les champs d'affichage sont figés au moment de l'ajout (pas de re-snapshot).
type CartLine struct {
	ProductID   string  `json:"productId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Condition   string  `json:"condition"`
	CarbonSaved float64 `json:"carbonSaved"`
	Seller      string  `json:"seller"`
	Quantity    int     `json:"quantity"`
}

type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
}

// CartTotals : valeurs dérivées, jamais stockées, recalculées à chaque mutation
type CartTotals struct {
	ItemCount        int     `json:"itemCount"`
	Subtotal         float64 `json:"subtotal"`
	TotalCarbonSaved float64 `json:"totalCarbonSaved"`
}
