package catalog

import "github.com/KJaiswall/eco-mart-exchange-hub/internal/models"

// Facets : valeurs dérivées de la liste COMPLÈTE (non filtrée), utilisées
// pour alimenter l'UI des filtres et initialiser la borne haute du prix.
type Facets struct {
	Categories []string `json:"categories"`
	Conditions []string `json:"conditions"`
	MaxPrice   float64  `json:"maxPrice"`
}

// DeriveFacets extrait les catégories et états distincts (ordre d'insertion
// stable, sans doublon) ainsi que le prix maximum du catalogue.
func DeriveFacets(products []models.Product) Facets {
	return Facets{
		Categories: distinct(products, func(p models.Product) string { return p.Category }),
		Conditions: distinct(products, func(p models.Product) string { return p.Condition }),
		MaxPrice:   MaxPrice(products),
	}
}

// MaxPrice retourne le prix le plus élevé du catalogue, 0 si vide
func MaxPrice(products []models.Product) float64 {
	var max float64
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

func distinct(products []models.Product, key func(models.Product) string) []string {
	seen := make(map[string]bool, len(products))
	values := make([]string, 0, len(products))
	for _, p := range products {
		v := key(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
