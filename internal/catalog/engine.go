package catalog

import (
	"sort"
	"strings"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

// DefaultPriceCap est le plafond utilisé quand le catalogue est vide
// et que le prix maximum ne peut pas être calculé.
const DefaultPriceCap = 1000

// SustainabilityRule : règle métier dérivée, pas une propriété physique.
// Les seuils sont configurables, ne pas les traiter comme des invariants.
type SustainabilityRule func(p models.Product) bool

// SustainabilityRules contient les règles par défaut du filtre durabilité
var SustainabilityRules = map[string]SustainabilityRule{
	models.SustainabilityExcellent: func(p models.Product) bool {
		return p.Condition == models.ConditionRefurbished && p.CarbonSaved >= 50
	},
	models.SustainabilityGood: func(p models.Product) bool {
		return p.Condition == models.ConditionRefurbished ||
			(p.Condition == models.ConditionLikeNew && p.CarbonSaved >= 20)
	},
}

// Apply applique la configuration de filtres/tri à la liste complète et
// retourne le sous-ensemble visible, dans l'ordre. Fonction pure : même
// entrée, même sortie, aucune mutation de la liste reçue.
//
// Pipeline : texte → catégorie → état → fourchette de prix → bande carbone
// → durabilité → tri. Seul le tri est sensible à l'ordre, il passe en dernier.
func Apply(products []models.Product, cfg models.FilterConfig) []models.Product {
	results := make([]models.Product, 0, len(products))

	// ✅ Clamp de la fourchette de prix avant application
	lo, hi := clampPriceRange(cfg.PriceRange, MaxPrice(products))

	term := strings.ToLower(cfg.SearchTerm)

	for _, p := range products {
		// 🔎 Filtre texte (sous-chaîne insensible à la casse, titre ou description)
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}

		// Filtre catégorie (correspondance exacte, vide = tout)
		if cfg.CategoryFilter != "" && p.Category != cfg.CategoryFilter {
			continue
		}

		// Filtre état (même règle)
		if cfg.ConditionFilter != "" && p.Condition != cfg.ConditionFilter {
			continue
		}

		// Fourchette de prix, bornes incluses
		if p.Price < lo || p.Price > hi {
			continue
		}

		// Bande d'économie carbone
		if !matchCarbonBand(p.CarbonSaved, cfg.CarbonSavingsFilter) {
			continue
		}

		// Filtre durabilité (règle métier dérivée)
		if cfg.SustainabilityFilter != "" {
			rule, ok := SustainabilityRules[cfg.SustainabilityFilter]
			if ok && !rule(p) {
				continue
			}
		}

		results = append(results, p)
	}

	sortProducts(results, cfg.SortBy)
	return results
}

// matchCarbonBand : bandes semi-ouvertes sauf la bande haute.
// low < 5, medium 5–15 (exclu), high ≥ 15. Sélecteur vide = pas de filtrage.
func matchCarbonBand(carbonSaved float64, band string) bool {
	switch band {
	case models.CarbonBandLow:
		return carbonSaved < 5
	case models.CarbonBandMedium:
		return carbonSaved >= 5 && carbonSaved < 15
	case models.CarbonBandHigh:
		return carbonSaved >= 15
	default:
		return true
	}
}

// sortProducts trie en place, en stable pour que les égalités conservent
// l'ordre produit par les filtres. Clé inconnue = aucun tri, pas d'erreur.
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ListedDate.After(products[j].ListedDate)
		})
	case models.SortCarbon:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CarbonSaved > products[j].CarbonSaved
		})
	}
}

// clampPriceRange ramène la fourchette demandée dans [0, max(maxPrice, cap)]
func clampPriceRange(r [2]float64, maxPrice float64) (float64, float64) {
	ceiling := maxPrice
	if ceiling < DefaultPriceCap {
		ceiling = DefaultPriceCap
	}

	lo, hi := r[0], r[1]
	if lo < 0 {
		lo = 0
	}
	if hi > ceiling || hi <= 0 {
		hi = ceiling
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
