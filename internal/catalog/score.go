package catalog

import "github.com/KJaiswall/eco-mart-exchange-hub/internal/models"

// SustainabilityScore calcule un score de durabilité dans [0, 100] à partir
// des attributs du produit : base carbone + état + bonus catégorie, plafonné
// à 100. Fonction totale : un carbonSaved absent vaut 0, pas une erreur.
func SustainabilityScore(p models.Product) int {
	score := 0

	// Base : économies de carbone
	if p.CarbonSaved > 0 {
		switch {
		case p.CarbonSaved > 100:
			score += 40
		case p.CarbonSaved > 50:
			score += 30
		case p.CarbonSaved > 20:
			score += 20
		default:
			score += 10
		}
	}

	// Points selon l'état
	switch p.Condition {
	case models.ConditionNew:
		score += 5
	case models.ConditionLikeNew:
		score += 20
	case models.ConditionGood:
		score += 15
	case models.ConditionFair:
		score += 10
	case models.ConditionRefurbished:
		score += 25 // le reconditionné professionnel au plus haut
	}

	// Bonus catégorie : la domotique aide à économiser l'énergie
	if p.Category == "Smart Home" {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
