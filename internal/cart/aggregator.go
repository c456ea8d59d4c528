// Package cart contient l'agrégateur de panier : des transformations pures
// sur un état immuable. Chaque opération retourne un nouveau panier, jamais
// de mutation en place — c'est ce qui rend le read-modify-write séquentiel
// du service sûr sans verrou côté métier.
package cart

import (
	"errors"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

// ErrInvalidQuantity : setQuantity avec une quantité < 1 est une erreur de
// validation, pas un raccourci de suppression. Le panier reste inchangé.
var ErrInvalidQuantity = errors.New("quantité invalide: minimum 1")

// AddItem ajoute un produit au panier. Si une ligne existe déjà pour ce
// productId, sa quantité est incrémentée de 1 sans re-snapshot du prix ;
// sinon une nouvelle ligne est créée avec les champs d'affichage figés
// à cet instant.
func AddItem(c models.Cart, p models.Product) models.Cart {
	lines := cloneLines(c.Lines)

	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity++
			c.Lines = lines
			return c
		}
	}

	c.Lines = append(lines, models.CartLine{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Condition:   p.Condition,
		CarbonSaved: p.CarbonSaved,
		Seller:      p.Seller,
		Quantity:    1,
	})
	return c
}

// RemoveItem retire la ligne correspondante ; no-op si le produit est absent
func RemoveItem(c models.Cart, productID string) models.Cart {
	lines := make([]models.CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	c.Lines = lines
	return c
}

// SetQuantity remplace la quantité d'une ligne. Quantité < 1 : rejet sans
// mutation. ProductID absent : no-op, pas une erreur.
func SetQuantity(c models.Cart, productID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return c, ErrInvalidQuantity
	}

	lines := cloneLines(c.Lines)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			break
		}
	}
	c.Lines = lines
	return c, nil
}

// Clear retourne un panier vide pour la même session
func Clear(c models.Cart) models.Cart {
	c.Lines = nil
	return c
}

// Totals recalcule les totaux dérivés depuis zéro à chaque appel — aucun
// compteur incrémental susceptible de se désynchroniser.
func Totals(c models.Cart) models.CartTotals {
	var t models.CartTotals
	for _, line := range c.Lines {
		t.ItemCount += line.Quantity
		t.Subtotal += line.Price * float64(line.Quantity)
		t.TotalCarbonSaved += line.CarbonSaved * float64(line.Quantity)
	}
	return t
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}
