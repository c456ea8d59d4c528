// Package docstore fournit un magasin de documents abstrait, par collection
// nommée, avec un petit langage de prédicats (égalité, $or, $gte/$lte,
// $regex) représenté en AST typé plutôt qu'en maps à clés magiques —
// l'interpréteur est exhaustif et vérifié par le compilateur.
package docstore

import (
	"encoding/json"
	"regexp"
)

// Document est un enregistrement schéma-libre. L'identifiant généré est
// stocké sous la clé "_id".
type Document = map[string]interface{}

// Predicate sélectionne des documents dans une collection
type Predicate interface {
	Matches(doc Document) bool
}

// All accepte tous les documents (équivalent du filtre vide {})
type All struct{}

func (All) Matches(Document) bool { return true }

// Equals : égalité stricte sur un champ
type Equals struct {
	Field string
	Value interface{}
}

func (e Equals) Matches(doc Document) bool {
	v, ok := doc[e.Field]
	if !ok {
		return false
	}
	return equalValues(v, e.Value)
}

// And : conjonction implicite de sous-prédicats (un filtre multi-champs)
type And []Predicate

func (a And) Matches(doc Document) bool {
	for _, p := range a {
		if !p.Matches(doc) {
			return false
		}
	}
	return true
}

// Or : disjonction de sous-prédicats ($or)
type Or []Predicate

func (o Or) Matches(doc Document) bool {
	for _, p := range o {
		if p.Matches(doc) {
			return true
		}
	}
	return false
}

// Range : bornes $gte/$lte sur un champ numérique, nil = borne absente
type Range struct {
	Field string
	GTE   *float64
	LTE   *float64
}

func (r Range) Matches(doc Document) bool {
	v, ok := numericValue(doc[r.Field])
	if !ok {
		return false
	}
	if r.GTE != nil && v < *r.GTE {
		return false
	}
	if r.LTE != nil && v > *r.LTE {
		return false
	}
	return true
}

// Regex : correspondance $regex sur un champ texte. Insensitive reproduit
// l'option "i" de l'original.
type Regex struct {
	Field       string
	Pattern     string
	Insensitive bool
}

func (r Regex) Matches(doc Document) bool {
	s, ok := doc[r.Field].(string)
	if !ok {
		return false
	}
	pattern := r.Pattern
	if r.Insensitive {
		pattern = "(?i)" + pattern
	}
	matched, err := regexp.MatchString(pattern, s)
	if err != nil {
		// Motif invalide : le prédicat ne sélectionne rien
		return false
	}
	return matched
}

// Float retourne un pointeur de borne pour construire un Range
func Float(v float64) *float64 { return &v }

// equalValues compare en tolérant les types numériques mélangés par le
// round-trip JSON (int côté appelant, float64 côté document).
func equalValues(a, b interface{}) bool {
	if fa, ok := numericValue(a); ok {
		if fb, ok := numericValue(b); ok {
			return fa == fb
		}
		return false
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		return ok && sa == sb
	}
	return a == b
}

func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
