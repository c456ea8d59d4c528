package docstore

import (
	"context"
	"errors"
)

// ErrNoDocument est retourné par FindOne quand aucun document ne correspond
var ErrNoDocument = errors.New("docstore: aucun document correspondant")

// Update décrit une mise à jour partielle : affectations ($set) puis
// incréments numériques ($inc).
type Update struct {
	Set map[string]interface{}
	Inc map[string]float64
}

// Store est le contrat du magasin de documents. Aucune garantie
// transactionnelle entre appels : les couches appelantes ne doivent pas en
// supposer.
type Store interface {
	// Find retourne les documents correspondant au prédicat
	Find(ctx context.Context, collection string, p Predicate) ([]Document, error)
	// FindOne retourne le premier document correspondant, ErrNoDocument sinon
	FindOne(ctx context.Context, collection string, p Predicate) (Document, error)
	// InsertOne insère le document et retourne l'identifiant généré
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)
	// UpdateOne applique la mise à jour au premier document correspondant
	// et retourne le nombre de documents modifiés (0 ou 1)
	UpdateOne(ctx context.Context, collection string, p Predicate, u Update) (int, error)
	// DeleteOne supprime le premier document correspondant (0 ou 1)
	DeleteOne(ctx context.Context, collection string, p Predicate) (int, error)
	// DeleteMany supprime tous les documents correspondants
	DeleteMany(ctx context.Context, collection string, p Predicate) (int, error)
}

// applyUpdate applique Set puis Inc sur une copie de travail du document.
// Partagé par tous les backends pour garder une sémantique identique.
func applyUpdate(doc Document, u Update) {
	for field, value := range u.Set {
		doc[field] = value
	}
	for field, delta := range u.Inc {
		current, _ := numericValue(doc[field])
		doc[field] = current + delta
	}
}
