package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore est l'implémentation en mémoire du Store : construite
// explicitement et injectée là où on en a besoin, jamais exposée comme
// singleton de package. Le cycle de vie appartient au point d'entrée.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Document // ordre d'insertion préservé
}

// NewMemoryStore crée un magasin vide
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Find(_ context.Context, collection string, p Predicate) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := []Document{}
	for _, doc := range s.collections[collection] {
		if p.Matches(doc) {
			results = append(results, cloneDoc(doc))
		}
	}
	return results, nil
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, p Predicate) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if p.Matches(doc) {
			return cloneDoc(doc), nil
		}
	}
	return nil, ErrNoDocument
}

func (s *MemoryStore) InsertOne(_ context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneDoc(doc)
	id, _ := stored["_id"].(string)
	if id == "" {
		id = uuid.NewString()
		stored["_id"] = id
	}

	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) UpdateOne(_ context.Context, collection string, p Predicate, u Update) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if p.Matches(doc) {
			applyUpdate(doc, u)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteOne(_ context.Context, collection string, p Predicate) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if p.Matches(doc) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteMany(_ context.Context, collection string, p Predicate) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := []Document{}
	removed := 0
	for _, doc := range s.collections[collection] {
		if p.Matches(doc) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return removed, nil
}

// cloneDoc isole le document stocké des mutations de l'appelant
// (round-trip JSON, les documents restent petits)
func cloneDoc(doc Document) Document {
	data, err := json.Marshal(doc)
	if err != nil {
		// Document non sérialisable : copie superficielle en dernier recours
		out := make(Document, len(doc))
		for k, v := range doc {
			out[k] = v
		}
		return out
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		return doc
	}
	return out
}
