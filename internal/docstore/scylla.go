package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ScyllaStore persiste les collections dans une table ScyllaDB unique :
//
//	CREATE TABLE documents (
//	    collection text,
//	    doc_id     text,
//	    body       text,
//	    PRIMARY KEY (collection, doc_id)
//	);
//
// Chaque collection est une partition, le corps du document reste du JSON.
// Comme pour Redis, les prédicats sont évalués côté client : CQL ne sait
// pas exprimer $or ou $regex.
type ScyllaStore struct {
	session *gocql.Session
}

func NewScyllaStore(session *gocql.Session) *ScyllaStore {
	return &ScyllaStore{session: session}
}

func (s *ScyllaStore) loadAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.session.Query(
		`SELECT doc_id, body FROM documents WHERE collection = ?`, collection,
	).WithContext(ctx).Iter()

	var docID, body string
	docs := []Document{}
	for iter.Scan(&docID, &body) {
		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture collection %s: %w", collection, err)
	}
	return docs, nil
}

func (s *ScyllaStore) writeDoc(ctx context.Context, collection, id string, doc Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encodage document: %w", err)
	}
	if err := s.session.Query(
		`INSERT INTO documents (collection, doc_id, body) VALUES (?, ?, ?)`,
		collection, id, string(body),
	).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("écriture collection %s: %w", collection, err)
	}
	return nil
}

func (s *ScyllaStore) Find(ctx context.Context, collection string, p Predicate) ([]Document, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	results := []Document{}
	for _, doc := range docs {
		if p.Matches(doc) {
			results = append(results, doc)
		}
	}
	return results, nil
}

func (s *ScyllaStore) FindOne(ctx context.Context, collection string, p Predicate) (Document, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if p.Matches(doc) {
			return doc, nil
		}
	}
	return nil, ErrNoDocument
}

func (s *ScyllaStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	stored := cloneDoc(doc)
	id, _ := stored["_id"].(string)
	if id == "" {
		id = uuid.NewString()
		stored["_id"] = id
	}
	if err := s.writeDoc(ctx, collection, id, stored); err != nil {
		return "", err
	}
	return id, nil
}

func (s *ScyllaStore) UpdateOne(ctx context.Context, collection string, p Predicate, u Update) (int, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}
	for _, doc := range docs {
		if !p.Matches(doc) {
			continue
		}
		applyUpdate(doc, u)
		id, _ := doc["_id"].(string)
		if err := s.writeDoc(ctx, collection, id, doc); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

func (s *ScyllaStore) DeleteOne(ctx context.Context, collection string, p Predicate) (int, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}
	for _, doc := range docs {
		if p.Matches(doc) {
			id, _ := doc["_id"].(string)
			if err := s.deleteByID(ctx, collection, id); err != nil {
				return 0, err
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *ScyllaStore) DeleteMany(ctx context.Context, collection string, p Predicate) (int, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, doc := range docs {
		if p.Matches(doc) {
			id, _ := doc["_id"].(string)
			if err := s.deleteByID(ctx, collection, id); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}

func (s *ScyllaStore) deleteByID(ctx context.Context, collection, id string) error {
	if err := s.session.Query(
		`DELETE FROM documents WHERE collection = ? AND doc_id = ?`, collection, id,
	).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("suppression collection %s: %w", collection, err)
	}
	return nil
}
