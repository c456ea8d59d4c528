package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore persiste chaque collection dans un hash Redis
// (docs:<collection> → champ = _id, valeur = document JSON), le même
// schéma que le panier JSON sous clé Redis, généralisé. Les prédicats
// sont évalués côté client après lecture.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(collection string) string {
	return "docs:" + collection
}

// loadAll lit et décode la collection complète, triée par _id pour une
// itération déterministe (l'ordre d'un hash Redis ne l'est pas)
func (s *RedisStore) loadAll(ctx context.Context, collection string) ([]Document, error) {
	raw, err := s.client.HGetAll(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("lecture collection %s: %w", collection, err)
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]Document, 0, len(raw))
	for _, id := range ids {
		var doc Document
		if err := json.Unmarshal([]byte(raw[id]), &doc); err != nil {
			// Document corrompu : on l'ignore plutôt que bloquer la lecture
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *RedisStore) Find(ctx context.Context, collection string, p Predicate) ([]Document, error) {
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

func (s *RedisStore) FindOne(ctx context.Context, collection string, p Predicate) (Document, error) {
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

func (s *RedisStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	stored := cloneDoc(doc)
	id, _ := stored["_id"].(string)
	if id == "" {
		id = uuid.NewString()
		stored["_id"] = id
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encodage document: %w", err)
	}
	if err := s.client.HSet(ctx, s.key(collection), id, data).Err(); err != nil {
		return "", fmt.Errorf("écriture collection %s: %w", collection, err)
	}
	return id, nil
}

func (s *RedisStore) UpdateOne(ctx context.Context, collection string, p Predicate, u Update) (int, error) {
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
		data, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("encodage document: %w", err)
		}
		if err := s.client.HSet(ctx, s.key(collection), id, data).Err(); err != nil {
			return 0, fmt.Errorf("écriture collection %s: %w", collection, err)
		}
		return 1, nil
	}
	return 0, nil
}

func (s *RedisStore) DeleteOne(ctx context.Context, collection string, p Predicate) (int, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}
	for _, doc := range docs {
		if p.Matches(doc) {
			id, _ := doc["_id"].(string)
			if err := s.client.HDel(ctx, s.key(collection), id).Err(); err != nil {
				return 0, fmt.Errorf("suppression collection %s: %w", collection, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *RedisStore) DeleteMany(ctx context.Context, collection string, p Predicate) (int, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}

	ids := []string{}
	for _, doc := range docs {
		if p.Matches(doc) {
			if id, ok := doc["_id"].(string); ok {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.client.HDel(ctx, s.key(collection), ids...).Err(); err != nil {
		return 0, fmt.Errorf("suppression collection %s: %w", collection, err)
	}
	return len(ids), nil
}
