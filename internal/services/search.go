package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

const productIndex = "products"

// SearchService indexe et recherche les produits dans Elasticsearch.
// Optionnel : un pointeur nil désactive proprement toute la chaîne et les
// appelants se replient sur le moteur de filtrage local.
type SearchService struct {
	client *elasticsearch.Client
}

func NewSearchService(client *elasticsearch.Client) *SearchService {
	return &SearchService{client: client}
}

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexProduct indexe un produit. Best-effort : on log, on ne bloque jamais
// la création de l'annonce.
func (s *SearchService) IndexProduct(p models.Product) {
	if s == nil || s.client == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true", // rend la donnée immédiatement visible
	}

	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Title, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s", p.Title)
	}
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// Search recherche les produits par titre ou description
func (s *SearchService) Search(ctx context.Context, term string) ([]models.Product, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  term,
				"fields": []string{"title", "description"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index non trouvé ou vide")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %w", err)
	}

	products := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
}
