package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/catalog"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/docstore"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

const productCollection = "products"

// Économie carbone par défaut d'une annonce qui ne la précise pas
const defaultCarbonSaved = 10

var (
	ErrProductNotFound = errors.New("produit introuvable")
	ErrMissingFields   = errors.New("tous les champs obligatoires doivent être remplis")
)

// ProductService est la façade catalogue consommée par les handlers :
// passe-plats vers le magasin de documents, le moteur de filtrage et la
// recherche Elasticsearch.
type ProductService struct {
	store  docstore.Store
	search *SearchService // nil = recherche locale uniquement
}

func NewProductService(store docstore.Store, search *SearchService) *ProductService {
	return &ProductService{store: store, search: search}
}

// List retourne le catalogue complet. Un échec de lecture dégrade en liste
// vide avec un Notice non bloquant, la session reste utilisable.
func (s *ProductService) List(ctx context.Context) ([]models.Product, *Notice) {
	docs, err := s.store.Find(ctx, productCollection, docstore.All{})
	if err != nil {
		log.Printf("❌ Erreur lecture catalogue: %v", err)
		return []models.Product{}, &Notice{Message: "Impossible de charger les produits"}
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		var p models.Product
		if err := fromDocument(doc, &p); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Get retourne un produit par identifiant
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	doc, err := s.store.FindOne(ctx, productCollection, docstore.Equals{Field: "_id", Value: id})
	if errors.Is(err, docstore.ErrNoDocument) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	var p models.Product
	if err := fromDocument(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Add crée une annonce depuis le flux vendeur. Les erreurs de validation
// sont rejetées localement et n'atteignent jamais la persistance.
func (s *ProductService) Add(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	if draft.Title == "" || draft.Description == "" || draft.Price <= 0 ||
		draft.Category == "" || draft.Condition == "" || draft.Image == "" {
		return nil, ErrMissingFields
	}

	carbonSaved := draft.CarbonSaved
	if carbonSaved <= 0 {
		carbonSaved = defaultCarbonSaved
	}

	p := models.Product{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Category:    draft.Category,
		Condition:   draft.Condition,
		CarbonSaved: carbonSaved,
		Seller:      "User", // pas de comptes : vendeur générique
		ListedDate:  time.Now().UTC(),
		Image:       draft.Image,
	}

	doc, err := toDocument(p)
	if err != nil {
		return nil, err
	}
	doc["_id"] = p.ID

	if _, err := s.store.InsertOne(ctx, productCollection, doc); err != nil {
		return nil, err
	}

	// 🔄 Indexation Elasticsearch, jamais bloquante
	go s.search.IndexProduct(p)

	return &p, nil
}

// Search produit la vue filtrée/triée demandée par la session.
//
// Chemin nominal : Elasticsearch pour le texte quand il est configuré,
// sinon les prédicats du magasin de documents (le filtre Mongo historique),
// puis le moteur local pour les bandes carbone, la durabilité et le tri.
// Tout échec d'un étage se replie sur l'étage suivant — jamais d'erreur
// fatale pour la navigation.
func (s *ProductService) Search(ctx context.Context, cfg models.FilterConfig) ([]models.Product, *Notice) {
	if cfg.SearchTerm != "" && s.search != nil {
		candidates, err := s.search.Search(ctx, cfg.SearchTerm)
		if err == nil {
			return catalog.Apply(candidates, cfg), nil
		}
		log.Printf("⚠️ Recherche Elastic indisponible, repli sur le magasin local: %v", err)
	}

	docs, err := s.store.Find(ctx, productCollection, searchPredicate(cfg))
	if err != nil {
		log.Printf("❌ Erreur recherche produits: %v", err)
		return []models.Product{}, &Notice{Message: "Impossible de charger les résultats"}
	}

	candidates := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		var p models.Product
		if err := fromDocument(doc, &p); err != nil {
			continue
		}
		candidates = append(candidates, p)
	}
	return catalog.Apply(candidates, cfg), nil
}

// Facets dérive les valeurs de filtre depuis le catalogue complet
func (s *ProductService) Facets(ctx context.Context) (catalog.Facets, *Notice) {
	products, notice := s.List(ctx)
	return catalog.DeriveFacets(products), notice
}

// searchPredicate traduit la configuration en prédicat du magasin :
// $or de $regex sur titre/description, égalités, bornes de prix
func searchPredicate(cfg models.FilterConfig) docstore.Predicate {
	pred := docstore.And{}

	if cfg.SearchTerm != "" {
		quoted := regexp.QuoteMeta(cfg.SearchTerm)
		pred = append(pred, docstore.Or{
			docstore.Regex{Field: "title", Pattern: quoted, Insensitive: true},
			docstore.Regex{Field: "description", Pattern: quoted, Insensitive: true},
		})
	}
	if cfg.CategoryFilter != "" {
		pred = append(pred, docstore.Equals{Field: "category", Value: cfg.CategoryFilter})
	}
	if cfg.ConditionFilter != "" {
		pred = append(pred, docstore.Equals{Field: "condition", Value: cfg.ConditionFilter})
	}
	if cfg.PriceRange[1] > 0 {
		pred = append(pred, docstore.Range{
			Field: "price",
			GTE:   docstore.Float(cfg.PriceRange[0]),
			LTE:   docstore.Float(cfg.PriceRange[1]),
		})
	}

	if len(pred) == 0 {
		return docstore.All{}
	}
	return pred
}
