package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/cart"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/docstore"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

const (
	cartCollection  = "cart"
	orderCollection = "orders"
)

var ErrEmptyCart = errors.New("panier vide")

// Mailer envoie la confirmation de commande (best-effort, voir utils)
type Mailer interface {
	SendOrderConfirmation(to string, order models.Order) error
}

// CartService applique l'agrégateur pur puis écrit au travers du magasin de
// documents. Chaque mutation est un read-modify-write sur le dernier état
// connu ; le mutex sérialise les mutations pour que deux ajouts rapprochés
// ne se perdent pas mutuellement.
type CartService struct {
	mu       sync.Mutex
	store    docstore.Store
	products *ProductService
	mailer   Mailer // nil = pas d'email
}

func NewCartService(store docstore.Store, products *ProductService, mailer Mailer) *CartService {
	return &CartService{store: store, products: products, mailer: mailer}
}

// CartView est la réponse des opérations panier : l'état, les totaux
// recalculés, et l'éventuel avertissement de persistance.
type CartView struct {
	Cart   models.Cart       `json:"cart"`
	Totals models.CartTotals `json:"totals"`
	Notice *Notice           `json:"notice,omitempty"`
}

func view(c models.Cart, notice *Notice) CartView {
	return CartView{Cart: c, Totals: cart.Totals(c), Notice: notice}
}

// Get charge le panier d'une session depuis le magasin. Échec de lecture :
// panier vide + Notice, la navigation continue.
func (s *CartService) Get(ctx context.Context, sessionID string) CartView {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Erreur lecture panier %s: %v", sessionID, err)
		return view(models.Cart{SessionID: sessionID}, &Notice{Message: "Impossible de charger votre panier"})
	}
	return view(c, nil)
}

// Add ajoute un produit au panier (incrément si déjà présent)
func (s *CartService) Add(ctx context.Context, sessionID, productID string) (CartView, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadOrEmpty(ctx, sessionID)
	updated := cart.AddItem(current, *p)

	notice := persist("ajout au panier", func() error {
		linePred := lineKey(sessionID, productID)
		if _, err := s.store.FindOne(ctx, cartCollection, linePred); err == nil {
			_, err := s.store.UpdateOne(ctx, cartCollection, linePred,
				docstore.Update{Inc: map[string]float64{"quantity": 1}})
			return err
		}

		var line models.CartLine
		for _, l := range updated.Lines {
			if l.ProductID == productID {
				line = l
				break
			}
		}
		doc, err := toDocument(lineRecord{
			SessionID: sessionID,
			AddedAt:   time.Now().UTC().Format(time.RFC3339Nano),
			CartLine:  line,
		})
		if err != nil {
			return err
		}
		doc["_id"] = uuid.NewString()
		_, err = s.store.InsertOne(ctx, cartCollection, doc)
		return err
	})

	return view(updated, notice), nil
}

// Remove retire une ligne ; produit absent = no-op, pas une erreur
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadOrEmpty(ctx, sessionID)
	updated := cart.RemoveItem(current, productID)

	notice := persist("retrait du panier", func() error {
		_, err := s.store.DeleteOne(ctx, cartCollection, lineKey(sessionID, productID))
		return err
	})
	return view(updated, notice)
}

// SetQuantity remplace la quantité d'une ligne. Quantité < 1 : rejet de
// validation, rien n'atteint la persistance.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadOrEmpty(ctx, sessionID)
	updated, err := cart.SetQuantity(current, productID, quantity)
	if err != nil {
		return CartView{}, err
	}

	notice := persist("mise à jour quantité", func() error {
		_, err := s.store.UpdateOne(ctx, cartCollection, lineKey(sessionID, productID),
			docstore.Update{Set: map[string]interface{}{"quantity": quantity}})
		return err
	})
	return view(updated, notice), nil
}

// Clear vide le panier de la session
func (s *CartService) Clear(ctx context.Context, sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadOrEmpty(ctx, sessionID)
	updated := cart.Clear(current)

	notice := persist("vidage du panier", func() error {
		_, err := s.store.DeleteMany(ctx, cartCollection, sessionPred(sessionID))
		return err
	})
	return view(updated, notice)
}

// Checkout : stub de commande. Valide le panier, enregistre la commande,
// vide le panier, envoie la confirmation best-effort. Pas de paiement.
func (s *CartService) Checkout(ctx context.Context, sessionID, email string) (*models.Order, *Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadOrEmpty(ctx, sessionID)
	if len(current.Lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	totals := cart.Totals(current)
	order := models.Order{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Lines:            current.Lines,
		Subtotal:         totals.Subtotal,
		TotalCarbonSaved: totals.TotalCarbonSaved,
		CreatedAt:        time.Now().UTC(),
	}

	notice := persist("enregistrement de la commande", func() error {
		doc, err := toDocument(order)
		if err != nil {
			return err
		}
		doc["_id"] = order.ID
		if _, err := s.store.InsertOne(ctx, orderCollection, doc); err != nil {
			return err
		}
		_, err = s.store.DeleteMany(ctx, cartCollection, sessionPred(sessionID))
		return err
	})

	if email != "" && s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(email, order); err != nil {
			log.Printf("❌ Erreur envoi email de confirmation: %v", err)
		}
	}

	return &order, notice, nil
}

//
// --- CHARGEMENT & PRÉDICATS ---
//

// lineRecord est le document d'une ligne de panier dans le magasin
type lineRecord struct {
	SessionID string `json:"sessionId"`
	AddedAt   string `json:"addedAt"`
	models.CartLine
}

func sessionPred(sessionID string) docstore.Predicate {
	return docstore.Equals{Field: "sessionId", Value: sessionID}
}

func lineKey(sessionID, productID string) docstore.Predicate {
	return docstore.And{
		docstore.Equals{Field: "sessionId", Value: sessionID},
		docstore.Equals{Field: "productId", Value: productID},
	}
}

func (s *CartService) load(ctx context.Context, sessionID string) (models.Cart, error) {
	docs, err := s.store.Find(ctx, cartCollection, sessionPred(sessionID))
	if err != nil {
		return models.Cart{}, err
	}

	records := make([]lineRecord, 0, len(docs))
	for _, doc := range docs {
		var rec lineRecord
		if err := fromDocument(doc, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}

	// L'ordre d'itération du backend n'est pas garanti : on retrie par
	// date d'ajout pour une présentation stable
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AddedAt < records[j].AddedAt
	})

	c := models.Cart{SessionID: sessionID, Lines: make([]models.CartLine, 0, len(records))}
	for _, rec := range records {
		c.Lines = append(c.Lines, rec.CartLine)
	}
	return c, nil
}

// loadOrEmpty : la lecture qui précède une mutation se replie sur un panier
// vide — l'opération reste purement locale si le magasin est indisponible
func (s *CartService) loadOrEmpty(ctx context.Context, sessionID string) models.Cart {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		log.Printf("⚠️ Lecture panier %s échouée, repli sur panier vide: %v", sessionID, err)
		return models.Cart{SessionID: sessionID}
	}
	return c
}
