package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/cart"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/middleware"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/services"
)

// CartHandler expose le panier de la session courante
type CartHandler struct {
	Carts *services.CartService
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.ContextSessionID)
}

//
// 🟢 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Carts.Get(c.Request.Context(), sessionID(c)))
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	view, err := h.Carts.Add(c.Request.Context(), sessionID(c), input.ProductID)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit ajouté au panier", "cart": view})
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	view := h.Carts.Remove(c.Request.Context(), sessionID(c), c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé du panier", "cart": view})
}

//
// 🟢 PUT /api/cart/quantity
//
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	view, err := h.Carts.SetQuantity(c.Request.Context(), sessionID(c), input.ProductID, input.Quantity)
	if errors.Is(err, cart.ErrInvalidQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour quantité"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quantité mise à jour", "cart": view})
}

//
// 🧹 DELETE /api/cart/clear
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	view := h.Carts.Clear(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès", "cart": view})
}

//
// 🟢 POST /api/checkout (stub : pas de paiement réel)
//
func (h *CartHandler) Checkout(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	// Le corps est optionnel : l'email ne sert qu'à la confirmation
	_ = c.ShouldBindJSON(&input)

	order, notice, err := h.Carts.Checkout(c.Request.Context(), sessionID(c), input.Email)
	if errors.Is(err, services.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la commande"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Commande enregistrée avec succès",
		"order":   order,
		"notice":  notice,
	})
}
