package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/catalog"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/services"
)

// ProductHandler expose le catalogue : liste, détail, recherche filtrée,
// facettes, et le flux vendeur.
type ProductHandler struct {
	Products *services.ProductService
}

// productView enrichit le produit de son score de durabilité pour l'affichage
type productView struct {
	models.Product
	SustainabilityScore int `json:"sustainabilityScore"`
}

func toViews(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, SustainabilityScore: catalog.SustainabilityScore(p)})
	}
	return views
}

//
// 🟢 GET /api/products
//
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, notice := h.Products.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"products": toViews(products),
		"notice":   notice,
	})
}

//
// 🟢 GET /api/products/:id
//
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}
	c.JSON(http.StatusOK, productView{Product: *p, SustainabilityScore: catalog.SustainabilityScore(*p)})
}

//
// 🔎 GET /api/products/search
//
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	cfg := parseFilterConfig(c)
	products, notice := h.Products.Search(c.Request.Context(), cfg)
	c.JSON(http.StatusOK, gin.H{
		"products": toViews(products),
		"count":    len(products),
		"notice":   notice,
	})
}

//
// 🟢 GET /api/products/facets
//
func (h *ProductHandler) GetFacets(c *gin.Context) {
	facets, notice := h.Products.Facets(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"categories": facets.Categories,
		"conditions": facets.Conditions,
		"maxPrice":   facets.MaxPrice,
		"notice":     notice,
	})
}

//
// 🟢 POST /api/products (flux vendeur)
//
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	p, err := h.Products.Add(c.Request.Context(), draft)
	if errors.Is(err, services.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tous les champs obligatoires doivent être remplis"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création annonce"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Annonce publiée avec succès",
		"product": productView{Product: *p, SustainabilityScore: catalog.SustainabilityScore(*p)},
	})
}

// parseFilterConfig reconstruit la configuration éphémère de la vue depuis
// les paramètres de requête
func parseFilterConfig(c *gin.Context) models.FilterConfig {
	cfg := models.FilterConfig{
		SearchTerm:           c.Query("searchTerm"),
		CategoryFilter:       c.Query("category"),
		ConditionFilter:      c.Query("condition"),
		CarbonSavingsFilter:  c.Query("carbonSavings"),
		SustainabilityFilter: c.Query("sustainability"),
		SortBy:               c.Query("sortBy"),
	}

	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		cfg.PriceRange[0] = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		cfg.PriceRange[1] = v
	}
	return cfg
}
