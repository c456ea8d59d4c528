package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/handlers"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/middleware"
)

// Deps regroupe tout ce que l'enregistrement des routes doit recevoir —
// construit par cmd/server, aucun état global
type Deps struct {
	Products     *handlers.ProductHandler
	Cart         *handlers.CartHandler
	SessionStore *sessions.CookieStore
	Redis        *redis.Client // nil avec le driver memory
	Origins      []string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.CartSession(deps.SessionStore))

	api := r.Group("/api")

	// Catalogue
	api.GET("/products", deps.Products.GetAllProducts)
	api.GET("/products/search", deps.Products.SearchProducts)
	api.GET("/products/facets", deps.Products.GetFacets)
	api.GET("/products/:id", deps.Products.GetProduct)
	api.POST("/products", middleware.ListingRateLimit(deps.Redis), deps.Products.CreateProduct)

	// Panier
	api.GET("/cart", deps.Cart.GetCart)
	api.POST("/cart/add", deps.Cart.AddToCart)
	api.PUT("/cart/quantity", deps.Cart.UpdateQuantity)
	api.DELETE("/cart/clear", deps.Cart.ClearCart)
	api.DELETE("/cart/:productId", deps.Cart.RemoveFromCart)

	// Commande
	api.POST("/checkout", deps.Cart.Checkout)
}
