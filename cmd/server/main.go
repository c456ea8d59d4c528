package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/config"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/database"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/docstore"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/handlers"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/middleware"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/routes"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/seed"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/services"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/utils"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Le magasin de documents est construit ici et injecté partout :
	// son cycle de vie appartient au point d'entrée, pas à un singleton
	store, redisClient := buildStore(ctx, cfg)

	// Recherche Elasticsearch optionnelle (repli sur le moteur local)
	var search *services.SearchService
	if cfg.ElasticEnabled {
		elastic, err := database.NewElastic(cfg)
		if err != nil {
			log.Printf("⚠️ Elasticsearch indisponible, recherche locale uniquement: %v", err)
		} else {
			search = services.NewSearchService(elastic)
		}
	}

	if cfg.SeedCatalog {
		if err := seed.EnsureCatalog(ctx, store); err != nil {
			log.Printf("⚠️ Chargement du catalogue d'exemple impossible: %v", err)
		}
	}

	productService := services.NewProductService(store, search)
	cartService := services.NewCartService(store, productService, mailerOrNil(cfg))

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Products:     &handlers.ProductHandler{Products: productService},
		Cart:         &handlers.CartHandler{Carts: cartService},
		SessionStore: middleware.NewSessionStore(cfg.SessionSecret),
		Redis:        redisClient,
		Origins:      cfg.AllowedOrigins,
	})

	log.Println("🚀 Serveur Eco-Mart lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}

// buildStore choisit le backend du magasin de documents selon la config.
// Retourne aussi le client Redis quand il existe (rate limit des annonces).
func buildStore(ctx context.Context, cfg *config.Config) (docstore.Store, *redis.Client) {
	switch cfg.DocstoreDriver {
	case config.DriverRedis:
		client, err := database.NewRedis(ctx, cfg)
		if err != nil {
			log.Fatalf("❌ Échec initialisation Redis: %v", err)
		}
		return docstore.NewRedisStore(client), client

	case config.DriverScylla:
		session, err := database.NewScylla(cfg)
		if err != nil {
			log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
		}
		return docstore.NewScyllaStore(session), nil

	default:
		log.Println("✅ Magasin de documents en mémoire (driver par défaut)")
		return docstore.NewMemoryStore(), nil
	}
}

// mailerOrNil retourne une interface nil quand SMTP n'est pas configuré
func mailerOrNil(cfg *config.Config) services.Mailer {
	sender := utils.NewEmailSender(cfg)
	if sender == nil {
		return nil
	}
	return sender
}
