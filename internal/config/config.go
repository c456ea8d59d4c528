package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Drivers disponibles pour le magasin de documents
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverScylla = "scylla"
)

type Config struct {
	Port           string
	SessionSecret  string
	AllowedOrigins []string

	// Magasin de documents (memory | redis | scylla)
	DocstoreDriver string

	RedisHost     string
	RedisPassword string

	ScyllaHosts    string
	ScyllaKeyspace string
	ScyllaUsername string
	ScyllaPassword string

	// Recherche Elasticsearch (optionnelle : repli sur le moteur local)
	ElasticEnabled  bool
	ElasticURL      string
	ElasticUser     string
	ElasticPassword string

	// Email de confirmation de commande (optionnel, best-effort)
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Charge le catalogue d'exemple au démarrage si la collection est vide
	SeedCatalog bool
}

// Load charge .env puis construit la configuration depuis l'environnement
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		SessionSecret:  getEnv("SESSION_SECRET", "eco-mart-dev-secret"),
		AllowedOrigins: []string{getEnv("FRONTEND_ORIGIN", "http://localhost:5173")},

		DocstoreDriver: getEnv("DOCSTORE_DRIVER", DriverMemory),

		RedisHost:     getEnv("REDIS_HOST", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		ScyllaHosts:    getEnv("SCYLLA_HOSTS", "localhost:9042"),
		ScyllaKeyspace: getEnv("SCYLLA_KEYSPACE", "ecomart"),
		ScyllaUsername: os.Getenv("SCYLLA_USERNAME"),
		ScyllaPassword: os.Getenv("SCYLLA_PASSWORD"),

		ElasticEnabled:  os.Getenv("ELASTIC_URL") != "",
		ElasticURL:      os.Getenv("ELASTIC_URL"),
		ElasticUser:     os.Getenv("ELASTIC_USER"),
		ElasticPassword: os.Getenv("ELASTIC_PASSWORD"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnv("SMTP_FROM", "no-reply@eco-mart.example"),

		SeedCatalog: getEnv("SEED_CATALOG", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
