// Package database construit les clients d'infrastructure (Redis, ScyllaDB,
// Elasticsearch). Les instances sont retournées à l'appelant et injectées
// explicitement — pas de variable globale de package, le cycle de vie
// appartient à cmd/server.
package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/config"
)

// NewRedis ouvre et teste une connexion Redis
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("impossible de se connecter à Redis: %w", err)
	}

	log.Println("✅ Connecté à Redis")
	return client, nil
}

// NewScylla ouvre une session ScyllaDB sur le keyspace configuré
func NewScylla(cfg *config.Config) (*gocql.Session, error) {
	cluster := gocql.NewCluster(strings.Split(cfg.ScyllaHosts, ",")...)
	cluster.Keyspace = cfg.ScyllaKeyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 10
	cluster.ReconnectInterval = 1 * time.Second

	if cfg.ScyllaUsername != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.ScyllaUsername,
			Password: cfg.ScyllaPassword,
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erreur création session ScyllaDB: %w", err)
	}

	log.Printf("✅ Session ScyllaDB ouverte sur keyspace '%s'", cfg.ScyllaKeyspace)
	return session, nil
}

// NewElastic crée le client Elasticsearch et vérifie la connexion
func NewElastic(cfg *config.Config) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("erreur création client Elasticsearch: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	log.Println("✅ Connecté à Elasticsearch")
	return client, nil
}
