package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Limites pour la création d'annonces
	ListingMaxAttempts = 5
	ListingCooldown    = 10 * time.Minute
)

// ListingRateLimit limite le nombre d'annonces créées par adresse IP.
// Compteurs en Redis ; sans client Redis (driver memory), le middleware
// laisse passer.
func ListingRateLimit(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "listing_attempts:" + c.ClientIP()

		pipe := client.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ListingCooldown)
		if _, err := pipe.Exec(ctx); err != nil {
			// Redis indisponible : on ne bloque pas la vente pour autant
			c.Next()
			return
		}

		if incr.Val() > ListingMaxAttempts {
			ttl := client.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop d'annonces créées. Réessayez dans %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
