package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName  = "eco_mart_session"
	sessionIDKey = "cart_session_id"

	// ContextSessionID est la clé gin sous laquelle l'identité de session
	// est exposée aux handlers
	ContextSessionID = "session_id"
)

// NewSessionStore configure le store de cookies de session. Le cookie ne
// porte qu'un identifiant de panier anonyme — pas d'authentification.
func NewSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CartSession garantit qu'une identité de session existe : lit le cookie,
// génère un identifiant au premier passage, et l'expose dans le contexte.
func CartSession(store *sessions.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, sessionName)

		id, _ := session.Values[sessionIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			session.Values[sessionIDKey] = id
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Erreur sauvegarde session: %v", err)
			}
		}

		c.Set(ContextSessionID, id)
		c.Next()
	}
}
