package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/docstore"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/handlers"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/middleware"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/routes"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/seed"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	require.NoError(t, seed.EnsureCatalog(context.Background(), store))

	productService := services.NewProductService(store, nil)
	cartService := services.NewCartService(store, productService, nil)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Products:     &handlers.ProductHandler{Products: productService},
		Cart:         &handlers.CartHandler{Carts: cartService},
		SessionStore: middleware.NewSessionStore("test-secret"),
		Origins:      []string{"http://localhost:5173"},
	})
	return r
}

// client rejoue le cookie de session entre les requêtes, comme un navigateur
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetProducts(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	products := body["products"].([]interface{})
	assert.Len(t, products, 6)

	// Le score de durabilité accompagne chaque produit
	first := products[0].(map[string]interface{})
	assert.EqualValues(t, 65, first["sustainabilityScore"])
}

func TestGetProductNotFound(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}
	w := c.do(http.MethodGet, "/api/products/absent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchSmartHome(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodGet, "/api/products/search?category=Smart+Home&sortBy=price-low", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	products := body["products"].([]interface{})
	require.Len(t, products, 2)
	assert.Equal(t, "6", products[0].(map[string]interface{})["id"])
	assert.Equal(t, "3", products[1].(map[string]interface{})["id"])
}

func TestGetFacets(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodGet, "/api/products/facets", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["categories"].([]interface{}), 5)
	assert.EqualValues(t, 599.99, body["maxPrice"])
}

func TestCreateListingValidation(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodPost, "/api/products", map[string]interface{}{"title": "Incomplet"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateListing(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodPost, "/api/products", map[string]interface{}{
		"title":       "Refurbished Tablet",
		"description": "Tablette reconditionnée.",
		"price":       199.99,
		"category":    "Tablets",
		"condition":   "Refurbished",
		"carbonSaved": 35,
		"image":       "https://example.com/tablet.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodGet, "/api/products", nil)
	body := decode(t, w)
	assert.Len(t, body["products"].([]interface{}), 7)
}

func TestCartFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	// Panier vide au départ
	w := c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Ajout du même produit deux fois : une ligne, quantité 2
	w = c.do(http.MethodPost, "/api/cart/add", map[string]string{"productId": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPost, "/api/cart/add", map[string]string{"productId": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	cartView := body["cart"].(map[string]interface{})
	lines := cartView["cart"].(map[string]interface{})["lines"].([]interface{})
	require.Len(t, lines, 1)
	assert.EqualValues(t, 2, lines[0].(map[string]interface{})["quantity"])

	totals := cartView["totals"].(map[string]interface{})
	assert.EqualValues(t, 2, totals["itemCount"])
	assert.InDelta(t, 1199.98, totals["subtotal"].(float64), 0.001)

	// Quantité invalide rejetée
	w = c.do(http.MethodPut, "/api/cart/quantity", map[string]interface{}{"productId": "1", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Checkout vide le panier
	w = c.do(http.MethodPost, "/api/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/cart", nil)
	body = decode(t, w)
	cartView = body["cart"].(map[string]interface{})
	assert.Empty(t, cartView["lines"])
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}
	w := c.do(http.MethodPost, "/api/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartAddUnknownProduct(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}
	w := c.do(http.MethodPost, "/api/cart/add", map[string]string{"productId": "zzz"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
