package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/auth"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/config"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const testAuthSecret = "router-test-secret"

func corsTestConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: []string{"*"},
	}
}

func setupAPITest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if _, err := models.SeedProducts(db); err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "8000", Mode: "debug"},
		Auth: config.AuthConfig{
			Mode:            "local",
			Secret:          testAuthSecret,
			CacheTTLSeconds: 60,
		},
		CORS: corsTestConfig(),
		Cart: config.CartConfig{DefaultSession: "default_session"},
	}
	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode body failed: %v (body: %s)", err, w.Body.String())
	}
}

func TestWelcomeEndpoint(t *testing.T) {
	r := setupAPITest(t)

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["message"] != "Welcome to Luxe Jewelry Store API" {
		t.Fatalf("welcome message got %q", resp["message"])
	}
}

func TestProductEndpoints(t *testing.T) {
	r := setupAPITest(t)

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status want 200 got %d", w.Code)
	}
	var products []map[string]interface{}
	decodeBody(t, w, &products)
	if len(products) != 6 {
		t.Fatalf("catalog size want 6 got %d", len(products))
	}
	for _, product := range products {
		for _, field := range []string{"id", "name", "price", "image", "description", "category", "in_stock"} {
			if _, ok := product[field]; !ok {
				t.Fatalf("product missing field %s: %+v", field, product)
			}
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/products?category=rings", "", nil)
	decodeBody(t, w, &products)
	if len(products) != 1 || products[0]["name"] != "Diamond Engagement Ring" {
		t.Fatalf("rings filter want Diamond Engagement Ring got %+v", products)
	}

	w = doJSON(t, r, http.MethodGet, "/api/products/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get product status want 200 got %d", w.Code)
	}
	var product map[string]interface{}
	decodeBody(t, w, &product)
	if product["price"] != 2999.00 {
		t.Fatalf("price want numeric 2999.00 got %v (%T)", product["price"], product["price"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/products/999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing product status want 404 got %d", w.Code)
	}
	var errResp map[string]string
	decodeBody(t, w, &errResp)
	if errResp["detail"] != "Product not found" {
		t.Fatalf("missing product detail got %q", errResp["detail"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/products/abc", "", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("non-numeric id status want 422 got %d", w.Code)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	r := setupAPITest(t)

	w := doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp map[string][]string
	decodeBody(t, w, &resp)
	categories := resp["categories"]
	if len(categories) != 4 {
		t.Fatalf("categories want 4 got %v", categories)
	}
}

func TestCartAnonymousFlow(t *testing.T) {
	r := setupAPITest(t)
	sessionID := uuid.NewString()

	w := doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":1,"quantity":2}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add status want 200 got %d (body %s)", w.Code, w.Body.String())
	}
	var addResp struct {
		Message   string `json:"message"`
		CartItems int64  `json:"cart_items"`
	}
	decodeBody(t, w, &addResp)
	if addResp.Message != "Item added to cart" || addResp.CartItems != 1 {
		t.Fatalf("add response got %+v", addResp)
	}

	// Same product again merges into the existing line.
	w = doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":1,"quantity":1}`, nil)
	decodeBody(t, w, &addResp)
	if addResp.CartItems != 1 {
		t.Fatalf("merged cart_items want 1 got %d", addResp.CartItems)
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart?session_id="+sessionID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart status want 200 got %d", w.Code)
	}
	var items []map[string]interface{}
	decodeBody(t, w, &items)
	if len(items) != 1 {
		t.Fatalf("cart lines want 1 got %d", len(items))
	}
	if items[0]["quantity"].(float64) != 3 {
		t.Fatalf("merged quantity want 3 got %v", items[0]["quantity"])
	}
	itemID, _ := items[0]["id"].(string)
	if itemID == "" {
		t.Fatalf("cart line id missing: %+v", items[0])
	}

	w = doJSON(t, r, http.MethodPut, "/api/cart/"+sessionID+"/item/"+itemID+"?quantity=5", "", nil)
	decodeBody(t, w, &addResp)
	if addResp.Message != "Item quantity updated" {
		t.Fatalf("update message got %q", addResp.Message)
	}

	w = doJSON(t, r, http.MethodPut, "/api/cart/"+sessionID+"/item/"+itemID+"?quantity=0", "", nil)
	decodeBody(t, w, &addResp)
	if addResp.Message != "Item removed from cart" {
		t.Fatalf("zero quantity message got %q", addResp.Message)
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart?session_id="+sessionID, "", nil)
	decodeBody(t, w, &items)
	if len(items) != 0 {
		t.Fatalf("cart after zero-quantity update want empty got %+v", items)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	r := setupAPITest(t)
	sessionID := uuid.NewString()

	doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":1,"quantity":1}`, nil)
	doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":3,"quantity":2}`, nil)

	w := doJSON(t, r, http.MethodGet, "/api/cart?session_id="+sessionID, "", nil)
	var items []map[string]interface{}
	decodeBody(t, w, &items)
	if len(items) != 2 {
		t.Fatalf("cart lines want 2 got %d", len(items))
	}
	itemID := items[0]["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/cart/"+sessionID+"/item/"+itemID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status want 200 got %d", w.Code)
	}
	var resp struct {
		Message   string `json:"message"`
		CartItems int64  `json:"cart_items"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Item removed from cart" || resp.CartItems != 1 {
		t.Fatalf("remove response got %+v", resp)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/cart/"+sessionID, "", nil)
	var clearResp map[string]string
	decodeBody(t, w, &clearResp)
	if clearResp["message"] != "Cart cleared" {
		t.Fatalf("clear message got %q", clearResp["message"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart?session_id="+sessionID, "", nil)
	decodeBody(t, w, &items)
	if len(items) != 0 {
		t.Fatalf("cart after clear want empty got %+v", items)
	}
}

func TestCartErrorResponses(t *testing.T) {
	r := setupAPITest(t)
	sessionID := uuid.NewString()

	// Unknown product.
	w := doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":999,"quantity":1}`, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown product status want 404 got %d", w.Code)
	}
	var errResp map[string]string
	decodeBody(t, w, &errResp)
	if errResp["detail"] != "Product not found" {
		t.Fatalf("unknown product detail got %q", errResp["detail"])
	}

	// Removing from a cart that was never written.
	w = doJSON(t, r, http.MethodDelete, "/api/cart/"+sessionID+"/item/"+uuid.NewString(), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("absent cart status want 404 got %d", w.Code)
	}
	decodeBody(t, w, &errResp)
	if errResp["detail"] != "Cart not found" {
		t.Fatalf("absent cart detail got %q", errResp["detail"])
	}

	// Missing line in an existing cart.
	doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":1,"quantity":1}`, nil)
	w = doJSON(t, r, http.MethodDelete, "/api/cart/"+sessionID+"/item/"+uuid.NewString(), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing line status want 404 got %d", w.Code)
	}
	decodeBody(t, w, &errResp)
	if errResp["detail"] != "Item not found in cart" {
		t.Fatalf("missing line detail got %q", errResp["detail"])
	}

	// Malformed bodies.
	w = doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"quantity":1}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing product_id status want 422 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":1,"quantity":"invalid"}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("non-numeric quantity status want 422 got %d", w.Code)
	}

	// Update without a parseable quantity query parameter.
	w = doJSON(t, r, http.MethodPut, "/api/cart/"+sessionID+"/item/"+uuid.NewString(), "", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing quantity status want 422 got %d", w.Code)
	}
}

func TestCartAuthenticatedUser(t *testing.T) {
	r := setupAPITest(t)
	sessionID := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.TokenClaims{
		Email: "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testAuthSecret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	headers := map[string]string{"Authorization": "Bearer " + signed}

	// The token identity wins over the session id in the path.
	w := doJSON(t, r, http.MethodPost, "/api/cart/"+sessionID+"/add", `{"product_id":2,"quantity":1}`, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated add status want 200 got %d (body %s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart", "", headers)
	var items []map[string]interface{}
	decodeBody(t, w, &items)
	if len(items) != 1 || items[0]["product_id"].(float64) != 2 {
		t.Fatalf("authenticated cart want product 2 got %+v", items)
	}

	// The anonymous session the path named stays empty.
	w = doJSON(t, r, http.MethodGet, "/api/cart?session_id="+sessionID, "", nil)
	decodeBody(t, w, &items)
	if len(items) != 0 {
		t.Fatalf("session cart want empty got %+v", items)
	}
}

func TestInvalidTokenFallsBackToAnonymous(t *testing.T) {
	r := setupAPITest(t)
	headers := map[string]string{"Authorization": "Bearer invalid-token"}

	w := doJSON(t, r, http.MethodGet, "/api/cart", "", headers)
	if w.Code != http.StatusOK {
		t.Fatalf("invalid token status want 200 got %d", w.Code)
	}
	var items []map[string]interface{}
	decodeBody(t, w, &items)
	if len(items) != 0 {
		t.Fatalf("default session cart want empty got %+v", items)
	}
}
