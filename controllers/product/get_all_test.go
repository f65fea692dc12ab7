package productcontroller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/routes"
)

const feedJSON = `[
	{"id":1,"title":"Wool Socks","price":9.5,"description":"warm","category":"clothing","image":"","rating":{"rate":4,"count":10}},
	{"id":2,"title":"Aluminum Bottle","price":19.0,"description":"one liter","category":"kitchen","image":"","rating":{"rate":4,"count":5}},
	{"id":3,"title":"Canvas Bag","price":4.25,"description":"fits a laptop","category":"bags","image":"","rating":{"rate":3,"count":7}}
]`

func newProductRouter(t *testing.T, feedHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	feed := httptest.NewServer(feedHandler)
	t.Cleanup(feed.Close)

	r := gin.New()
	routes.SetupCatalogRoutes(r, catalog.NewClient(feed.URL))
	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	Products []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	} `json:"products"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

func serveFeed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(feedJSON))
}

func TestGetProductsSortsByPrice(t *testing.T) {
	router := newProductRouter(t, serveFeed)

	w := get(t, router, "/products")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)

	var ids []int
	for _, p := range resp.Products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, ids, "cheapest first by default")
}

func TestGetProductsSortsByTitle(t *testing.T) {
	router := newProductRouter(t, serveFeed)

	w := get(t, router, "/products?sort_by=title")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var titles []string
	for _, p := range resp.Products {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"Aluminum Bottle", "Canvas Bag", "Wool Socks"}, titles)
}

func TestGetProductsSearch(t *testing.T) {
	router := newProductRouter(t, serveFeed)

	// Matches title or description, case-insensitively.
	w := get(t, router, "/products?search=LAPTOP")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Canvas Bag", resp.Products[0].Title)
}

func TestGetProductsPagination(t *testing.T) {
	router := newProductRouter(t, serveFeed)

	w := get(t, router, "/products?per_page=2&page=2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Products, 1)
}

func TestGetProductsDegradesToEmpty(t *testing.T) {
	router := newProductRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	w := get(t, router, "/products")
	require.Equal(t, http.StatusOK, w.Code, "feed failure is not surfaced to the client")

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Products)
}

func TestGetProductByID(t *testing.T) {
	router := newProductRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/2" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":2,"title":"Aluminum Bottle","price":19.0,"image":"","rating":{"rate":4,"count":5}}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	w := get(t, router, "/products/2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aluminum Bottle")

	w = get(t, router, "/products/42")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, router, "/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
