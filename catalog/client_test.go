package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/catalog"
)

const feedJSON = `[
	{"id":1,"title":"Backpack","price":109.95,"description":"Fits 15 inch laptops","category":"men's clothing",
	 "image":"https://img.example/1.jpg","rating":{"rate":3.9,"count":120}},
	{"id":2,"title":"T-Shirt","price":22.3,"description":"Slim fit","category":"men's clothing",
	 "image":"https://img.example/2.jpg","stock":0,"rating":{"rate":4.1,"count":259}}
]`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedJSON))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"title":"Backpack","price":109.95,"image":"https://img.example/1.jpg","rating":{"rate":3.9,"count":120}}`))
	})
	mux.HandleFunc("/products/99", func(w http.ResponseWriter, r *http.Request) {
		// The demo API answers unknown ids with an empty body and 200.
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestList(t *testing.T) {
	server := newFeedServer(t)
	client := catalog.NewClient(server.URL)

	products, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.Equal(t, "109.95", products[0].Price.String())
	assert.Equal(t, 120, products[0].Stock, "rating count stands in for stock")

	assert.Equal(t, 0, products[1].Stock, "explicit stock wins over the rating count")
}

func TestListErrors(t *testing.T) {
	t.Run("unreachable server", func(t *testing.T) {
		client := catalog.NewClient("http://127.0.0.1:1")

		_, err := client.List(context.Background())
		assert.Error(t, err)
	})

	t.Run("server error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		client := catalog.NewClient(server.URL)

		_, err := client.List(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()
		client := catalog.NewClient(server.URL)

		_, err := client.List(context.Background())
		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	server := newFeedServer(t)
	client := catalog.NewClient(server.URL)

	t.Run("known product", func(t *testing.T) {
		product, err := client.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Backpack", product.Title)
		assert.Equal(t, 120, product.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := client.Get(context.Background(), 99)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}
