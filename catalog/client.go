// Package catalog fetches the product feed from the public demo API. The
// stores never talk to it directly; handlers inject the fetched products.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/models"
)

const DefaultBaseURL = "https://fakestoreapi.com"

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// feedProduct is the wire shape of the demo API. The feed carries no stock
// field, so the rating count stands in as the available quantity.
type feedProduct struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       *int            `json:"stock"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func (f feedProduct) toModel() models.Product {
	stock := f.Rating.Count
	if f.Stock != nil {
		stock = *f.Stock
	}
	return models.Product{
		ID:          f.ID,
		Title:       f.Title,
		Price:       f.Price,
		Description: f.Description,
		Category:    f.Category,
		Image:       f.Image,
		Stock:       stock,
	}
}

// List fetches the full product feed.
func (c *Client) List(ctx context.Context) ([]models.Product, error) {
	body, err := c.get(ctx, c.baseURL+"/products")
	if err != nil {
		return nil, err
	}

	var feed []feedProduct
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]models.Product, 0, len(feed))
	for _, f := range feed {
		products = append(products, f.toModel())
	}
	return products, nil
}

// Get fetches a single product by id. The demo API answers an unknown id
// with an empty body, which surfaces here as ErrNotFound.
func (c *Client) Get(ctx context.Context, id int) (models.Product, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id))
	if err != nil {
		return models.Product{}, err
	}

	var feed feedProduct
	if len(body) == 0 || string(body) == "null" {
		return models.Product{}, ErrNotFound
	}
	if err := json.Unmarshal(body, &feed); err != nil {
		return models.Product{}, fmt.Errorf("decode product: %w", err)
	}
	if feed.ID == 0 {
		return models.Product{}, ErrNotFound
	}
	return feed.toModel(), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
