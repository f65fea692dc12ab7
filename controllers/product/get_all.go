package productcontroller

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
)

const defaultPerPage = 24

// GET /products
func GetProducts(client *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		search := strings.ToLower(c.Query("search"))
		sortBy := c.DefaultQuery("sort_by", "price")
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
		if err != nil || perPage < 1 {
			perPage = defaultPerPage
		}

		// 2️⃣ Fetch the catalog; an unreachable feed degrades to an empty list
		products, err := client.List(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to fetch products: %v", err)
			products = []models.Product{}
		}

		// 3️⃣ Apply search filter on title and description
		if search != "" {
			filtered := products[:0]
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Title), search) ||
					strings.Contains(strings.ToLower(p.Description), search) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		// 4️⃣ Apply sorting
		switch sortBy {
		case "title":
			sort.SliceStable(products, func(i, j int) bool {
				return products[i].Title < products[j].Title
			})
		default: // price
			sort.SliceStable(products, func(i, j int) bool {
				return products[i].Price.LessThan(products[j].Price)
			})
		}

		// 5️⃣ Paginate
		total := len(products)
		totalPages := (total + perPage - 1) / perPage
		start := (page - 1) * perPage
		if start > total {
			start = total
		}
		end := start + perPage
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"products":    products[start:end],
			"total":       total,
			"page":        page,
			"total_pages": totalPages,
		})
	}
}

// GET /products/:id
func GetProductByID(client *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		product, err := client.Get(c.Request.Context(), id)
		if err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Printf("❌ Failed to fetch product %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
