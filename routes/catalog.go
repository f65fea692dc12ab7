package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
)

// SetupCatalogRoutes registers the public product-browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, client *catalog.Client) {
	r.GET("/products", productcontroller.GetProducts(client))        // GET /products
	r.GET("/products/:id", productcontroller.GetProductByID(client)) // GET /products/:id
}
