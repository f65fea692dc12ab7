package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupCartRoutes registers the cart endpoints. Carts work for anonymous
// visitors too, so there is no auth middleware here.
func SetupCartRoutes(r *gin.Engine, p *store.Provider, client *catalog.Client) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(p))                               // GET /cart
		cartGroup.POST("/", cartControllers.AddCartItem(p, client))                  // POST /cart
		cartGroup.GET("/:product_id", cartControllers.GetCartItem(p))                // GET /cart/:product_id
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(p))             // PUT /cart/:product_id
		cartGroup.POST("/:product_id/decrease", cartControllers.DecreaseCartItem(p)) // POST /cart/:product_id/decrease
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(p))          // DELETE /cart/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(p))                          // DELETE /cart
	}
}
