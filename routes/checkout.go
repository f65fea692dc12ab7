package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/junaidrashid-git/storefront-api/controllers/checkout"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupCheckoutRoutes registers the checkout endpoints. The login-or-guest
// gate lives in the handlers, because guest checkout must stay reachable.
func SetupCheckoutRoutes(r *gin.Engine, p *store.Provider) {
	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.GET("/", checkoutControllers.GetCheckout(p))               // GET /checkout
		checkoutGroup.POST("/guest", checkoutControllers.CheckoutAsGuest(p))     // POST /checkout/guest
		checkoutGroup.POST("/complete", checkoutControllers.CompleteCheckout(p)) // POST /checkout/complete
	}
}
