package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupRoutes is the single entry-point that wires up the catalog, auth,
// cart, checkout and dashboard route groups.
func SetupRoutes(r *gin.Engine, p *store.Provider, client *catalog.Client) {
	// Public catalog browsing
	SetupCatalogRoutes(r, client)

	// Auth (mock login/register)
	SetupAuthRoutes(r, p)

	// Cart (anonymous allowed)
	SetupCartRoutes(r, p, client)

	// Checkout summary and guest flow
	SetupCheckoutRoutes(r, p)

	// Role-gated dashboards
	SetupDashboardRoutes(r)
}
