package routes

import (
	"github.com/gin-gonic/gin"

	dashboardControllers "github.com/junaidrashid-git/storefront-api/controllers/dashboard"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
)

// SetupDashboardRoutes registers the role-gated dashboards.
func SetupDashboardRoutes(r *gin.Engine) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/dashboard", dashboardControllers.AdminDashboard()) // GET /admin/dashboard
	}

	cashierGroup := r.Group("/cashier")
	cashierGroup.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleCashier))
	{
		cashierGroup.GET("/dashboard", dashboardControllers.CashierDashboard()) // GET /cashier/dashboard
	}
}
