package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupAuthRoutes registers the mock-auth endpoints. No middleware: login and
// register are public, and /me reports the anonymous state instead of failing.
func SetupAuthRoutes(r *gin.Engine, p *store.Provider) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(p))       // POST /auth/login
		authGroup.POST("/register", auth.Register(p)) // POST /auth/register
		authGroup.POST("/logout", auth.Logout(p))     // POST /auth/logout
		authGroup.GET("/me", auth.Me(p))              // GET /auth/me
	}
}
