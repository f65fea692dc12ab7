package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// redirectFor returns the landing route clients should navigate to after a
// successful login.
func redirectFor(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin-dashboard"
	case models.RoleCashier:
		return "/cashier-dashboard"
	default:
		return "/"
	}
}

// POST /auth/login
//
// This is the demo store's mock authentication: any username/password pair is
// accepted and the role comes from the username itself. Do not mistake it for
// a security mechanism.
func Login(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		user := models.User{
			Username: input.Username,
			Role:     models.DeriveRole(input.Username),
		}
		p.Session(c).Login(user)

		c.JSON(http.StatusOK, gin.H{
			"user":     user,
			"redirect": redirectFor(user.Role),
		})
	}
}

// POST /auth/logout
func Logout(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.Session(c).Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/me
func Me(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": userVal})
	}
}
