package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/utils"
)

// POST /auth/register
//
// Registration validates the form fields and logs the new customer straight
// in. Nothing is stored beyond the session.
func Register(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input utils.RegistrationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := utils.ValidateRegistration(input); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		user := models.User{
			Username: input.Username,
			Role:     models.RoleCustomer,
		}
		p.Session(c).Login(user)

		c.JSON(http.StatusCreated, gin.H{
			"user":     user,
			"redirect": "/",
		})
	}
}
