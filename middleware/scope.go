package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const scopeCookie = "scope_id"

// ClientScope pins an anonymous id to each browser via a long-lived cookie.
// Server-side storage backends key every entry by this id; the cookie backend
// does not need it, so main only installs this middleware for the former.
func ClientScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(scopeCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(scopeCookie, id, int((90 * 24 * time.Hour).Seconds()), "/", "", false, true)
		}
		c.Set(scopeCookie, id)
		c.Next()
	}
}
