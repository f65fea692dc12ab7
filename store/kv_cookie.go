package store

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CookieKV binds the KV port to one request/response pair: reads come from
// the request's cookies, writes become Set-Cookie headers on the response.
// Values are URL-encoded by gin, so JSON payloads round-trip safely. With this
// backend all storefront state lives in the browser and the server stays
// stateless.
//
// Writes are also kept in an overlay so that reads later in the same request
// observe them; the browser only sees the final Set-Cookie headers.
type CookieKV struct {
	c       *gin.Context
	secure  bool
	written map[string]string
	deleted map[string]bool
}

func NewCookieKV(c *gin.Context) *CookieKV {
	return &CookieKV{
		c:       c,
		written: make(map[string]string),
		deleted: make(map[string]bool),
	}
}

func (k *CookieKV) Get(key string) (string, bool) {
	if k.deleted[key] {
		return "", false
	}
	if value, ok := k.written[key]; ok {
		return value, true
	}
	value, err := k.c.Cookie(key)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (k *CookieKV) Set(key, value string, ttl time.Duration) {
	k.written[key] = value
	delete(k.deleted, key)
	k.c.SetCookie(key, value, int(ttl.Seconds()), "/", "", k.secure, false)
}

func (k *CookieKV) Delete(key string) {
	delete(k.written, key)
	k.deleted[key] = true
	k.c.SetCookie(key, "", -1, "/", "", k.secure, false)
}
