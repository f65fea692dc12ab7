package store

import "github.com/gin-gonic/gin"

const scopeKey = "scope_id"

// Provider hands out per-request store instances. With no shared backend the
// stores read and write the request's own cookies; with a server-side backend
// (memory, file, database) every key is scoped by the client's scope id so
// one browser cannot see another's cart.
type Provider struct {
	backend KV // nil means cookie-backed
	secret  []byte
}

func NewProvider(backend KV, secret []byte) *Provider {
	return &Provider{backend: backend, secret: secret}
}

// CookieBacked reports whether state is persisted in browser cookies.
func (p *Provider) CookieBacked() bool {
	return p.backend == nil
}

// Cart returns the cart store bound to this request's client.
func (p *Provider) Cart(c *gin.Context) *CartStore {
	return NewCartStore(p.kvFor(c))
}

// Session returns the session store bound to this request's client.
func (p *Provider) Session(c *gin.Context) *SessionStore {
	return NewSessionStore(p.kvFor(c), p.secret)
}

func (p *Provider) kvFor(c *gin.Context) KV {
	if kv, exists := c.Get("store_kv"); exists {
		return kv.(KV)
	}

	var kv KV
	if p.backend == nil {
		kv = NewCookieKV(c)
	} else {
		kv = Scoped(p.backend, c.GetString(scopeKey))
	}

	// Cache on the context so cart and session share one cookie overlay.
	c.Set("store_kv", kv)
	return kv
}
