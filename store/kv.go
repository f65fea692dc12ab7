// Package store holds the cart and session state containers and the
// key-value persistence port they write through. The port mirrors the
// browser-cookie model: string keys, string values, a lifetime per entry.
package store

import "time"

// Storage keys. The names match the cookies the storefront has always used.
const (
	KeyUser  = "user"
	KeyCart  = "cart"
	KeyGuest = "isGuest"
)

// Entry lifetimes. The guest flag deliberately expires sooner than the cart.
const (
	UserTTL  = 7 * 24 * time.Hour
	CartTTL  = 7 * 24 * time.Hour
	GuestTTL = 24 * time.Hour
)

// KV is the persistence port. Implementations are backed by response
// cookies, process memory, a JSON file or a database table; store logic
// does not care which. None of the operations report errors: persistence
// is fire-and-forget and a failed read is indistinguishable from a miss.
type KV interface {
	// Get returns the stored value, or false if the key is absent or expired.
	Get(key string) (string, bool)
	// Set stores value under key for ttl.
	Set(key, value string, ttl time.Duration)
	// Delete removes the entry for key.
	Delete(key string)
}

type prefixKV struct {
	kv     KV
	prefix string
}

// Scoped returns a view of kv with every key prefixed by scope. Server-side
// backends use it to keep one client's cart and session apart from another's,
// the same way guest carts are keyed by their guest id.
func Scoped(kv KV, scope string) KV {
	return prefixKV{kv: kv, prefix: scope + ":"}
}

func (p prefixKV) Get(key string) (string, bool) {
	return p.kv.Get(p.prefix + key)
}

func (p prefixKV) Set(key, value string, ttl time.Duration) {
	p.kv.Set(p.prefix+key, value, ttl)
}

func (p prefixKV) Delete(key string) {
	p.kv.Delete(p.prefix + key)
}
