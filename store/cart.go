package store

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/models"
)

// CartStore owns the cart state. Every mutation reloads the persisted state,
// applies the change and writes the whole cart back, so a store instance is
// just a handle on its KV and carries no state of its own. Operations never
// fail: unreadable persisted content is discarded and the cart resumes empty.
type CartStore struct {
	kv KV
}

func NewCartStore(kv KV) *CartStore {
	return &CartStore{kv: kv}
}

// State returns the current cart: lines in insertion order plus guest flag.
func (s *CartStore) State() models.CartState {
	return models.CartState{
		Lines:   s.loadLines(),
		IsGuest: s.loadGuest(),
	}
}

// AddToCart merges product into the cart. An existing line for the same
// product id has its quantity incremented and keeps its original price; a new
// product is appended as a fresh line copied from the product. Stock is not
// checked here; that is the caller's concern.
func (s *CartStore) AddToCart(product models.Product, quantity int) {
	lines := s.loadLines()

	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += quantity
			s.saveLines(lines)
			return
		}
	}

	lines = append(lines, models.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})
	s.saveLines(lines)
}

// GetItem returns the line for productID, if present. Read-only.
func (s *CartStore) GetItem(productID int) (models.CartLine, bool) {
	for _, line := range s.loadLines() {
		if line.ProductID == productID {
			return line, true
		}
	}
	return models.CartLine{}, false
}

// UpdateQuantity sets the line's quantity to newQuantity. Values below 1 are
// rejected silently: explicit sets never remove a line.
func (s *CartStore) UpdateQuantity(productID, newQuantity int) {
	if newQuantity < 1 {
		return
	}
	lines := s.loadLines()
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = newQuantity
			s.saveLines(lines)
			return
		}
	}
}

// DecreaseQuantity steps the line's quantity down by one. Unlike
// UpdateQuantity, reaching zero removes the line entirely.
func (s *CartStore) DecreaseQuantity(productID int) {
	lines := s.loadLines()
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		lines[i].Quantity--
		if lines[i].Quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		}
		s.saveLines(lines)
		return
	}
}

// RemoveItem deletes the line for productID unconditionally.
func (s *CartStore) RemoveItem(productID int) {
	lines := s.loadLines()
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			s.saveLines(lines)
			return
		}
	}
}

// ClearCart empties the cart, resets the guest flag and removes both storage
// entries rather than writing empty values.
func (s *CartStore) ClearCart() {
	s.kv.Delete(KeyCart)
	s.kv.Delete(KeyGuest)
}

// CheckoutAsGuest marks the checkout as proceeding without a session. The
// flag lives one day, independently of the cart's own lifetime.
func (s *CartStore) CheckoutAsGuest() {
	s.kv.Set(KeyGuest, "true", GuestTTL)
}

// TotalItems is the sum of quantities, recomputed on every call.
func (s *CartStore) TotalItems() int {
	return s.State().TotalItems()
}

// TotalPrice is Σ price×quantity with add-time prices, recomputed per call.
func (s *CartStore) TotalPrice() decimal.Decimal {
	return s.State().TotalPrice()
}

func (s *CartStore) loadLines() []models.CartLine {
	raw, ok := s.kv.Get(KeyCart)
	if !ok {
		return nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// Corrupt cart entry: discard and resume empty.
		return nil
	}
	// Lines that violate the quantity invariant can only come from tampered
	// storage; drop them instead of propagating them.
	valid := lines[:0]
	for _, line := range lines {
		if line.Quantity >= 1 {
			valid = append(valid, line)
		}
	}
	return valid
}

func (s *CartStore) saveLines(lines []models.CartLine) {
	data, err := json.Marshal(lines)
	if err != nil {
		return
	}
	s.kv.Set(KeyCart, string(data), CartTTL)
}

func (s *CartStore) loadGuest() bool {
	raw, ok := s.kv.Get(KeyGuest)
	if !ok {
		return false
	}
	var guest bool
	if err := json.Unmarshal([]byte(raw), &guest); err != nil {
		return false
	}
	return guest
}
