package models

import "github.com/shopspring/decimal"

// CartLine is one product entry in the cart. Title, price and image are copied
// from the product at add time; the price is never refreshed on a repeat add.
type CartLine struct {
	ProductID int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartState is the full cart: lines in insertion order plus the guest-checkout
// flag. Every line has quantity >= 1 and a product id unique within the cart.
type CartState struct {
	Lines   []CartLine `json:"lines"`
	IsGuest bool       `json:"is_guest"`
}

// TotalItems is the sum of all line quantities.
func (s CartState) TotalItems() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price × quantity over all lines, using the prices
// captured when each line was added.
func (s CartState) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
