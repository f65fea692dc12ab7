package checkoutControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/store"
)

// Store header printed on every receipt.
const (
	storeName    = "OUR STORE"
	storeAddress = "123 Example Street"
	storePhone   = "08123456789"
)

type receiptLine struct {
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// GET /checkout
func GetCheckout(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := p.Cart(c).State()

		if _, loggedIn := c.Get("user"); !loggedIn && !state.IsGuest {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login or register to continue checkout"})
			return
		}

		if len(state.Lines) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Your shopping cart is empty", "items": []receiptLine{}})
			return
		}

		lines := make([]receiptLine, 0, len(state.Lines))
		for _, l := range state.Lines {
			lines = append(lines, receiptLine{
				Title:    l.Title,
				Quantity: l.Quantity,
				Price:    l.Price,
				Subtotal: l.Subtotal(),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"store":       gin.H{"name": storeName, "address": storeAddress, "phone": storePhone},
			"date":        time.Now().Format("2006-01-02 15:04"),
			"items":       lines,
			"total_items": state.TotalItems(),
			"total":       state.TotalPrice(),
			"is_guest":    state.IsGuest,
		})
	}
}

// POST /checkout/guest
func CheckoutAsGuest(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.Cart(c).CheckoutAsGuest()
		c.JSON(http.StatusOK, gin.H{"message": "Continuing checkout as guest", "is_guest": true})
	}
}

// POST /checkout/complete
func CompleteCheckout(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := p.Cart(c)
		state := cart.State()

		if _, loggedIn := c.Get("user"); !loggedIn && !state.IsGuest {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login or register to continue checkout"})
			return
		}
		if len(state.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your shopping cart is empty"})
			return
		}

		total := state.TotalPrice()
		cart.ClearCart()

		c.JSON(http.StatusOK, gin.H{
			"message": "Checkout completed, thank you for shopping",
			"total":   total,
		})
	}
}
