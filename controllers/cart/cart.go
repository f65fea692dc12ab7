package cartControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/store"
)

type CartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

// QuantityInput carries an explicit quantity set. Values below 1 (including
// an omitted field) fall through to the store, which ignores them.
type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := p.Cart(c).State()
		c.JSON(http.StatusOK, gin.H{
			"items":       state.Lines,
			"is_guest":    state.IsGuest,
			"total_items": state.TotalItems(),
			"total_price": state.TotalPrice(),
		})
	}
}

// POST /cart
func AddCartItem(p *store.Provider, client *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		// Fetch the product from the catalog so the line copies its current
		// title, price and image.
		product, err := client.Get(c.Request.Context(), input.ProductID)
		if err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Printf("❌ Failed to validate product %d: %v", input.ProductID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		// Stock is a view-layer gate; the cart store itself never checks it.
		if product.Stock == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
			return
		}

		cart := p.Cart(c)
		cart.AddToCart(product, quantity)

		line, _ := cart.GetItem(product.ID)
		c.JSON(http.StatusCreated, line)
	}
}

// GET /cart/:product_id
func GetCartItem(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		line, ok := p.Cart(c).GetItem(productID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// PUT /cart/:product_id
func UpdateCartItem(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart := p.Cart(c)
		if _, ok := cart.GetItem(productID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		// Quantities below 1 are ignored by the store; the line is returned
		// unchanged in that case.
		cart.UpdateQuantity(productID, input.Quantity)

		line, _ := cart.GetItem(productID)
		c.JSON(http.StatusOK, line)
	}
}

// POST /cart/:product_id/decrease
func DecreaseCartItem(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		cart := p.Cart(c)
		if _, ok := cart.GetItem(productID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		cart.DecreaseQuantity(productID)

		if line, ok := cart.GetItem(productID); ok {
			c.JSON(http.StatusOK, line)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		cart := p.Cart(c)
		if _, ok := cart.GetItem(productID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		cart.RemoveItem(productID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(p *store.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.Cart(c).ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
