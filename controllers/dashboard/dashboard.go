package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The dashboards serve canned figures; there is no order backend to
// aggregate from.

// GET /admin/dashboard
func AdminDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"total_users":    124,
				"total_products": 56,
				"total_orders":   289,
				"revenue":        12543.67,
			},
			"recent_activities": []gin.H{
				{"id": 1, "action": "Product added", "user": "admin1", "time": "2023-05-15 14:30"},
				{"id": 2, "action": "User registered", "user": "newuser", "time": "2023-05-15 13:45"},
				{"id": 3, "action": "Order completed", "user": "customer1", "time": "2023-05-15 12:20"},
				{"id": 4, "action": "System updated", "user": "admin1", "time": "2023-05-15 10:15"},
			},
		})
	}
}

// GET /cashier/dashboard
func CashierDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"transactions":   24,
				"revenue":        1243.50,
				"average_ticket": 51.81,
			},
			"recent_transactions": []gin.H{
				{"id": 1, "customer": "user1", "amount": 125.99, "time": "Today 14:30"},
				{"id": 2, "customer": "user2", "amount": 89.50, "time": "Today 13:45"},
				{"id": 3, "customer": "user3", "amount": 42.99, "time": "Today 12:20"},
				{"id": 4, "customer": "user1", "amount": 56.75, "time": "Today 10:15"},
			},
		})
	}
}
