package models

import "strings"

const (
	RoleAdmin    = "admin"
	RoleCashier  = "cashier"
	RoleCustomer = "customer"
)

// User is the session identity: the display name doubles as the principal.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// DeriveRole maps a username to its role. This naming rule is the entire
// authentication scheme of the demo store: usernames containing "admin" get
// the admin role, usernames containing "cashier" get the cashier role, and
// everyone else is a customer.
func DeriveRole(username string) string {
	switch {
	case strings.Contains(username, "admin"):
		return RoleAdmin
	case strings.Contains(username, "cashier"):
		return RoleCashier
	default:
		return RoleCustomer
	}
}
