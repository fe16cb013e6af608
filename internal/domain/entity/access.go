package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role is the authorization role carried by an authenticated user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// AccessScope is the authorization capability handed to the use case layer.
// It decouples the transaction engine from any particular identity or session
// representation: handlers build it from token claims, tests build it
// directly.
type AccessScope struct {
	UserID  uuid.UUID
	Role    Role
	ShopIDs []uuid.UUID
}

// CanAccessShop reports whether the scope allows operating on the given shop.
// Admins may access every shop; everyone else only their assigned ones.
func (s AccessScope) CanAccessShop(shopID uuid.UUID) bool {
	if s.Role == RoleAdmin {
		return true
	}

	return slices.Contains(s.ShopIDs, shopID)
}
