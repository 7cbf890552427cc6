package auth

import (
	"helping-hands/volunteerhub/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the request-scoped caller attached by the Authenticate middleware.
type Identity struct {
	ID   uint           `json:"id"`
	Role constants.Role `json:"role"`
}

// Claims is the signed token payload: the identity plus registered claims.
type Claims struct {
	ID   uint           `json:"id"`
	Role constants.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the caller described by the claims.
func (c *Claims) Identity() Identity {
	return Identity{ID: c.ID, Role: c.Role}
}
