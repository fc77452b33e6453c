package dto

import "github.com/golang-jwt/jwt/v5"

// Claims carries the identity the upstream order-management platform embeds
// in its access tokens. The slitting service validates tokens but never
// issues them.
type Claims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
