package usecase

import (
	"affiliate-ledger/internal/pkg/jwt"
)

const (
	RoleAdmin     = "admin"
	RoleAffiliate = "affiliate"
)

// Identity is the authenticated caller. Coupon is empty for admins.
type Identity struct {
	Role   string
	Coupon string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether the identity may act on the given coupon's resources.
func (i Identity) Owns(coupon string) bool {
	return i.Role == RoleAffiliate && i.Coupon == coupon
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	switch claims.Role {
	case RoleAdmin, RoleAffiliate:
	default:
		return Identity{}, jwt.ErrInvalidToken
	}

	return Identity{Role: claims.Role, Coupon: claims.Coupon}, nil
}
