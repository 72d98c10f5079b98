package affiliate

import (
	"errors"
	"strings"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// Coupon is the attribution key linking sales and withdrawals to an affiliate.
// Stored upper-cased so attribution matching is case-insensitive.
type Coupon string

func NewCoupon(raw string) (Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) < 2 || len(code) > 32 {
		return "", ErrInvalidCoupon
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return "", ErrInvalidCoupon
		}
	}
	return Coupon(code), nil
}

func (c Coupon) String() string {
	return string(c)
}
