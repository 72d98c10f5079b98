package request

// LoginRequest carries exactly one credential: the admin password or an
// affiliate coupon code.
type LoginRequest struct {
	Password string `json:"password"`
	Coupon   string `json:"coupon"`
}
