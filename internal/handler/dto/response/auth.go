package response

import "affiliate-ledger/internal/usecase/commands"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Coupon      string `json:"coupon,omitempty"`
	ExpiresIn   int64  `json:"expires_in"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		Role:        r.Role,
		Coupon:      r.Coupon,
		ExpiresIn:   r.ExpiresIn,
	}
}
