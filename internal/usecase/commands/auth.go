package commands

import (
	"context"
	"log/slog"

	"affiliate-ledger/internal/domain/affiliate"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/infra"
	"affiliate-ledger/internal/pkg/config"
	"affiliate-ledger/internal/pkg/errs"
	"affiliate-ledger/internal/pkg/jwt"
	"affiliate-ledger/internal/pkg/password"
	"affiliate-ledger/internal/usecase"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token     string
	Role      string
	Coupon    string
	ExpiresIn int64
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	affiliateRepo AffiliateRepository
	jwtService    *jwt.Service
	cfg           config.AuthConfig
}

func NewAuthCommands(affiliateRepo AffiliateRepository, jwtService *jwt.Service, cfg config.AuthConfig) AuthCommands {
	return &authCommandsImpl{
		affiliateRepo: affiliateRepo,
		jwtService:    jwtService,
		cfg:           cfg,
	}
}

// Login authenticates either the admin (configured password) or an
// affiliate (their coupon code). Both failure modes collapse to the same
// error so the endpoint does not leak which coupons exist.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	switch {
	case req.Password != "":
		return a.loginAdmin(req.Password)
	case req.Coupon != "":
		return a.loginAffiliate(ctx, req.Coupon)
	default:
		return nil, ErrInvalidCredentials
	}
}

func (a *authCommandsImpl) loginAdmin(pass string) (*LoginResult, error) {
	if err := password.ComparePassword(a.cfg.AdminPasswordHash, pass); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(usecase.RoleAdmin, "")
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		Role:      usecase.RoleAdmin,
		ExpiresIn: int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}

func (a *authCommandsImpl) loginAffiliate(ctx context.Context, rawCoupon string) (*LoginResult, error) {
	code, err := affiliate.NewCoupon(rawCoupon)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snapshot, err := a.affiliateRepo.FindByCoupon(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		slog.Error("affiliate lookup failed during login", "error", err.Error())
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(usecase.RoleAffiliate, snapshot.Coupon)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		Role:      usecase.RoleAffiliate,
		Coupon:    snapshot.Coupon,
		ExpiresIn: int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}
