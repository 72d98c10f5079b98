//go:build unit || e2e

package builder

import (
	domaffiliate "affiliate-ledger/internal/domain/affiliate"
	reqdto "affiliate-ledger/internal/handler/dto/request"
)

type AffiliateBuilder struct {
	Name      string
	Coupon    string
	Contact   *string
	PayoutKey *string
}

func NewAffiliateBuilder() *AffiliateBuilder {
	contact := "+1-555-0100"
	payoutKey := "usdt:TAbcdef1234567890"
	return &AffiliateBuilder{
		Name:      "Zeus Media",
		Coupon:    "ZEUS10",
		Contact:   &contact,
		PayoutKey: &payoutKey,
	}
}

func (b *AffiliateBuilder) With(mutate func(*AffiliateBuilder)) *AffiliateBuilder {
	mutate(b)
	return b
}

func (b *AffiliateBuilder) BuildDomain() (*domaffiliate.Affiliate, error) {
	return domaffiliate.NewAffiliate(b.Name, b.Coupon, b.Contact, b.PayoutKey)
}

func (b *AffiliateBuilder) BuildCreateRequestDTO() reqdto.CreateAffiliateRequest {
	return reqdto.CreateAffiliateRequest{
		Name:      b.Name,
		Coupon:    b.Coupon,
		Contact:   b.Contact,
		PayoutKey: b.PayoutKey,
	}
}
