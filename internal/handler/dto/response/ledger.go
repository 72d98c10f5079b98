package response

import (
	"affiliate-ledger/internal/usecase/queries"
)

type BalanceResponse struct {
	Coupon           string `json:"coupon"`
	ActiveCustomers  int    `json:"active_customers"`
	GrossCommission  string `json:"gross_commission"`
	CommittedPayout  string `json:"committed_payout"`
	AvailableBalance string `json:"available_balance"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		Coupon:           v.Coupon,
		ActiveCustomers:  v.ActiveCustomers,
		GrossCommission:  v.GrossCommission.String(),
		CommittedPayout:  v.CommittedPayout.String(),
		AvailableBalance: v.AvailableBalance.String(),
	}
}

type CommissionReportRowResponse struct {
	AffiliateID      string `json:"affiliate_id"`
	Name             string `json:"name"`
	Coupon           string `json:"coupon"`
	ActiveCustomers  int    `json:"active_customers"`
	GrossCommission  string `json:"gross_commission"`
	CommittedPayout  string `json:"committed_payout"`
	AvailableBalance string `json:"available_balance"`
}

func FromCommissionReport(rows []*queries.CommissionReportRow) []*CommissionReportRowResponse {
	res := make([]*CommissionReportRowResponse, len(rows))
	for i, r := range rows {
		res[i] = &CommissionReportRowResponse{
			AffiliateID:      r.AffiliateID.String(),
			Name:             r.Name,
			Coupon:           r.Coupon,
			ActiveCustomers:  r.ActiveCustomers,
			GrossCommission:  r.GrossCommission.String(),
			CommittedPayout:  r.CommittedPayout.String(),
			AvailableBalance: r.AvailableBalance.String(),
		}
	}
	return res
}
