package queries

import (
	"context"

	"affiliate-ledger/internal/domain/ledger"
)

type LedgerQueries interface {
	BalanceSummary(ctx context.Context, coupon string) (*BalanceView, error)
	CommissionReport(ctx context.Context) ([]*CommissionReportRow, error)
}

// LedgerRecordRepo feeds the balance engine with the current record sets.
type LedgerRecordRepo interface {
	SaleRecordsByCoupon(ctx context.Context, coupon string) ([]ledger.SaleRecord, error)
	WithdrawalRecordsByCoupon(ctx context.Context, coupon string) ([]ledger.WithdrawalRecord, error)
	AllSaleRecords(ctx context.Context) ([]ledger.SaleRecord, error)
	AllWithdrawalRecords(ctx context.Context) ([]ledger.WithdrawalRecord, error)
}

type ledgerQueriesImpl struct {
	affiliates AffiliateViewRepo
	records    LedgerRecordRepo
}

func NewLedgerQueries(affiliates AffiliateViewRepo, records LedgerRecordRepo) LedgerQueries {
	return &ledgerQueriesImpl{affiliates: affiliates, records: records}
}

// BalanceSummary recomputes the affiliate's position from the current
// records. The displayed available balance is clamped at zero, partners
// never see a negative number.
func (q *ledgerQueriesImpl) BalanceSummary(ctx context.Context, coupon string) (*BalanceView, error) {
	affiliateView, err := q.affiliates.FindByCoupon(ctx, coupon)
	if err != nil {
		return nil, err
	}

	sales, err := q.records.SaleRecordsByCoupon(ctx, affiliateView.Coupon)
	if err != nil {
		return nil, err
	}
	withdrawals, err := q.records.WithdrawalRecordsByCoupon(ctx, affiliateView.Coupon)
	if err != nil {
		return nil, err
	}

	summary := ledger.Balance(affiliateView.Coupon, sales, withdrawals)
	return &BalanceView{
		Coupon:           summary.Coupon,
		ActiveCustomers:  summary.ActiveCount,
		GrossCommission:  summary.GrossCommission,
		CommittedPayout:  summary.CommittedPayout,
		AvailableBalance: summary.Withdrawable(),
	}, nil
}

// CommissionReport aggregates every affiliate in-process. The available
// balance is reported unclamped so the admin can see overdrawn positions.
func (q *ledgerQueriesImpl) CommissionReport(ctx context.Context) ([]*CommissionReportRow, error) {
	affiliates, err := q.affiliates.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := q.records.AllSaleRecords(ctx)
	if err != nil {
		return nil, err
	}
	withdrawals, err := q.records.AllWithdrawalRecords(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*CommissionReportRow, 0, len(affiliates))
	for _, a := range affiliates {
		summary := ledger.Balance(a.Coupon, sales, withdrawals)
		rows = append(rows, &CommissionReportRow{
			AffiliateID:      a.ID,
			Name:             a.Name,
			Coupon:           a.Coupon,
			ActiveCustomers:  summary.ActiveCount,
			GrossCommission:  summary.GrossCommission,
			CommittedPayout:  summary.CommittedPayout,
			AvailableBalance: summary.AvailableBalance,
		})
	}
	return rows, nil
}
