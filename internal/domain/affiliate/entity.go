package affiliate

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("affiliate name cannot be empty")

type Affiliate struct {
	id        uuid.UUID
	name      string
	coupon    Coupon
	contact   *string
	payoutKey *string
	createdAt time.Time
	updatedAt time.Time
}

func NewAffiliate(name string, coupon string, contact, payoutKey *string) (*Affiliate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	code, err := NewCoupon(coupon)
	if err != nil {
		return nil, err
	}

	return &Affiliate{
		id:        uuid.New(),
		name:      name,
		coupon:    code,
		contact:   contact,
		payoutKey: payoutKey,
	}, nil
}

func ReconstructAffiliate(
	id uuid.UUID,
	name string,
	coupon Coupon,
	contact, payoutKey *string,
	createdAt, updatedAt time.Time,
) *Affiliate {
	return &Affiliate{
		id:        id,
		name:      name,
		coupon:    coupon,
		contact:   contact,
		payoutKey: payoutKey,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Affiliate) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	a.name = name
	return nil
}

func (a *Affiliate) ChangeContact(contact *string) {
	a.contact = contact
}

func (a *Affiliate) ChangePayoutKey(payoutKey *string) {
	a.payoutKey = payoutKey
}

func (a *Affiliate) ID() uuid.UUID        { return a.id }
func (a *Affiliate) Name() string         { return a.name }
func (a *Affiliate) Coupon() Coupon       { return a.coupon }
func (a *Affiliate) Contact() *string     { return a.contact }
func (a *Affiliate) PayoutKey() *string   { return a.payoutKey }
func (a *Affiliate) CreatedAt() time.Time { return a.createdAt }
func (a *Affiliate) UpdatedAt() time.Time { return a.updatedAt }
