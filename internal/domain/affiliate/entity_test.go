//go:build unit

package affiliate_test

import (
	"testing"

	"affiliate-ledger/internal/domain/affiliate"
	"affiliate-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "already normalized", raw: "ZEUS10", want: "ZEUS10"},
		{name: "lower case is upper cased", raw: "zeus10", want: "ZEUS10"},
		{name: "surrounding whitespace trimmed", raw: "  zeus10  ", want: "ZEUS10"},
		{name: "hyphen and underscore allowed", raw: "promo-2026_a", want: "PROMO-2026_A"},
		{name: "too short", raw: "z", errIs: affiliate.ErrInvalidCoupon},
		{name: "too long", raw: "A23456789012345678901234567890123", errIs: affiliate.ErrInvalidCoupon},
		{name: "inner whitespace rejected", raw: "zeus 10", errIs: affiliate.ErrInvalidCoupon},
		{name: "punctuation rejected", raw: "zeus#10", errIs: affiliate.ErrInvalidCoupon},
		{name: "empty", raw: "", errIs: affiliate.ErrInvalidCoupon},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := affiliate.NewCoupon(c.raw)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestNewAffiliate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAffiliateBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Zeus Media", actual.Name())
		assert.Equal(t, "ZEUS10", actual.Coupon().String())
		require.NotNil(t, actual.Contact())
		assert.Equal(t, "+1-555-0100", *actual.Contact())
		require.NotNil(t, actual.PayoutKey())
	})

	t.Run("contact is optional", func(t *testing.T) {
		actual, err := builder.NewAffiliateBuilder().With(func(b *builder.AffiliateBuilder) {
			b.Contact = nil
		}).BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, actual.Contact())
	})

	t.Run("coupon normalized on creation", func(t *testing.T) {
		actual, err := builder.NewAffiliateBuilder().With(func(b *builder.AffiliateBuilder) {
			b.Coupon = " zeus10 "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "ZEUS10", actual.Coupon().String())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := builder.NewAffiliateBuilder().With(func(b *builder.AffiliateBuilder) {
			b.Name = "  "
		}).BuildDomain()

		assert.ErrorIs(t, err, affiliate.ErrEmptyName)
	})

	t.Run("invalid coupon rejected", func(t *testing.T) {
		_, err := builder.NewAffiliateBuilder().With(func(b *builder.AffiliateBuilder) {
			b.Coupon = "!"
		}).BuildDomain()

		assert.ErrorIs(t, err, affiliate.ErrInvalidCoupon)
	})

	t.Run("rename", func(t *testing.T) {
		actual, err := builder.NewAffiliateBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Rename("Olympus Media"))
		assert.Equal(t, "Olympus Media", actual.Name())

		assert.ErrorIs(t, actual.Rename(""), affiliate.ErrEmptyName)
	})

	t.Run("change contact", func(t *testing.T) {
		actual, err := builder.NewAffiliateBuilder().BuildDomain()
		require.NoError(t, err)

		updated := "+1-555-0199"
		actual.ChangeContact(&updated)
		require.NotNil(t, actual.Contact())
		assert.Equal(t, updated, *actual.Contact())

		actual.ChangeContact(nil)
		assert.Nil(t, actual.Contact())
	})
}
