package services_test

import (
	"testing"
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponService_Validate(t *testing.T) {
	db := newTestDB(t)

	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	seed := []entity.Coupon{
		{Code: "SAVE20", Description: "20% off groceries", DiscountType: entity.DiscountPercentage,
			DiscountValue: 20, ValidUntil: future, IsActive: true},
		{Code: "EXPIRED", DiscountType: entity.DiscountFixed, DiscountValue: 10,
			ValidUntil: past, IsActive: true},
		{Code: "MAXEDOUT", DiscountType: entity.DiscountFixed, DiscountValue: 10,
			ValidUntil: future, IsActive: true, UsageLimit: intPtr(5), UsedCount: 5},
		{Code: "BIGCART", DiscountType: entity.DiscountFixed, DiscountValue: 50,
			ValidUntil: future, IsActive: true, MinOrderAmount: floatPtr(500)},
		{Code: "DISABLED", DiscountType: entity.DiscountFixed, DiscountValue: 10,
			ValidUntil: future, IsActive: false},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	svc := services.NewCouponService(repository.NewCouponRepository(db))

	tests := []struct {
		name     string
		code     string
		subtotal float64
		wantErr  error
		wantCode string
	}{
		{name: "mixed_case_lookup", code: "save20", subtotal: 100, wantCode: "SAVE20"},
		{name: "whitespace_trimmed", code: "  SAVE20  ", subtotal: 100, wantCode: "SAVE20"},
		{name: "empty_code", code: "   ", wantErr: services.ErrCouponCodeRequired},
		{name: "unknown_code", code: "NOPE", wantErr: services.ErrCouponNotFound},
		{name: "inactive_is_invisible", code: "DISABLED", wantErr: services.ErrCouponNotFound},
		{name: "expired", code: "EXPIRED", wantErr: services.ErrCouponExpired},
		{name: "usage_limit_reached", code: "MAXEDOUT", wantErr: services.ErrCouponUsageLimit},
		{name: "minimum_met", code: "BIGCART", subtotal: 500, wantCode: "BIGCART"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon, err := svc.Validate(tt.code, tt.subtotal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, coupon)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, coupon.Code)
		})
	}

	t.Run("minimum_not_met_reports_amount", func(t *testing.T) {
		coupon, err := svc.Validate("BIGCART", 499.99)
		require.Error(t, err)
		assert.Nil(t, coupon)

		var minErr *services.MinOrderNotMetError
		require.ErrorAs(t, err, &minErr)
		assert.InDelta(t, 500.0, minErr.MinOrderAmount, 1e-9)
		assert.Contains(t, err.Error(), "500.00")
	})
}
