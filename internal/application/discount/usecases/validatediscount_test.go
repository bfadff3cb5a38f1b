package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain/discount"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type fakeDiscountRepo struct {
	byCode map[string]*discount.Discount
}

func (r *fakeDiscountRepo) Create(ctx context.Context, d *discount.Discount) error { return nil }
func (r *fakeDiscountRepo) Update(ctx context.Context, d *discount.Discount) error { return nil }
func (r *fakeDiscountRepo) FindByID(ctx context.Context, id uint) (*discount.Discount, error) {
	return nil, nil
}
func (r *fakeDiscountRepo) FindBySID(ctx context.Context, sid string) (*discount.Discount, error) {
	return nil, nil
}
func (r *fakeDiscountRepo) FindByCode(ctx context.Context, code string) (*discount.Discount, error) {
	return r.byCode[code], nil
}
func (r *fakeDiscountRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*discount.Discount, int64, error) {
	return nil, 0, nil
}

type fakeApplicationRepo struct {
	used map[uint]bool
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a *discount.Application) error { return nil }
func (r *fakeApplicationRepo) HasUserUsed(ctx context.Context, discountID, userID uint) (bool, error) {
	return r.used[userID], nil
}
func (r *fakeApplicationRepo) ListByDiscountID(ctx context.Context, discountID uint) ([]*discount.Application, error) {
	return nil, nil
}
func (r *fakeApplicationRepo) FindByQuoteID(ctx context.Context, quoteID uint) (*discount.Application, error) {
	return nil, nil
}
func (r *fakeApplicationRepo) DeleteByQuoteID(ctx context.Context, quoteID uint) error { return nil }

func newTestDiscount(t *testing.T, perUserOnce bool) *discount.Discount {
	t.Helper()
	now := time.Now().UTC()
	d, err := discount.ReconstructDiscount(
		1, "dc_test00000001", "LANCIO10", "Sconto lancio", discount.TypePercentage, 10,
		nil, 100, 0, perUserOnce,
		now.Add(-time.Hour), now.Add(24*time.Hour), true, 1,
		now, now,
	)
	require.NoError(t, err)
	return d
}

func TestValidateDiscountUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("valid code returns amount", func(t *testing.T) {
		d := newTestDiscount(t, false)
		uc := NewValidateDiscountUseCase(
			&fakeDiscountRepo{byCode: map[string]*discount.Discount{d.Code(): d}},
			&fakeApplicationRepo{},
			log,
		)

		res, err := uc.Execute(context.Background(), ValidateDiscountQuery{
			Code:     "lancio10",
			Tier:     "pro",
			Subtotal: 2400,
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, 240, res.Amount)
	})

	t.Run("code is normalized before lookup", func(t *testing.T) {
		d := newTestDiscount(t, false)
		uc := NewValidateDiscountUseCase(
			&fakeDiscountRepo{byCode: map[string]*discount.Discount{d.Code(): d}},
			&fakeApplicationRepo{},
			log,
		)

		res, err := uc.Execute(context.Background(), ValidateDiscountQuery{
			Code:     "  LANCIO10  ",
			Tier:     "starter",
			Subtotal: 850,
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "LANCIO10", utils.NormalizeDiscountCode("  lancio10  "))
	})

	t.Run("unknown code reports not_found without error", func(t *testing.T) {
		uc := NewValidateDiscountUseCase(
			&fakeDiscountRepo{byCode: map[string]*discount.Discount{}},
			&fakeApplicationRepo{},
			log,
		)

		res, err := uc.Execute(context.Background(), ValidateDiscountQuery{
			Code:     "NOPE",
			Tier:     "pro",
			Subtotal: 1800,
		})
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, discount.ReasonNotFound, res.Reason)
	})

	t.Run("per-user-once rejects a second redemption", func(t *testing.T) {
		d := newTestDiscount(t, true)
		uc := NewValidateDiscountUseCase(
			&fakeDiscountRepo{byCode: map[string]*discount.Discount{d.Code(): d}},
			&fakeApplicationRepo{used: map[uint]bool{42: true}},
			log,
		)

		res, err := uc.Execute(context.Background(), ValidateDiscountQuery{
			Code:     "LANCIO10",
			Tier:     "pro",
			Subtotal: 2400,
			UserID:   42,
		})
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, discount.ReasonAlreadyUsedByYou, res.Reason)
	})

	t.Run("anonymous user skips the usage check", func(t *testing.T) {
		d := newTestDiscount(t, true)
		uc := NewValidateDiscountUseCase(
			&fakeDiscountRepo{byCode: map[string]*discount.Discount{d.Code(): d}},
			&fakeApplicationRepo{used: map[uint]bool{42: true}},
			log,
		)

		res, err := uc.Execute(context.Background(), ValidateDiscountQuery{
			Code:     "LANCIO10",
			Tier:     "ecommerce",
			Subtotal: 3500,
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("invalid tier is an error", func(t *testing.T) {
		uc := NewValidateDiscountUseCase(&fakeDiscountRepo{}, &fakeApplicationRepo{}, log)

		_, err := uc.Execute(context.Background(), ValidateDiscountQuery{
			Code: "LANCIO10",
			Tier: "enterprise",
		})
		assert.Error(t, err)
	})
}
