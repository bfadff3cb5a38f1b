package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/catalog"
	"atelier/internal/domain/discount"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type ValidateDiscountQuery struct {
	Code     string
	Tier     string
	Subtotal int
	UserID   uint
}

// ValidateDiscountUseCase checks a code against a selection without applying
// it. Used by the live preview as the customer types.
type ValidateDiscountUseCase struct {
	discountRepo    discount.Repository
	applicationRepo discount.ApplicationRepository
	logger          logger.Interface
}

func NewValidateDiscountUseCase(
	discountRepo discount.Repository,
	applicationRepo discount.ApplicationRepository,
	logger logger.Interface,
) *ValidateDiscountUseCase {
	return &ValidateDiscountUseCase{
		discountRepo:    discountRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func (uc *ValidateDiscountUseCase) Execute(ctx context.Context, query ValidateDiscountQuery) (discount.ValidationResult, error) {
	tier, err := catalog.ParseTier(query.Tier)
	if err != nil {
		return discount.ValidationResult{}, err
	}

	code := utils.NormalizeDiscountCode(query.Code)
	d, err := uc.discountRepo.FindByCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to look up discount", "error", err, "code", code)
		return discount.ValidationResult{}, fmt.Errorf("failed to look up discount: %w", err)
	}
	if d == nil {
		return discount.ValidationResult{Valid: false, Reason: discount.ReasonNotFound}, nil
	}

	usedBefore := false
	if d.PerUserOnce() && query.UserID != 0 {
		usedBefore, err = uc.applicationRepo.HasUserUsed(ctx, d.ID(), query.UserID)
		if err != nil {
			uc.logger.Errorw("failed to check discount usage", "error", err, "code", code, "user_id", query.UserID)
			return discount.ValidationResult{}, fmt.Errorf("failed to check discount usage: %w", err)
		}
	}

	return d.Validate(tier, query.Subtotal, biztime.NowUTC(), usedBefore), nil
}
