package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/discount"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type ApplyDiscountCommand struct {
	QuoteSID string
	UserID   uint
	Code     string
}

type ApplyDiscountResult struct {
	Quote  *quote.Quote
	Amount int
}

// ApplyDiscountUseCase attaches a discount to an editable quote: validates
// the code against the quote's selection, records the redemption, bumps the
// usage counter and recomputes the totals, all in one transaction.
type ApplyDiscountUseCase struct {
	quoteRepo       quote.Repository
	discountRepo    discount.Repository
	applicationRepo discount.ApplicationRepository
	txManager       TransactionManager
	logger          logger.Interface
}

func NewApplyDiscountUseCase(
	quoteRepo quote.Repository,
	discountRepo discount.Repository,
	applicationRepo discount.ApplicationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ApplyDiscountUseCase {
	return &ApplyDiscountUseCase{
		quoteRepo:       quoteRepo,
		discountRepo:    discountRepo,
		applicationRepo: applicationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *ApplyDiscountUseCase) Execute(ctx context.Context, cmd ApplyDiscountCommand) (*ApplyDiscountResult, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, cmd.QuoteSID)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}
	if q.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("quote belongs to another user")
	}

	code := utils.NormalizeDiscountCode(cmd.Code)
	d, err := uc.discountRepo.FindByCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to look up discount", "error", err, "code", code)
		return nil, fmt.Errorf("failed to look up discount: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("discount code not found")
	}

	usedBefore := false
	if d.PerUserOnce() {
		usedBefore, err = uc.applicationRepo.HasUserUsed(ctx, d.ID(), cmd.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check discount usage: %w", err)
		}
	}

	result := d.Validate(q.Tier(), q.Totals().Subtotal(), biztime.NowUTC(), usedBefore)
	if !result.Valid {
		return nil, errors.NewValidationError(fmt.Sprintf("discount not applicable: %s", result.Reason))
	}

	if err := q.ApplyDiscount(result.Amount); err != nil {
		return nil, errors.NewStateError(err.Error())
	}
	if err := d.RecordUsage(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// One discount per quote: drop any previous redemption first.
		if err := uc.applicationRepo.DeleteByQuoteID(txCtx, q.ID()); err != nil {
			return fmt.Errorf("failed to replace previous discount: %w", err)
		}
		if err := uc.quoteRepo.Update(txCtx, q); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		if err := uc.discountRepo.Update(txCtx, d); err != nil {
			return fmt.Errorf("failed to update discount: %w", err)
		}
		app := &discount.Application{
			DiscountID: d.ID(),
			QuoteID:    q.ID(),
			UserID:     cmd.UserID,
			Amount:     result.Amount,
			AppliedAt:  biztime.NowUTC(),
		}
		return uc.applicationRepo.Create(txCtx, app)
	})
	if err != nil {
		uc.logger.Errorw("failed to apply discount", "error", err, "quote_sid", cmd.QuoteSID, "code", code)
		return nil, err
	}

	uc.logger.Infow("discount applied",
		"quote_sid", q.SID(),
		"code", code,
		"amount", result.Amount,
	)
	return &ApplyDiscountResult{Quote: q, Amount: result.Amount}, nil
}
