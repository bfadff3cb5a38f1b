package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/catalog"
	"atelier/internal/domain/discount"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type UpdateQuoteCommand struct {
	QuoteSID   string
	UserID     uint
	Tier       string
	Level      string
	ServiceIDs []string
}

type UpdateQuoteResult struct {
	Quote           *quote.Quote
	UnknownServices []string
}

// UpdateQuoteUseCase changes the selection of an editable quote. Any applied
// discount is detached because its eligibility depends on the selection.
type UpdateQuoteUseCase struct {
	quoteRepo       quote.Repository
	versionRepo     quote.VersionRepository
	applicationRepo discount.ApplicationRepository
	txManager       TransactionManager
	logger          logger.Interface
}

func NewUpdateQuoteUseCase(
	quoteRepo quote.Repository,
	versionRepo quote.VersionRepository,
	applicationRepo discount.ApplicationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateQuoteUseCase {
	return &UpdateQuoteUseCase{
		quoteRepo:       quoteRepo,
		versionRepo:     versionRepo,
		applicationRepo: applicationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *UpdateQuoteUseCase) Execute(ctx context.Context, cmd UpdateQuoteCommand) (*UpdateQuoteResult, error) {
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

	tier, err := catalog.ParseTier(cmd.Tier)
	if err != nil {
		return nil, err
	}
	level, err := catalog.ParseLevel(cmd.Level)
	if err != nil {
		return nil, err
	}

	missing, err := q.UpdateSelection(tier, level, cmd.ServiceIDs)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.applicationRepo.DeleteByQuoteID(txCtx, q.ID()); err != nil {
			return fmt.Errorf("failed to detach discount: %w", err)
		}
		if err := uc.quoteRepo.Update(txCtx, q); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		v := quote.SnapshotVersion(q)
		if err := uc.versionRepo.Create(txCtx, &v); err != nil {
			return fmt.Errorf("failed to snapshot quote: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist quote update", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, err
	}

	uc.logger.Infow("quote selection updated",
		"quote_sid", q.SID(),
		"version", q.Version(),
		"total", q.Totals().TotalPrice,
	)
	return &UpdateQuoteResult{Quote: q, UnknownServices: missing}, nil
}
