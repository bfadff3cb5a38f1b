package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/quote"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/logger"
)

// expireBatchSize caps how many quotes one sweep pass touches.
const expireBatchSize = 100

// ExpireQuotesUseCase is the background sweep that moves stale quotes to
// expired. Runs from the worker on a fixed interval.
type ExpireQuotesUseCase struct {
	quoteRepo quote.Repository
	logger    logger.Interface
}

func NewExpireQuotesUseCase(quoteRepo quote.Repository, logger logger.Interface) *ExpireQuotesUseCase {
	return &ExpireQuotesUseCase{quoteRepo: quoteRepo, logger: logger}
}

// Execute expires one batch and returns how many quotes it touched.
func (uc *ExpireQuotesUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()
	stale, err := uc.quoteRepo.FindExpirable(ctx, now, expireBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to find expirable quotes", "error", err)
		return 0, fmt.Errorf("failed to find expirable quotes: %w", err)
	}

	expired := 0
	for _, q := range stale {
		if err := q.MarkExpired(); err != nil {
			// Raced with a reviewer decision, skip it.
			uc.logger.Debugw("skipping quote during expiry", "quote_sid", q.SID(), "status", q.Status())
			continue
		}
		if err := uc.quoteRepo.Update(ctx, q); err != nil {
			uc.logger.Errorw("failed to expire quote", "error", err, "quote_sid", q.SID())
			continue
		}
		expired++
	}

	if expired > 0 {
		uc.logger.Infow("expired stale quotes", "count", expired)
	}
	return expired, nil
}
