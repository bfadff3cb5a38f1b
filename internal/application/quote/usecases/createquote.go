package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/catalog"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type CreateQuoteCommand struct {
	UserID        uint
	Tier          string
	Level         string
	ServiceIDs    []string
	ContactName   string
	ContactEmail  string
	ContactPhone  string
	Channel       string
	PreferredTime string
	Message       string
}

type CreateQuoteResult struct {
	Quote           *quote.Quote
	UnknownServices []string
}

type CreateQuoteUseCase struct {
	quoteRepo   quote.Repository
	versionRepo quote.VersionRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewCreateQuoteUseCase(
	quoteRepo quote.Repository,
	versionRepo quote.VersionRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{
		quoteRepo:   quoteRepo,
		versionRepo: versionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateQuoteUseCase) Execute(ctx context.Context, cmd CreateQuoteCommand) (*CreateQuoteResult, error) {
	tier, err := catalog.ParseTier(cmd.Tier)
	if err != nil {
		return nil, err
	}
	level, err := catalog.ParseLevel(cmd.Level)
	if err != nil {
		return nil, err
	}

	contact := quote.ContactPreference{
		Name:          utils.NormalizeContactName(cmd.ContactName),
		Email:         cmd.ContactEmail,
		Phone:         cmd.ContactPhone,
		Channel:       quote.ContactChannel(cmd.Channel),
		PreferredTime: cmd.PreferredTime,
		Message:       cmd.Message,
	}

	q, missing, err := quote.NewQuote(cmd.UserID, tier, level, cmd.ServiceIDs, contact)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		uc.logger.Warnw("quote references unknown services", "user_id", cmd.UserID, "missing", missing)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.quoteRepo.Create(txCtx, q); err != nil {
			return fmt.Errorf("failed to create quote: %w", err)
		}
		v := quote.SnapshotVersion(q)
		if err := uc.versionRepo.Create(txCtx, &v); err != nil {
			return fmt.Errorf("failed to snapshot quote: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist quote", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("quote created",
		"quote_sid", q.SID(),
		"number", q.Number(),
		"user_id", cmd.UserID,
		"tier", tier,
		"level", level,
		"total", q.Totals().TotalPrice,
		"contact_email", utils.MaskEmail(contact.Email),
	)
	return &CreateQuoteResult{Quote: q, UnknownServices: missing}, nil
}
