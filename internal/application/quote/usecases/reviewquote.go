package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/account"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

// Decision is the reviewer's verdict on a quote under review.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

type StartReviewCommand struct {
	QuoteSID string
	AdminID  uint
}

type DecideQuoteCommand struct {
	QuoteSID string
	AdminID  uint
	Decision Decision
	Notes    string
}

// ReviewQuoteUseCase drives the admin side of the quote lifecycle and writes
// the audit trail.
type ReviewQuoteUseCase struct {
	quoteRepo quote.Repository
	auditRepo account.AuditRepository
	notifier  QuoteNotifier
	txManager TransactionManager
	logger    logger.Interface
}

func NewReviewQuoteUseCase(
	quoteRepo quote.Repository,
	auditRepo account.AuditRepository,
	notifier QuoteNotifier,
	txManager TransactionManager,
	logger logger.Interface,
) *ReviewQuoteUseCase {
	return &ReviewQuoteUseCase{
		quoteRepo: quoteRepo,
		auditRepo: auditRepo,
		notifier:  notifier,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ReviewQuoteUseCase) StartReview(ctx context.Context, cmd StartReviewCommand) (*quote.Quote, error) {
	q, err := uc.findQuote(ctx, cmd.QuoteSID)
	if err != nil {
		return nil, err
	}

	if err := q.StartReview(); err != nil {
		return nil, errors.NewStateError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.quoteRepo.Update(txCtx, q); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		entry := account.NewAuditEntry(cmd.AdminID, account.AuditQuoteReviewStarted, "quote", q.ID(), q.Number())
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to start review", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, err
	}

	uc.logger.Infow("quote review started", "quote_sid", q.SID(), "admin_id", cmd.AdminID)
	return q, nil
}

func (uc *ReviewQuoteUseCase) Decide(ctx context.Context, cmd DecideQuoteCommand) (*quote.Quote, error) {
	q, err := uc.findQuote(ctx, cmd.QuoteSID)
	if err != nil {
		return nil, err
	}

	var action account.AuditAction
	switch cmd.Decision {
	case DecisionAccept:
		err = q.Accept()
		action = account.AuditQuoteAccepted
	case DecisionReject:
		err = q.Reject()
		action = account.AuditQuoteRejected
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown decision: %q", cmd.Decision))
	}
	if err != nil {
		return nil, errors.NewStateError(err.Error())
	}
	if cmd.Notes != "" {
		q.SetAdminNotes(cmd.Notes)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.quoteRepo.Update(txCtx, q); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		entry := account.NewAuditEntry(cmd.AdminID, action, "quote", q.ID(), q.Number())
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist decision", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyDecision(ctx, q); err != nil {
			uc.logger.Warnw("failed to send decision notification", "error", err, "quote_sid", q.SID())
		}
	}

	uc.logger.Infow("quote decided",
		"quote_sid", q.SID(),
		"decision", cmd.Decision,
		"admin_id", cmd.AdminID,
	)
	return q, nil
}

func (uc *ReviewQuoteUseCase) findQuote(ctx context.Context, sid string) (*quote.Quote, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", sid)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}
	return q, nil
}
