package usecases

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/domain/account"
	"atelier/internal/domain/catalog"
	"atelier/internal/domain/discount"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type CreateDiscountCommand struct {
	AdminID     uint
	Code        string
	Description string
	Type        string
	Value       int
	AppliesTo   []string
	UsageLimit  int
	PerUserOnce bool
	ValidFrom   time.Time
	ValidUntil  time.Time
}

type ToggleDiscountCommand struct {
	AdminID     uint
	DiscountSID string
	Active      bool
}

type ListDiscountsQuery struct {
	ActiveOnly bool
	Pagination utils.Pagination
}

type ListDiscountsResult struct {
	Discounts []*discount.Discount
	Total     int64
}

// ManageDiscountsUseCase is the admin CRUD surface for discount codes.
type ManageDiscountsUseCase struct {
	discountRepo discount.Repository
	auditRepo    account.AuditRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewManageDiscountsUseCase(
	discountRepo discount.Repository,
	auditRepo account.AuditRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ManageDiscountsUseCase {
	return &ManageDiscountsUseCase{
		discountRepo: discountRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ManageDiscountsUseCase) Create(ctx context.Context, cmd CreateDiscountCommand) (*discount.Discount, error) {
	var scope []catalog.Tier
	for _, s := range cmd.AppliesTo {
		tier, err := catalog.ParseTier(s)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		scope = append(scope, tier)
	}

	d, err := discount.NewDiscount(cmd.Code, cmd.Description, discount.Type(cmd.Type), cmd.Value, scope, cmd.UsageLimit, cmd.PerUserOnce, cmd.ValidFrom, cmd.ValidUntil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.discountRepo.FindByCode(ctx, d.Code())
	if err != nil {
		return nil, fmt.Errorf("failed to check discount code: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("discount code already exists")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.discountRepo.Create(txCtx, d); err != nil {
			return fmt.Errorf("failed to create discount: %w", err)
		}
		entry := account.NewAuditEntry(cmd.AdminID, account.AuditDiscountCreated, "discount", d.ID(), d.Code())
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to create discount", "error", err, "code", d.Code())
		return nil, err
	}

	uc.logger.Infow("discount created", "code", d.Code(), "type", d.Kind(), "value", d.Value(), "admin_id", cmd.AdminID)
	return d, nil
}

func (uc *ManageDiscountsUseCase) Toggle(ctx context.Context, cmd ToggleDiscountCommand) (*discount.Discount, error) {
	d, err := uc.discountRepo.FindBySID(ctx, cmd.DiscountSID)
	if err != nil {
		uc.logger.Errorw("failed to get discount", "error", err, "discount_sid", cmd.DiscountSID)
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("discount not found")
	}

	if cmd.Active {
		d.Activate()
	} else {
		d.Deactivate()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.discountRepo.Update(txCtx, d); err != nil {
			return fmt.Errorf("failed to update discount: %w", err)
		}
		action := account.AuditDiscountDisabled
		if cmd.Active {
			action = account.AuditDiscountEnabled
		}
		entry := account.NewAuditEntry(cmd.AdminID, action, "discount", d.ID(), d.Code())
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to toggle discount", "error", err, "discount_sid", cmd.DiscountSID)
		return nil, err
	}
	return d, nil
}

func (uc *ManageDiscountsUseCase) List(ctx context.Context, query ListDiscountsQuery) (*ListDiscountsResult, error) {
	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	discounts, total, err := uc.discountRepo.List(ctx, query.ActiveOnly, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list discounts", "error", err)
		return nil, fmt.Errorf("failed to list discounts: %w", err)
	}
	return &ListDiscountsResult{Discounts: discounts, Total: total}, nil
}
