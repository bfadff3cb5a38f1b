package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"atelier/internal/domain/catalog"
	"atelier/internal/domain/discount"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type DiscountRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDiscountRepository(database *gorm.DB, logger logger.Interface) discount.Repository {
	return &DiscountRepositoryImpl{db: database, logger: logger}
}

func (r *DiscountRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *DiscountRepositoryImpl) Create(ctx context.Context, d *discount.Discount) error {
	model, err := r.toModel(d)
	if err != nil {
		return fmt.Errorf("failed to convert discount to model: %w", err)
	}
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create discount", "error", err, "code", d.Code())
		return fmt.Errorf("failed to create discount: %w", err)
	}
	if err := d.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *DiscountRepositoryImpl) Update(ctx context.Context, d *discount.Discount) error {
	model, err := r.toModel(d)
	if err != nil {
		return fmt.Errorf("failed to convert discount to model: %w", err)
	}
	model.ID = d.ID()
	if err := r.conn(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update discount", "error", err, "discount_id", d.ID())
		return fmt.Errorf("failed to update discount: %w", err)
	}
	return nil
}

func (r *DiscountRepositoryImpl) FindByID(ctx context.Context, id uint) (*discount.Discount, error) {
	var model models.DiscountModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get discount by ID", "error", err, "discount_id", id)
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}
	return r.toEntity(&model)
}

func (r *DiscountRepositoryImpl) FindBySID(ctx context.Context, sid string) (*discount.Discount, error) {
	var model models.DiscountModel
	if err := r.conn(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get discount by SID", "error", err, "discount_sid", sid)
		return nil, fmt.Errorf("failed to get discount by SID: %w", err)
	}
	return r.toEntity(&model)
}

func (r *DiscountRepositoryImpl) FindByCode(ctx context.Context, code string) (*discount.Discount, error) {
	var model models.DiscountModel
	if err := r.conn(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get discount by code", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get discount by code: %w", err)
	}
	return r.toEntity(&model)
}

func (r *DiscountRepositoryImpl) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*discount.Discount, int64, error) {
	query := r.conn(ctx).Model(&models.DiscountModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count discounts: %w", err)
	}

	var discountModels []*models.DiscountModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&discountModels).Error; err != nil {
		r.logger.Errorw("failed to list discounts", "error", err)
		return nil, 0, fmt.Errorf("failed to list discounts: %w", err)
	}

	discounts := make([]*discount.Discount, 0, len(discountModels))
	for _, m := range discountModels {
		d, err := r.toEntity(m)
		if err != nil {
			return nil, 0, err
		}
		discounts = append(discounts, d)
	}
	return discounts, total, nil
}

func (r *DiscountRepositoryImpl) toModel(d *discount.Discount) (*models.DiscountModel, error) {
	appliesTo, err := json.Marshal(d.AppliesTo())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal discount scope: %w", err)
	}

	model := &models.DiscountModel{
		SID:         d.SID(),
		Code:        d.Code(),
		Description: d.Description(),
		Type:        string(d.Kind()),
		Value:       d.Value(),
		AppliesTo:   appliesTo,
		UsageLimit:  d.UsageLimit(),
		UsageCount:  d.UsageCount(),
		PerUserOnce: d.PerUserOnce(),
		Active:      d.IsActive(),
		Version:     d.Version(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
	if from := d.ValidFrom(); !from.IsZero() {
		model.ValidFrom = &from
	}
	if until := d.ValidUntil(); !until.IsZero() {
		model.ValidUntil = &until
	}
	return model, nil
}

func (r *DiscountRepositoryImpl) toEntity(model *models.DiscountModel) (*discount.Discount, error) {
	var appliesTo []catalog.Tier
	if len(model.AppliesTo) > 0 {
		if err := json.Unmarshal(model.AppliesTo, &appliesTo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal discount scope: %w", err)
		}
	}

	var validFrom, validUntil time.Time
	if model.ValidFrom != nil {
		validFrom = *model.ValidFrom
	}
	if model.ValidUntil != nil {
		validUntil = *model.ValidUntil
	}

	return discount.ReconstructDiscount(
		model.ID, model.SID, model.Code, model.Description,
		discount.Type(model.Type), model.Value,
		appliesTo, model.UsageLimit, model.UsageCount, model.PerUserOnce,
		validFrom, validUntil, model.Active, model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}
