package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atelier/internal/domain/discount"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type AppliedDiscountRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAppliedDiscountRepository(database *gorm.DB, logger logger.Interface) discount.ApplicationRepository {
	return &AppliedDiscountRepositoryImpl{db: database, logger: logger}
}

func (r *AppliedDiscountRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AppliedDiscountRepositoryImpl) Create(ctx context.Context, a *discount.Application) error {
	model := &models.AppliedDiscountModel{
		DiscountID: a.DiscountID,
		QuoteID:    a.QuoteID,
		UserID:     a.UserID,
		Amount:     a.Amount,
		AppliedAt:  a.AppliedAt,
	}
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to record discount application", "error", err, "discount_id", a.DiscountID, "quote_id", a.QuoteID)
		return fmt.Errorf("failed to record discount application: %w", err)
	}
	a.ID = model.ID
	return nil
}

func (r *AppliedDiscountRepositoryImpl) HasUserUsed(ctx context.Context, discountID, userID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.AppliedDiscountModel{}).
		Where("discount_id = ? AND user_id = ?", discountID, userID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check discount usage", "error", err, "discount_id", discountID, "user_id", userID)
		return false, fmt.Errorf("failed to check discount usage: %w", err)
	}
	return count > 0, nil
}

func (r *AppliedDiscountRepositoryImpl) ListByDiscountID(ctx context.Context, discountID uint) ([]*discount.Application, error) {
	var appModels []*models.AppliedDiscountModel
	err := r.conn(ctx).
		Where("discount_id = ?", discountID).
		Order("applied_at DESC").
		Find(&appModels).Error
	if err != nil {
		r.logger.Errorw("failed to list discount applications", "error", err, "discount_id", discountID)
		return nil, fmt.Errorf("failed to list discount applications: %w", err)
	}

	apps := make([]*discount.Application, 0, len(appModels))
	for _, m := range appModels {
		apps = append(apps, r.toEntity(m))
	}
	return apps, nil
}

func (r *AppliedDiscountRepositoryImpl) FindByQuoteID(ctx context.Context, quoteID uint) (*discount.Application, error) {
	var model models.AppliedDiscountModel
	if err := r.conn(ctx).Where("quote_id = ?", quoteID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get discount application", "error", err, "quote_id", quoteID)
		return nil, fmt.Errorf("failed to get discount application: %w", err)
	}
	return r.toEntity(&model), nil
}

func (r *AppliedDiscountRepositoryImpl) DeleteByQuoteID(ctx context.Context, quoteID uint) error {
	err := r.conn(ctx).
		Where("quote_id = ?", quoteID).
		Delete(&models.AppliedDiscountModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete discount application", "error", err, "quote_id", quoteID)
		return fmt.Errorf("failed to delete discount application: %w", err)
	}
	return nil
}

func (r *AppliedDiscountRepositoryImpl) toEntity(model *models.AppliedDiscountModel) *discount.Application {
	return &discount.Application{
		ID:         model.ID,
		DiscountID: model.DiscountID,
		QuoteID:    model.QuoteID,
		UserID:     model.UserID,
		Amount:     model.Amount,
		AppliedAt:  model.AppliedAt,
	}
}
