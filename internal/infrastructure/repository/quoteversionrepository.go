package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"atelier/internal/domain/catalog"
	"atelier/internal/domain/quote"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type QuoteVersionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewQuoteVersionRepository(database *gorm.DB, logger logger.Interface) quote.VersionRepository {
	return &QuoteVersionRepositoryImpl{db: database, logger: logger}
}

func (r *QuoteVersionRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *QuoteVersionRepositoryImpl) Create(ctx context.Context, v *quote.Version) error {
	model, err := r.toModel(v)
	if err != nil {
		return fmt.Errorf("failed to convert quote version to model: %w", err)
	}
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create quote version", "error", err, "quote_id", v.QuoteID, "version", v.Version)
		return fmt.Errorf("failed to create quote version: %w", err)
	}
	v.ID = model.ID
	return nil
}

func (r *QuoteVersionRepositoryImpl) ListByQuoteID(ctx context.Context, quoteID uint) ([]*quote.Version, error) {
	var versionModels []*models.QuoteVersionModel
	err := r.conn(ctx).
		Where("quote_id = ?", quoteID).
		Order("version ASC").
		Find(&versionModels).Error
	if err != nil {
		r.logger.Errorw("failed to list quote versions", "error", err, "quote_id", quoteID)
		return nil, fmt.Errorf("failed to list quote versions: %w", err)
	}

	versions := make([]*quote.Version, 0, len(versionModels))
	for _, m := range versionModels {
		v, err := r.toEntity(m)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func (r *QuoteVersionRepositoryImpl) FindByQuoteVersion(ctx context.Context, quoteID uint, version int) (*quote.Version, error) {
	var model models.QuoteVersionModel
	err := r.conn(ctx).
		Where("quote_id = ? AND version = ?", quoteID, version).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get quote version", "error", err, "quote_id", quoteID, "version", version)
		return nil, fmt.Errorf("failed to get quote version: %w", err)
	}
	return r.toEntity(&model)
}

func (r *QuoteVersionRepositoryImpl) toModel(v *quote.Version) (*models.QuoteVersionModel, error) {
	services, err := json.Marshal(v.Selected)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selected services: %w", err)
	}
	contact, err := json.Marshal(v.Contact)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact preference: %w", err)
	}

	return &models.QuoteVersionModel{
		QuoteID:        v.QuoteID,
		Version:        v.Version,
		Tier:           v.Tier.String(),
		Level:          v.Level.String(),
		Services:       services,
		Contact:        contact,
		BasePrice:      v.Totals.BasePrice,
		ServicesPrice:  v.Totals.ServicesPrice,
		DiscountAmount: v.Totals.DiscountAmount,
		TaxRateBps:     v.Totals.TaxRateBps,
		TaxAmount:      v.Totals.TaxAmount,
		TotalPrice:     v.Totals.TotalPrice,
		CreatedAt:      v.CreatedAt,
	}, nil
}

func (r *QuoteVersionRepositoryImpl) toEntity(model *models.QuoteVersionModel) (*quote.Version, error) {
	var selected []quote.SelectedService
	if len(model.Services) > 0 {
		if err := json.Unmarshal(model.Services, &selected); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selected services: %w", err)
		}
	}
	var contact quote.ContactPreference
	if len(model.Contact) > 0 {
		if err := json.Unmarshal(model.Contact, &contact); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contact preference: %w", err)
		}
	}

	return &quote.Version{
		ID:      model.ID,
		QuoteID: model.QuoteID,
		Version: model.Version,
		Tier:    catalog.Tier(model.Tier),
		Level:   catalog.Level(model.Level),
		Selected: selected,
		Totals: quote.Totals{
			BasePrice:      model.BasePrice,
			ServicesPrice:  model.ServicesPrice,
			DiscountAmount: model.DiscountAmount,
			TaxRateBps:     model.TaxRateBps,
			TaxAmount:      model.TaxAmount,
			TotalPrice:     model.TotalPrice,
		},
		Contact:   contact,
		CreatedAt: model.CreatedAt,
	}, nil
}
