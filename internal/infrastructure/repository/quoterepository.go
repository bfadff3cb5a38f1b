package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"atelier/internal/domain/catalog"
	"atelier/internal/domain/quote"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type QuoteRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewQuoteRepository(database *gorm.DB, logger logger.Interface) quote.Repository {
	return &QuoteRepositoryImpl{db: database, logger: logger}
}

func (r *QuoteRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create inserts the quote and its contact preference, then derives the
// human-readable number from the generated row id.
func (r *QuoteRepositoryImpl) Create(ctx context.Context, q *quote.Quote) error {
	model, err := r.toModel(q)
	if err != nil {
		return fmt.Errorf("failed to convert quote to model: %w", err)
	}

	tx := r.conn(ctx)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create quote", "error", err, "user_id", q.UserID())
		return fmt.Errorf("failed to create quote: %w", err)
	}
	if err := q.SetID(model.ID); err != nil {
		return err
	}

	if err := q.AssignNumber(biztime.NowUTC().Year(), uint64(model.ID)); err != nil {
		return err
	}
	if err := tx.Model(model).Update("number", q.Number()).Error; err != nil {
		r.logger.Errorw("failed to assign quote number", "error", err, "quote_id", model.ID)
		return fmt.Errorf("failed to assign quote number: %w", err)
	}

	contact := r.toContactModel(q)
	if err := tx.Create(contact).Error; err != nil {
		r.logger.Errorw("failed to create contact preference", "error", err, "quote_id", model.ID)
		return fmt.Errorf("failed to create contact preference: %w", err)
	}
	return nil
}

func (r *QuoteRepositoryImpl) Update(ctx context.Context, q *quote.Quote) error {
	model, err := r.toModel(q)
	if err != nil {
		return fmt.Errorf("failed to convert quote to model: %w", err)
	}
	model.ID = q.ID()
	model.Number = q.Number()

	tx := r.conn(ctx)
	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update quote", "error", err, "quote_id", q.ID())
		return fmt.Errorf("failed to update quote: %w", err)
	}

	contact := r.toContactModel(q)
	err = tx.Model(&models.ContactPreferenceModel{}).
		Where("quote_id = ?", q.ID()).
		Updates(map[string]interface{}{
			"name":           contact.Name,
			"email":          contact.Email,
			"phone":          contact.Phone,
			"channel":        contact.Channel,
			"preferred_time": contact.PreferredTime,
			"message":        contact.Message,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update contact preference", "error", err, "quote_id", q.ID())
		return fmt.Errorf("failed to update contact preference: %w", err)
	}
	return nil
}

func (r *QuoteRepositoryImpl) FindByID(ctx context.Context, id uint) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get quote by ID", "error", err, "quote_id", id)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return r.toEntity(ctx, &model)
}

func (r *QuoteRepositoryImpl) FindBySID(ctx context.Context, sid string) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.conn(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get quote by SID", "error", err, "quote_sid", sid)
		return nil, fmt.Errorf("failed to get quote by SID: %w", err)
	}
	return r.toEntity(ctx, &model)
}

func (r *QuoteRepositoryImpl) FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]*quote.Quote, int64, error) {
	query := r.conn(ctx).Model(&models.QuoteModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	var quoteModels []*models.QuoteModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&quoteModels).Error; err != nil {
		r.logger.Errorw("failed to list user quotes", "error", err, "user_id", userID)
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}

	quotes, err := r.toEntities(ctx, quoteModels)
	return quotes, total, err
}

func (r *QuoteRepositoryImpl) List(ctx context.Context, filter quote.ListFilter, offset, limit int) ([]*quote.Quote, int64, error) {
	query := r.conn(ctx).Model(&models.QuoteModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Tier != nil {
		query = query.Where("tier = ?", *filter.Tier)
	}
	if filter.SinceAt != nil {
		query = query.Where("created_at >= ?", *filter.SinceAt)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	var quoteModels []*models.QuoteModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&quoteModels).Error; err != nil {
		r.logger.Errorw("failed to list quotes", "error", err)
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}

	quotes, err := r.toEntities(ctx, quoteModels)
	return quotes, total, err
}

func (r *QuoteRepositoryImpl) FindExpirable(ctx context.Context, now time.Time, limit int) ([]*quote.Quote, error) {
	var quoteModels []*models.QuoteModel
	err := r.conn(ctx).
		Where("expires_at < ?", now).
		Where("status IN ?", []string{
			quote.StatusDraft.String(),
			quote.StatusSubmitted.String(),
			quote.StatusUnderReview.String(),
		}).
		Limit(limit).
		Find(&quoteModels).Error
	if err != nil {
		r.logger.Errorw("failed to find expirable quotes", "error", err)
		return nil, fmt.Errorf("failed to find expirable quotes: %w", err)
	}
	return r.toEntities(ctx, quoteModels)
}

func (r *QuoteRepositoryImpl) CountByStatus(ctx context.Context) (map[quote.Status]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.conn(ctx).Model(&models.QuoteModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count quotes by status", "error", err)
		return nil, fmt.Errorf("failed to count quotes by status: %w", err)
	}

	out := make(map[quote.Status]int64, len(rows))
	for _, rw := range rows {
		out[quote.Status(rw.Status)] = rw.Count
	}
	return out, nil
}

func (r *QuoteRepositoryImpl) toModel(q *quote.Quote) (*models.QuoteModel, error) {
	services, err := json.Marshal(q.Selected())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selected services: %w", err)
	}

	totals := q.Totals()
	return &models.QuoteModel{
		SID:             q.SID(),
		Number:          q.Number(),
		UserID:          q.UserID(),
		Tier:            q.Tier().String(),
		Level:           q.Level().String(),
		Services:        services,
		BasePrice:       totals.BasePrice,
		ServicesPrice:   totals.ServicesPrice,
		DiscountAmount:  totals.DiscountAmount,
		TaxRateBps:      totals.TaxRateBps,
		TaxAmount:       totals.TaxAmount,
		TotalPrice:      totals.TotalPrice,
		Status:          q.Status().String(),
		AdminNotes:      q.AdminNotes(),
		Version:         q.Version(),
		SubmittedAt:     q.SubmittedAt(),
		ReviewStartedAt: q.ReviewStartedAt(),
		DecidedAt:       q.DecidedAt(),
		ExpiresAt:       q.ExpiresAt(),
		CreatedAt:       q.CreatedAt(),
		UpdatedAt:       q.UpdatedAt(),
	}, nil
}

func (r *QuoteRepositoryImpl) toContactModel(q *quote.Quote) *models.ContactPreferenceModel {
	c := q.Contact()
	return &models.ContactPreferenceModel{
		QuoteID:       q.ID(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Channel:       string(c.Channel),
		PreferredTime: c.PreferredTime,
		Message:       c.Message,
	}
}

func (r *QuoteRepositoryImpl) toEntity(ctx context.Context, model *models.QuoteModel) (*quote.Quote, error) {
	var selected []quote.SelectedService
	if len(model.Services) > 0 {
		if err := json.Unmarshal(model.Services, &selected); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selected services: %w", err)
		}
	}

	totals := quote.Totals{
		BasePrice:      model.BasePrice,
		ServicesPrice:  model.ServicesPrice,
		DiscountAmount: model.DiscountAmount,
		TaxRateBps:     model.TaxRateBps,
		TaxAmount:      model.TaxAmount,
		TotalPrice:     model.TotalPrice,
	}

	var contactModel models.ContactPreferenceModel
	contact := quote.ContactPreference{}
	err := r.conn(ctx).Where("quote_id = ?", model.ID).First(&contactModel).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load contact preference: %w", err)
	}
	if err == nil {
		contact = quote.ContactPreference{
			Name:          contactModel.Name,
			Email:         contactModel.Email,
			Phone:         contactModel.Phone,
			Channel:       quote.ContactChannel(contactModel.Channel),
			PreferredTime: contactModel.PreferredTime,
			Message:       contactModel.Message,
		}
	}

	return quote.ReconstructQuote(
		model.ID, model.SID, model.Number, model.UserID,
		catalog.Tier(model.Tier), catalog.Level(model.Level),
		selected, totals, quote.Status(model.Status),
		contact, model.AdminNotes, model.Version,
		model.CreatedAt, model.UpdatedAt,
		model.SubmittedAt, model.ReviewStartedAt, model.DecidedAt, model.ExpiresAt,
	)
}

func (r *QuoteRepositoryImpl) toEntities(ctx context.Context, quoteModels []*models.QuoteModel) ([]*quote.Quote, error) {
	quotes := make([]*quote.Quote, 0, len(quoteModels))
	for _, m := range quoteModels {
		q, err := r.toEntity(ctx, m)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
