package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"atelier/internal/domain/analytics"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type JourneyEventRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewJourneyEventRepository(database *gorm.DB, logger logger.Interface) analytics.Repository {
	return &JourneyEventRepositoryImpl{db: database, logger: logger}
}

func (r *JourneyEventRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *JourneyEventRepositoryImpl) Create(ctx context.Context, e *analytics.JourneyEvent) error {
	model := &models.JourneyEventModel{
		SessionID: e.SessionID,
		UserID:    e.UserID,
		Type:      string(e.Type),
		Tier:      e.Tier,
		Level:     e.Level,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to record journey event", "error", err, "type", e.Type)
		return fmt.Errorf("failed to record journey event: %w", err)
	}
	e.ID = model.ID
	return nil
}

func (r *JourneyEventRepositoryImpl) CountSessionsByStep(ctx context.Context, from, until time.Time) (map[analytics.EventType]int64, error) {
	type row struct {
		Type  string
		Count int64
	}
	var rows []row
	err := r.conn(ctx).Model(&models.JourneyEventModel{}).
		Select("type, COUNT(DISTINCT session_id) as count").
		Where("created_at >= ? AND created_at < ?", from, until).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count journey sessions", "error", err)
		return nil, fmt.Errorf("failed to count journey sessions: %w", err)
	}

	out := make(map[analytics.EventType]int64, len(rows))
	for _, rw := range rows {
		out[analytics.EventType(rw.Type)] = rw.Count
	}
	return out, nil
}

func (r *JourneyEventRepositoryImpl) CountTierSelections(ctx context.Context, from, until time.Time) ([]analytics.TierInterest, error) {
	type row struct {
		Tier  string
		Count int64
	}
	var rows []row
	err := r.conn(ctx).Model(&models.JourneyEventModel{}).
		Select("tier, COUNT(*) as count").
		Where("type = ?", string(analytics.EventTierSelected)).
		Where("created_at >= ? AND created_at < ?", from, until).
		Group("tier").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count tier selections", "error", err)
		return nil, fmt.Errorf("failed to count tier selections: %w", err)
	}

	out := make([]analytics.TierInterest, 0, len(rows))
	for _, rw := range rows {
		out = append(out, analytics.TierInterest{Tier: rw.Tier, Selections: rw.Count})
	}
	return out, nil
}

func (r *JourneyEventRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.conn(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.JourneyEventModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to prune journey events", "error", result.Error)
		return 0, fmt.Errorf("failed to prune journey events: %w", result.Error)
	}
	return result.RowsAffected, nil
}
