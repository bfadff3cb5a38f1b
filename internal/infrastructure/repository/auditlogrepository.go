package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atelier/internal/domain/account"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditLogRepository(database *gorm.DB, logger logger.Interface) account.AuditRepository {
	return &AuditLogRepositoryImpl{db: database, logger: logger}
}

func (r *AuditLogRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AuditLogRepositoryImpl) Create(ctx context.Context, e *account.AuditEntry) error {
	model := &models.AuditLogModel{
		ActorID:    e.ActorID,
		Action:     string(e.Action),
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		Detail:     e.Detail,
		CreatedAt:  e.CreatedAt,
	}
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to write audit entry", "error", err, "action", e.Action)
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	e.ID = model.ID
	return nil
}

func (r *AuditLogRepositoryImpl) ListByActor(ctx context.Context, actorID uint, offset, limit int) ([]*account.AuditEntry, int64, error) {
	query := r.conn(ctx).Model(&models.AuditLogModel{}).Where("actor_id = ?", actorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var entryModels []*models.AuditLogModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entryModels).Error; err != nil {
		r.logger.Errorw("failed to list audit entries", "error", err, "actor_id", actorID)
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return r.toEntities(entryModels), total, nil
}

func (r *AuditLogRepositoryImpl) ListByTarget(ctx context.Context, targetType string, targetID uint) ([]*account.AuditEntry, error) {
	var entryModels []*models.AuditLogModel
	err := r.conn(ctx).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at ASC").
		Find(&entryModels).Error
	if err != nil {
		r.logger.Errorw("failed to list audit entries", "error", err, "target_type", targetType, "target_id", targetID)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return r.toEntities(entryModels), nil
}

func (r *AuditLogRepositoryImpl) toEntities(entryModels []*models.AuditLogModel) []*account.AuditEntry {
	entries := make([]*account.AuditEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, &account.AuditEntry{
			ID:         m.ID,
			ActorID:    m.ActorID,
			Action:     account.AuditAction(m.Action),
			TargetType: m.TargetType,
			TargetID:   m.TargetID,
			Detail:     m.Detail,
			CreatedAt:  m.CreatedAt,
		})
	}
	return entries
}
