package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"atelier/internal/domain/booking"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type TimeSlotRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTimeSlotRepository(database *gorm.DB, logger logger.Interface) booking.SlotRepository {
	return &TimeSlotRepositoryImpl{db: database, logger: logger}
}

func (r *TimeSlotRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *TimeSlotRepositoryImpl) Create(ctx context.Context, s *booking.TimeSlot) error {
	model := r.toModel(s)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create time slot", "error", err)
		return fmt.Errorf("failed to create time slot: %w", err)
	}
	if err := s.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *TimeSlotRepositoryImpl) Update(ctx context.Context, s *booking.TimeSlot) error {
	model := r.toModel(s)
	model.ID = s.ID()
	if err := r.conn(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update time slot", "error", err, "slot_id", s.ID())
		return fmt.Errorf("failed to update time slot: %w", err)
	}
	return nil
}

func (r *TimeSlotRepositoryImpl) FindByID(ctx context.Context, id uint) (*booking.TimeSlot, error) {
	var model models.TimeSlotModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get time slot", "error", err, "slot_id", id)
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}
	return r.toEntity(&model)
}

func (r *TimeSlotRepositoryImpl) ListActive(ctx context.Context) ([]*booking.TimeSlot, error) {
	return r.list(ctx, true)
}

func (r *TimeSlotRepositoryImpl) ListAll(ctx context.Context) ([]*booking.TimeSlot, error) {
	return r.list(ctx, false)
}

func (r *TimeSlotRepositoryImpl) list(ctx context.Context, activeOnly bool) ([]*booking.TimeSlot, error) {
	query := r.conn(ctx).Model(&models.TimeSlotModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var slotModels []*models.TimeSlotModel
	if err := query.Order("weekday ASC, start_time ASC").Find(&slotModels).Error; err != nil {
		r.logger.Errorw("failed to list time slots", "error", err)
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	slots := make([]*booking.TimeSlot, 0, len(slotModels))
	for _, m := range slotModels {
		s, err := r.toEntity(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *TimeSlotRepositoryImpl) toModel(s *booking.TimeSlot) *models.TimeSlotModel {
	return &models.TimeSlotModel{
		Weekday:     int(s.Weekday()),
		StartTime:   s.StartTime(),
		EndTime:     s.EndTime(),
		MaxBookings: s.MaxBookings(),
		Active:      s.IsActive(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (r *TimeSlotRepositoryImpl) toEntity(model *models.TimeSlotModel) (*booking.TimeSlot, error) {
	return booking.ReconstructTimeSlot(
		model.ID, time.Weekday(model.Weekday),
		model.StartTime, model.EndTime,
		model.MaxBookings, model.Active,
		model.CreatedAt, model.UpdatedAt,
	)
}
