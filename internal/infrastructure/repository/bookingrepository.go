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

type BookingRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBookingRepository(database *gorm.DB, logger logger.Interface) booking.Repository {
	return &BookingRepositoryImpl{db: database, logger: logger}
}

func (r *BookingRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, b *booking.Booking) error {
	model := r.toModel(b)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create booking", "error", err, "quote_id", b.QuoteID())
		return fmt.Errorf("failed to create booking: %w", err)
	}
	if err := b.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, b *booking.Booking) error {
	model := r.toModel(b)
	model.ID = b.ID()
	if err := r.conn(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update booking", "error", err, "booking_id", b.ID())
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var model models.BookedSlotModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get booking", "error", err, "booking_id", id)
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return r.toEntity(&model)
}

func (r *BookingRepositoryImpl) FindBySID(ctx context.Context, sid string) (*booking.Booking, error) {
	var model models.BookedSlotModel
	if err := r.conn(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get booking by SID", "error", err, "booking_sid", sid)
		return nil, fmt.Errorf("failed to get booking by SID: %w", err)
	}
	return r.toEntity(&model)
}

func (r *BookingRepositoryImpl) FindByQuoteID(ctx context.Context, quoteID uint) (*booking.Booking, error) {
	var model models.BookedSlotModel
	if err := r.conn(ctx).Where("quote_id = ?", quoteID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get booking by quote", "error", err, "quote_id", quoteID)
		return nil, fmt.Errorf("failed to get booking by quote: %w", err)
	}
	return r.toEntity(&model)
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.BookedSlotModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete booking", "error", err, "booking_id", id)
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (r *BookingRepositoryImpl) CountBySlotDate(ctx context.Context, slotID uint, date time.Time) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&models.BookedSlotModel{}).
		Where("slot_id = ? AND date = ?", slotID, date).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count bookings", "error", err, "slot_id", slotID)
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (r *BookingRepositoryImpl) CountsInRange(ctx context.Context, from, until time.Time) (map[uint]map[time.Time]int, error) {
	type row struct {
		SlotID uint
		Date   time.Time
		Count  int
	}
	var rows []row
	err := r.conn(ctx).Model(&models.BookedSlotModel{}).
		Select("slot_id, date, COUNT(*) as count").
		Where("date >= ? AND date < ?", from, until).
		Group("slot_id, date").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count bookings in range", "error", err)
		return nil, fmt.Errorf("failed to count bookings in range: %w", err)
	}

	out := make(map[uint]map[time.Time]int)
	for _, rw := range rows {
		date := rw.Date.UTC()
		if out[rw.SlotID] == nil {
			out[rw.SlotID] = make(map[time.Time]int)
		}
		out[rw.SlotID][date] = rw.Count
	}
	return out, nil
}

func (r *BookingRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]*booking.Booking, error) {
	var bookingModels []*models.BookedSlotModel
	err := r.conn(ctx).
		Where("date = ?", date).
		Order("slot_id ASC").
		Find(&bookingModels).Error
	if err != nil {
		r.logger.Errorw("failed to list bookings by date", "error", err)
		return nil, fmt.Errorf("failed to list bookings by date: %w", err)
	}

	bookings := make([]*booking.Booking, 0, len(bookingModels))
	for _, m := range bookingModels {
		b, err := r.toEntity(m)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) toModel(b *booking.Booking) *models.BookedSlotModel {
	return &models.BookedSlotModel{
		SID:       b.SID(),
		QuoteID:   b.QuoteID(),
		UserID:    b.UserID(),
		SlotID:    b.SlotID(),
		Date:      b.Date(),
		Confirmed: b.IsConfirmed(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func (r *BookingRepositoryImpl) toEntity(model *models.BookedSlotModel) (*booking.Booking, error) {
	return booking.ReconstructBooking(
		model.ID, model.SID,
		model.QuoteID, model.UserID, model.SlotID,
		model.Date.UTC(), model.Confirmed,
		model.CreatedAt, model.UpdatedAt,
	)
}
