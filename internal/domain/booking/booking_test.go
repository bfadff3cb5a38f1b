package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/shared/biztime"
)

func tuesdaySlot(t *testing.T) *TimeSlot {
	t.Helper()
	slot, err := NewTimeSlot(time.Tuesday, "10:00", "11:00", 2)
	require.NoError(t, err)
	require.NoError(t, slot.SetID(1))
	return slot
}

// nextWeekday returns the first occurrence of w strictly in the future.
func nextWeekday(w time.Weekday) time.Time {
	date := biztime.BusinessDate(biztime.NowUTC()).AddDate(0, 0, 1)
	for date.Weekday() != w {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		slot, err := NewTimeSlot(time.Monday, "09:30", "10:30", 3)
		require.NoError(t, err)
		assert.True(t, slot.IsActive())
		assert.Equal(t, 3, slot.MaxBookings())
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		_, err := NewTimeSlot(time.Monday, "9am", "10:00", 1)
		assert.Error(t, err)
		_, err = NewTimeSlot(time.Monday, "10:00", "25:00", 1)
		assert.Error(t, err)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := NewTimeSlot(time.Monday, "11:00", "10:00", 1)
		assert.Error(t, err)
		_, err = NewTimeSlot(time.Monday, "10:00", "10:00", 1)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := NewTimeSlot(time.Monday, "10:00", "11:00", 0)
		assert.Error(t, err)
	})
}

func TestTimeSlotCapacity(t *testing.T) {
	slot := tuesdaySlot(t)
	assert.True(t, slot.HasCapacity(0))
	assert.True(t, slot.HasCapacity(1))
	assert.False(t, slot.HasCapacity(2))
}

func TestNewBooking(t *testing.T) {
	t.Run("reserves a matching future date", func(t *testing.T) {
		slot := tuesdaySlot(t)
		date := nextWeekday(time.Tuesday)

		b, err := NewBooking(10, 20, slot, date)
		require.NoError(t, err)
		assert.Equal(t, uint(10), b.QuoteID())
		assert.Equal(t, uint(20), b.GetOwnerID())
		assert.Equal(t, slot.ID(), b.SlotID())
		assert.Equal(t, date, b.Date())
		assert.False(t, b.IsConfirmed())
	})

	t.Run("refuses a date on the wrong weekday", func(t *testing.T) {
		slot := tuesdaySlot(t)
		_, err := NewBooking(10, 20, slot, nextWeekday(time.Wednesday))
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("refuses an inactive slot", func(t *testing.T) {
		slot := tuesdaySlot(t)
		slot.Deactivate()
		_, err := NewBooking(10, 20, slot, nextWeekday(time.Tuesday))
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("refuses a past date", func(t *testing.T) {
		slot := tuesdaySlot(t)
		past := nextWeekday(time.Tuesday).AddDate(0, 0, -14)
		_, err := NewBooking(10, 20, slot, past)
		assert.ErrorIs(t, err, ErrDateInPast)
	})
}

func TestBuildAvailability(t *testing.T) {
	slot := tuesdaySlot(t)
	from := nextWeekday(time.Tuesday)

	t.Run("expands occurrences over the range", func(t *testing.T) {
		out := BuildAvailability([]*TimeSlot{slot}, from, 14, nil)
		require.Len(t, out, 2)
		assert.Equal(t, from, out[0].Date)
		assert.Equal(t, from.AddDate(0, 0, 7), out[1].Date)
		assert.Equal(t, 2, out[0].Remaining)
		assert.Equal(t, "10:00", out[0].StartTime)
	})

	t.Run("subtracts booked counts and drops full occurrences", func(t *testing.T) {
		counts := map[uint]map[time.Time]int{
			slot.ID(): {
				from:                  1,
				from.AddDate(0, 0, 7): 2,
			},
		}
		out := BuildAvailability([]*TimeSlot{slot}, from, 14, counts)
		require.Len(t, out, 1)
		assert.Equal(t, from, out[0].Date)
		assert.Equal(t, 1, out[0].Remaining)
	})

	t.Run("skips inactive slots", func(t *testing.T) {
		slot.Deactivate()
		out := BuildAvailability([]*TimeSlot{slot}, from, 14, nil)
		assert.Empty(t, out)
		slot.Activate()
	})
}
