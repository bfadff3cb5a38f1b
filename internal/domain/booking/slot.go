package booking

import (
	"fmt"
	"time"
)

// TimeSlot is a recurring weekly window in which the agency takes
// consultation calls. Times are wall-clock strings in the business timezone.
type TimeSlot struct {
	id          uint
	weekday     time.Weekday
	startTime   string
	endTime     string
	maxBookings int
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTimeSlot creates an active weekly slot. Start and end are "HH:MM".
func NewTimeSlot(weekday time.Weekday, startTime, endTime string, maxBookings int) (*TimeSlot, error) {
	start, err := parseWallClock(startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := parseWallClock(endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("slot must end after it starts")
	}
	if maxBookings <= 0 {
		return nil, fmt.Errorf("max bookings must be positive")
	}

	now := time.Now().UTC()
	return &TimeSlot{
		weekday:     weekday,
		startTime:   startTime,
		endTime:     endTime,
		maxBookings: maxBookings,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTimeSlot rebuilds a slot from persistence.
func ReconstructTimeSlot(slotID uint, weekday time.Weekday, startTime, endTime string, maxBookings int, active bool, createdAt, updatedAt time.Time) (*TimeSlot, error) {
	if slotID == 0 {
		return nil, fmt.Errorf("time slot ID cannot be zero")
	}
	return &TimeSlot{
		id:          slotID,
		weekday:     weekday,
		startTime:   startTime,
		endTime:     endTime,
		maxBookings: maxBookings,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *TimeSlot) ID() uint              { return s.id }
func (s *TimeSlot) Weekday() time.Weekday { return s.weekday }
func (s *TimeSlot) StartTime() string     { return s.startTime }
func (s *TimeSlot) EndTime() string       { return s.endTime }
func (s *TimeSlot) MaxBookings() int      { return s.maxBookings }
func (s *TimeSlot) IsActive() bool        { return s.active }
func (s *TimeSlot) CreatedAt() time.Time  { return s.createdAt }
func (s *TimeSlot) UpdatedAt() time.Time  { return s.updatedAt }

// SetID assigns the persistence identifier exactly once.
func (s *TimeSlot) SetID(slotID uint) error {
	if s.id != 0 {
		return fmt.Errorf("time slot ID is already set")
	}
	if slotID == 0 {
		return fmt.Errorf("time slot ID cannot be zero")
	}
	s.id = slotID
	return nil
}

// HasCapacity reports whether another booking fits given the current count.
func (s *TimeSlot) HasCapacity(bookedCount int) bool {
	return bookedCount < s.maxBookings
}

// MatchesDate reports whether the slot recurs on the given business date.
func (s *TimeSlot) MatchesDate(date time.Time) bool {
	return s.active && date.Weekday() == s.weekday
}

// Deactivate hides the slot from availability without touching past bookings.
func (s *TimeSlot) Deactivate() {
	s.active = false
	s.updatedAt = time.Now().UTC()
}

// Activate makes the slot bookable again.
func (s *TimeSlot) Activate() {
	s.active = true
	s.updatedAt = time.Now().UTC()
}

// UpdateCapacity changes the per-occurrence booking cap.
func (s *TimeSlot) UpdateCapacity(maxBookings int) error {
	if maxBookings <= 0 {
		return fmt.Errorf("max bookings must be positive")
	}
	s.maxBookings = maxBookings
	s.updatedAt = time.Now().UTC()
	return nil
}

func parseWallClock(v string) (time.Time, error) {
	return time.Parse("15:04", v)
}
