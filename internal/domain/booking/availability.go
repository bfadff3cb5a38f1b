package booking

import "time"

// SlotAvailability is one bookable occurrence offered to the customer.
type SlotAvailability struct {
	SlotID    uint         `json:"slot_id"`
	Date      time.Time    `json:"date"`
	Weekday   time.Weekday `json:"weekday"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Remaining int          `json:"remaining"`
}

// BuildAvailability expands the active slots over a date range, subtracting
// the existing booking counts. bookedCounts is keyed by slot id and date.
func BuildAvailability(slots []*TimeSlot, from time.Time, days int, bookedCounts map[uint]map[time.Time]int) []SlotAvailability {
	var out []SlotAvailability
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		for _, slot := range slots {
			if !slot.MatchesDate(date) {
				continue
			}
			booked := bookedCounts[slot.ID()][date]
			if !slot.HasCapacity(booked) {
				continue
			}
			out = append(out, SlotAvailability{
				SlotID:    slot.ID(),
				Date:      date,
				Weekday:   slot.Weekday(),
				StartTime: slot.StartTime(),
				EndTime:   slot.EndTime(),
				Remaining: slot.MaxBookings() - booked,
			})
		}
	}
	return out
}
