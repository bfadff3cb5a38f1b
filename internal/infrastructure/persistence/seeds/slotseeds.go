// Package seeds provides default data inserted on first startup.
package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"atelier/internal/infrastructure/persistence/models"
)

//go:embed slots.yaml
var slotsYAML []byte

type slotSeed struct {
	Weekday     int    `yaml:"weekday"`
	StartTime   string `yaml:"start_time"`
	EndTime     string `yaml:"end_time"`
	MaxBookings int    `yaml:"max_bookings"`
}

type slotSeedFile struct {
	Slots []slotSeed `yaml:"slots"`
}

// SeedTimeSlots inserts the default weekly consultation schedule. Slots that
// already exist for the same weekday and start time are left untouched.
func SeedTimeSlots(db *gorm.DB) error {
	var file slotSeedFile
	if err := yaml.Unmarshal(slotsYAML, &file); err != nil {
		return fmt.Errorf("failed to parse slot seeds: %w", err)
	}

	for _, seed := range file.Slots {
		slot := models.TimeSlotModel{
			Weekday:     seed.Weekday,
			StartTime:   seed.StartTime,
			EndTime:     seed.EndTime,
			MaxBookings: seed.MaxBookings,
			Active:      true,
		}
		if err := db.FirstOrCreate(&slot, models.TimeSlotModel{
			Weekday:   seed.Weekday,
			StartTime: seed.StartTime,
		}).Error; err != nil {
			return fmt.Errorf("failed to seed slot %d %s: %w", seed.Weekday, seed.StartTime, err)
		}
	}

	return nil
}
