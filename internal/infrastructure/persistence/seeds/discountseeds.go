package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/id"
)

//go:embed discounts.yaml
var discountsYAML []byte

type discountSeed struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Value       int    `yaml:"value"`
	UsageLimit  int    `yaml:"usage_limit"`
	PerUserOnce bool   `yaml:"per_user_once"`
}

type discountSeedFile struct {
	Discounts []discountSeed `yaml:"discounts"`
}

// SeedDiscounts inserts the launch promotional codes. Codes that already
// exist are left untouched.
func SeedDiscounts(db *gorm.DB) error {
	var file discountSeedFile
	if err := yaml.Unmarshal(discountsYAML, &file); err != nil {
		return fmt.Errorf("failed to parse discount seeds: %w", err)
	}

	for _, seed := range file.Discounts {
		sid, err := id.GenerateWithPrefix(id.PrefixDiscount, id.DefaultLength)
		if err != nil {
			return fmt.Errorf("failed to generate discount sid: %w", err)
		}
		discount := models.DiscountModel{
			SID:         sid,
			Code:        seed.Code,
			Description: seed.Description,
			Type:        seed.Type,
			Value:       seed.Value,
			UsageLimit:  seed.UsageLimit,
			PerUserOnce: seed.PerUserOnce,
			Active:      true,
		}
		if err := db.FirstOrCreate(&discount, models.DiscountModel{
			Code: seed.Code,
		}).Error; err != nil {
			return fmt.Errorf("failed to seed discount %s: %w", seed.Code, err)
		}
	}

	return nil
}

// SeedAll runs every seeder.
func SeedAll(db *gorm.DB) error {
	if err := SeedTimeSlots(db); err != nil {
		return err
	}
	return SeedDiscounts(db)
}
