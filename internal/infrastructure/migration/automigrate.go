package migration

import (
	"fmt"

	"gorm.io/gorm"

	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/logger"
)

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.QuoteModel{},
		&models.QuoteVersionModel{},
		&models.ContactPreferenceModel{},
		&models.DiscountModel{},
		&models.AppliedDiscountModel{},
		&models.TimeSlotModel{},
		&models.BookedSlotModel{},
		&models.JourneyEventModel{},
		&models.AuditLogModel{},
	}
}

// GormAutoMigrateStrategy syncs the schema straight from the model structs.
// Development only; production environments run versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("running gorm automigrate", "models", len(modelList))
	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
