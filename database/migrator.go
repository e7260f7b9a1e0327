package database

import (
	"github.com/evandrarf/lingua-level-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.ActivityRecord{},
		&entity.WordbookEntry{},
		&entity.ProficiencySnapshot{},
	)
}
