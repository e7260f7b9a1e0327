package database

import (
	"fmt"
	"time"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/repository"
	"github.com/evandrarf/lingua-level-be/internal/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DemoLearnerID = "demo-learner"

type demoActivity struct {
	Module          string
	Accuracy        float64
	DurationSeconds float64
	DaysAgo         int
}

// demoHistory gives the demo learner a B1-ish profile with a weak reading module.
var demoHistory = []demoActivity{
	{"pronunciation", 78, 0, 1}, {"pronunciation", 82, 0, 2}, {"pronunciation", 80, 0, 4},
	{"pronunciation", 76, 0, 6}, {"pronunciation", 84, 0, 9},
	{"listening", 77, 0, 1}, {"listening", 81, 0, 3}, {"listening", 79, 0, 8},
	{"reading", 58, 420, 2}, {"reading", 62, 390, 5}, {"reading", 55, 480, 11},
	{"writing", 74, 0, 3}, {"writing", 79, 0, 7},
	// Outside the default 30 day window.
	{"listening", 40, 0, 45},
}

var demoWords = []string{
	"market", "harbor", "journey", "weather", "kitchen", "borrow", "neighbor",
	"library", "appointment", "schedule", "receipt", "luggage", "direction",
	"invitation", "celebrate", "recipe", "vegetable", "medicine", "ticket", "platform",
}

// SeedDemoLearner inserts a small practice history for DemoLearnerID unless
// that learner already has activity records.
func SeedDemoLearner(db *gorm.DB, log *logrus.Logger) error {
	count, err := repository.NewLearnerRepository(db).CountActivities(nil, DemoLearnerID)
	if err != nil {
		return fmt.Errorf("failed to check demo learner: %w", err)
	}
	if count > 0 {
		log.Info("Demo learner already seeded, skipping...")
		return nil
	}

	now := time.Now()
	records := make([]entity.ActivityRecord, 0, len(demoHistory))
	for _, a := range demoHistory {
		records = append(records, entity.ActivityRecord{
			RecordID:        uuid.NewString(),
			LearnerID:       DemoLearnerID,
			Module:          a.Module,
			Accuracy:        a.Accuracy,
			DurationSeconds: a.DurationSeconds,
			RecordedAt:      now.AddDate(0, 0, -a.DaysAgo),
		})
	}

	words := make([]entity.WordbookEntry, 0, len(demoWords))
	for i, w := range demoWords {
		words = append(words, entity.WordbookEntry{
			LearnerID: DemoLearnerID,
			Word:      w,
			Mastered:  i%4 != 3,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to seed activity records: %w", err)
		}
		if err := tx.Create(&words).Error; err != nil {
			return fmt.Errorf("failed to seed wordbook: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"records": len(records),
		"words":   len(words),
	}).Info("Seeded demo learner")
	return nil
}
