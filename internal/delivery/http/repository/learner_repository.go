package repository

import (
	"time"

	"github.com/evandrarf/lingua-level-be/internal/entity"
	"gorm.io/gorm"
)

type (
	LearnerRepository interface {
		// Activity operations
		CreateActivity(db *gorm.DB, record *entity.ActivityRecord) error
		AggregateActivities(db *gorm.DB, learnerID string, since time.Time) ([]entity.ModuleAggregate, error)
		CountActivities(db *gorm.DB, learnerID string) (int64, error)

		// Wordbook operations
		UpsertWordbookEntry(db *gorm.DB, entry *entity.WordbookEntry) error
		CountMasteredWords(db *gorm.DB, learnerID string) (int64, error)

		// Proficiency snapshot operations
		CreateOrUpdateSnapshot(db *gorm.DB, snapshot *entity.ProficiencySnapshot) error
		FindSnapshotByLearnerID(db *gorm.DB, learnerID string) (*entity.ProficiencySnapshot, error)
	}

	learnerRepository struct {
		db *gorm.DB
	}
)

func NewLearnerRepository(db *gorm.DB) LearnerRepository {
	return &learnerRepository{db: db}
}

func (r *learnerRepository) CreateActivity(db *gorm.DB, record *entity.ActivityRecord) error {
	if db == nil {
		db = r.db
	}
	return db.Create(record).Error
}

// AggregateActivities groups the learner's records since the given time by module.
func (r *learnerRepository) AggregateActivities(db *gorm.DB, learnerID string, since time.Time) ([]entity.ModuleAggregate, error) {
	if db == nil {
		db = r.db
	}
	var rows []entity.ModuleAggregate
	err := db.Model(&entity.ActivityRecord{}).
		Select("module, COUNT(*) AS attempts, COALESCE(AVG(accuracy), 0) AS average_accuracy, COALESCE(AVG(duration_seconds), 0) AS average_duration_seconds").
		Where("learner_id = ? AND recorded_at >= ?", learnerID, since).
		Group("module").
		Order("module").
		Scan(&rows).Error
	return rows, err
}

func (r *learnerRepository) CountActivities(db *gorm.DB, learnerID string) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.ActivityRecord{}).Where("learner_id = ?", learnerID).Count(&count).Error
	return count, err
}

func (r *learnerRepository) UpsertWordbookEntry(db *gorm.DB, entry *entity.WordbookEntry) error {
	if db == nil {
		db = r.db
	}
	// A map keeps mastered=false from being skipped as a zero value.
	return db.Where("learner_id = ? AND word = ?", entry.LearnerID, entry.Word).
		Assign(map[string]any{"mastered": entry.Mastered}).
		FirstOrCreate(entry).Error
}

func (r *learnerRepository) CountMasteredWords(db *gorm.DB, learnerID string) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.WordbookEntry{}).
		Where("learner_id = ? AND mastered = ?", learnerID, true).
		Count(&count).Error
	return count, err
}

func (r *learnerRepository) CreateOrUpdateSnapshot(db *gorm.DB, snapshot *entity.ProficiencySnapshot) error {
	if db == nil {
		db = r.db
	}
	return db.Where("learner_id = ?", snapshot.LearnerID).Assign(snapshot).FirstOrCreate(snapshot).Error
}

func (r *learnerRepository) FindSnapshotByLearnerID(db *gorm.DB, learnerID string) (*entity.ProficiencySnapshot, error) {
	if db == nil {
		db = r.db
	}
	var snapshot entity.ProficiencySnapshot
	err := db.Where("learner_id = ?", learnerID).First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
