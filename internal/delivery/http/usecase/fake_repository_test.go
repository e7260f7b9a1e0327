package usecase

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/evandrarf/lingua-level-be/internal/entity"
	"gorm.io/gorm"
)

// memoryRepository is an in-memory LearnerRepository for usecase tests.
type memoryRepository struct {
	mu         sync.Mutex
	activities []entity.ActivityRecord
	wordbook   map[string]entity.WordbookEntry
	snapshots  map[string]entity.ProficiencySnapshot
	err        error
	saves      int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		wordbook:  map[string]entity.WordbookEntry{},
		snapshots: map[string]entity.ProficiencySnapshot{},
	}
}

func (r *memoryRepository) CreateActivity(_ *gorm.DB, record *entity.ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.activities = append(r.activities, *record)
	return nil
}

func (r *memoryRepository) AggregateActivities(_ *gorm.DB, learnerID string, since time.Time) ([]entity.ModuleAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	byModule := map[string]*entity.ModuleAggregate{}
	for _, a := range r.activities {
		if a.LearnerID != learnerID || a.RecordedAt.Before(since) {
			continue
		}
		agg, ok := byModule[a.Module]
		if !ok {
			agg = &entity.ModuleAggregate{Module: a.Module}
			byModule[a.Module] = agg
		}
		n := float64(agg.Attempts)
		agg.AverageAccuracy = (agg.AverageAccuracy*n + a.Accuracy) / (n + 1)
		agg.AverageDurationSeconds = (agg.AverageDurationSeconds*n + a.DurationSeconds) / (n + 1)
		agg.Attempts++
	}
	rows := make([]entity.ModuleAggregate, 0, len(byModule))
	for _, agg := range byModule {
		rows = append(rows, *agg)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Module < rows[j].Module })
	return rows, nil
}

func (r *memoryRepository) CountActivities(_ *gorm.DB, learnerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.activities {
		if a.LearnerID == learnerID {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepository) UpsertWordbookEntry(_ *gorm.DB, entry *entity.WordbookEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.wordbook[entry.LearnerID+"|"+entry.Word] = *entry
	return nil
}

func (r *memoryRepository) CountMasteredWords(_ *gorm.DB, learnerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, e := range r.wordbook {
		if e.LearnerID == learnerID && e.Mastered {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepository) CreateOrUpdateSnapshot(_ *gorm.DB, snapshot *entity.ProficiencySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	snapshot.UpdatedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.snapshots[snapshot.LearnerID] = *snapshot
	return nil
}

func (r *memoryRepository) FindSnapshotByLearnerID(_ *gorm.DB, learnerID string) (*entity.ProficiencySnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.snapshots[learnerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

var errDatabaseDown = errors.New("database down")
