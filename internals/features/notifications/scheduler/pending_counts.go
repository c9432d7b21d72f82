package scheduler

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/constants"
	questionModel "weonamission_backend/internals/features/community/questions/model"
	documentModel "weonamission_backend/internals/features/trips/documents/model"
	memoryModel "weonamission_backend/internals/features/trips/memories/model"
)

// PendingCounts is the per-church snapshot shown on the admin dashboard.
type PendingCounts struct {
	Documents   int64     `json:"documents"`
	Memories    int64     `json:"memories"`
	Questions   int64     `json:"questions"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

var (
	countsMu    sync.RWMutex
	countsCache = map[uuid.UUID]PendingCounts{}
)

// Snapshot returns the cached counts for one church. A zero value (not an
// error) is returned when the refresher has not populated the church yet.
func Snapshot(churchID uuid.UUID) PendingCounts {
	countsMu.RLock()
	defer countsMu.RUnlock()
	return countsCache[churchID]
}

// StartPendingCountsRefresher polls moderation queues on a fixed interval.
// A failed refresh resets the cache to zero and retries on the next tick.
func StartPendingCountsRefresher(db *gorm.DB) {
	interval := 60 * time.Second
	if val := os.Getenv("NOTIF_REFRESH_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			interval = time.Duration(parsed) * time.Second
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		refreshPendingCounts(db)
		for range ticker.C {
			refreshPendingCounts(db)
		}
	}()
}

type churchCount struct {
	ChurchID uuid.UUID `gorm:"column:church_id"`
	Total    int64     `gorm:"column:total"`
}

func refreshPendingCounts(db *gorm.DB) {
	now := time.Now().UTC()
	next := map[uuid.UUID]PendingCounts{}

	var docs []churchCount
	if err := db.Model(&documentModel.DocumentModel{}).
		Select("document_church_id AS church_id, COUNT(*) AS total").
		Where("document_status = ?", constants.ModerationPending).
		Group("document_church_id").
		Scan(&docs).Error; err != nil {
		resetCounts(err)
		return
	}
	for _, row := range docs {
		pc := next[row.ChurchID]
		pc.Documents = row.Total
		next[row.ChurchID] = pc
	}

	var mems []churchCount
	if err := db.Model(&memoryModel.TripMemoryModel{}).
		Select("memory_church_id AS church_id, COUNT(*) AS total").
		Where("memory_status = ?", constants.ModerationPending).
		Group("memory_church_id").
		Scan(&mems).Error; err != nil {
		resetCounts(err)
		return
	}
	for _, row := range mems {
		pc := next[row.ChurchID]
		pc.Memories = row.Total
		next[row.ChurchID] = pc
	}

	var questions []churchCount
	if err := db.Model(&questionModel.UserQuestionModel{}).
		Select("question_church_id AS church_id, COUNT(*) AS total").
		Where("question_status IN ?", []string{
			questionModel.QuestionStatusSubmitted,
			questionModel.QuestionStatusPending,
		}).
		Group("question_church_id").
		Scan(&questions).Error; err != nil {
		resetCounts(err)
		return
	}
	for _, row := range questions {
		pc := next[row.ChurchID]
		pc.Questions = row.Total
		next[row.ChurchID] = pc
	}

	for id, pc := range next {
		pc.RefreshedAt = now
		next[id] = pc
	}

	countsMu.Lock()
	countsCache = next
	countsMu.Unlock()
}

func resetCounts(err error) {
	log.Printf("[WARN] pending counts refresh failed, resetting: %v", err)
	countsMu.Lock()
	countsCache = map[uuid.UUID]PendingCounts{}
	countsMu.Unlock()
}
