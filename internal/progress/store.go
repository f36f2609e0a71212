package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"
)

// StorageKey is the single durable key owned by this package. No other
// subsystem reads or writes it.
const StorageKey = "learnflow_video_progress"

// completedThreshold: a video counts as completed once this much of it has
// been watched, even without an explicit MarkCompleted.
const completedThreshold = 90.0

const maxAge = 30 * 24 * time.Hour

// Record is the persisted watch state for one video.
type Record struct {
	VideoID     string  `json:"video_id"`
	CurrentTime float64 `json:"current_time"` // seconds
	Duration    float64 `json:"duration"`     // seconds
	LastWatched int64   `json:"last_watched"` // unix millis
	Completed   bool    `json:"completed"`
}

// Store keeps per-video watch progress in one JSON mapping under StorageKey.
// Storage failures are non-fatal: reads degrade to empty, writes are dropped,
// both logged. Watch progress is a convenience cache; losing it must never
// block playback.
type Store struct {
	kv  KV
	now func() time.Time
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// NewStoreWithClock is for tests that need a deterministic clock.
func NewStoreWithClock(kv KV, now func() time.Time) *Store {
	return &Store{kv: kv, now: now}
}

func (s *Store) getAll() map[string]Record {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		log.Printf("progress: load failed: %v", err)
		return map[string]Record{}
	}
	if !ok || raw == "" {
		return map[string]Record{}
	}
	var m map[string]Record
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		log.Printf("progress: corrupt record map: %v", err)
		return map[string]Record{}
	}
	return m
}

func (s *Store) putAll(m map[string]Record) {
	buf, err := json.Marshal(m)
	if err != nil {
		log.Printf("progress: marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(StorageKey, string(buf)); err != nil {
		log.Printf("progress: save failed: %v", err)
	}
}

// GetAllProgress returns every stored record keyed by video ID.
func (s *Store) GetAllProgress() map[string]Record {
	return s.getAll()
}

// GetProgress returns the record for a video, if any.
func (s *Store) GetProgress(videoID string) (Record, bool) {
	r, ok := s.getAll()[videoID]
	return r, ok
}

// SaveProgress upserts a record, stamping LastWatched. The store trusts its
// caller on currentTime vs duration. A previously set completed flag is never
// cleared here; only RemoveProgress erases it.
func (s *Store) SaveProgress(videoID string, currentTime, duration float64, completed bool) {
	all := s.getAll()
	if prev, ok := all[videoID]; ok && prev.Completed {
		completed = true
	}
	all[videoID] = Record{
		VideoID:     videoID,
		CurrentTime: currentTime,
		Duration:    duration,
		LastWatched: s.now().UnixMilli(),
		Completed:   completed,
	}
	s.putAll(all)
}

// MarkCompleted pins the record to fully watched. This is the only operation
// that sets Completed directly.
func (s *Store) MarkCompleted(videoID string, duration float64) {
	all := s.getAll()
	all[videoID] = Record{
		VideoID:     videoID,
		CurrentTime: duration,
		Duration:    duration,
		LastWatched: s.now().UnixMilli(),
		Completed:   true,
	}
	s.putAll(all)
}

// RemoveProgress deletes a record entirely ("start over").
func (s *Store) RemoveProgress(videoID string) {
	all := s.getAll()
	if _, ok := all[videoID]; !ok {
		return
	}
	delete(all, videoID)
	s.putAll(all)
}

// GetCompletionPercentage reports watched percentage in [0,100]. Zero when no
// record exists or duration is zero.
func (s *Store) GetCompletionPercentage(videoID string) float64 {
	r, ok := s.GetProgress(videoID)
	if !ok || r.Duration == 0 {
		return 0
	}
	return math.Min(r.CurrentTime/r.Duration*100, 100)
}

// IsCompleted reports completion from either the explicit flag or the raw
// time data crossing the threshold. The redundancy is deliberate: resuming a
// nearly-finished video still reports completed even if MarkCompleted was
// never called.
func (s *Store) IsCompleted(videoID string) bool {
	r, ok := s.GetProgress(videoID)
	if !ok {
		return false
	}
	return r.Completed || s.GetCompletionPercentage(videoID) >= completedThreshold
}

// CleanupOldProgress drops every record not watched within the last 30 days.
// Periodic maintenance; never triggered by the store itself.
func (s *Store) CleanupOldProgress() int {
	all := s.getAll()
	cutoff := s.now().Add(-maxAge).UnixMilli()
	removed := 0
	for id, r := range all {
		if r.LastWatched < cutoff {
			delete(all, id)
			removed++
		}
	}
	if removed > 0 {
		s.putAll(all)
	}
	return removed
}

// FormatTime renders seconds as M:SS for display.
func FormatTime(seconds float64) string {
	m := int(seconds) / 60
	s := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
