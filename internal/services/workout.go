package services

import (
	"fmt"
	"sync"

	"workout-logger/internal/logger"
	"workout-logger/internal/models"
	"workout-logger/internal/storage"
)

// DefaultStorageKey is the slot the workout log is mirrored to.
const DefaultStorageKey = "workouts"

// WorkoutService owns the workout log and mirrors it to a durable store.
// Every mutation writes a full snapshot under the key; the store is read only
// once, by Load.
type WorkoutService struct {
	store  storage.Store
	key    string
	logger logger.Logger

	mu          sync.RWMutex
	entries     []models.Entry
	loaded      bool
	dirty       bool
	persistErr  error
	recoveredAt string
}

func NewWorkoutService(store storage.Store, key string, log logger.Logger) *WorkoutService {
	if key == "" {
		key = DefaultStorageKey
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &WorkoutService{
		store:   store,
		key:     key,
		logger:  log.With("WorkoutService"),
		entries: make([]models.Entry, 0),
	}
}

// Load adopts the stored log. A missing value starts an empty log. An
// unreadable or malformed value also starts an empty log: the raw value is
// copied to "<key>.corrupt" so the next snapshot does not destroy it, and a
// warning is logged. Load never writes the main key.
func (s *WorkoutService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.entries = make([]models.Entry, 0)

	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.logger.Error("reading stored workouts failed, starting empty", err, map[string]interface{}{
			"key": s.key,
		})
		return
	}
	if !ok {
		s.logger.Debug("no stored workouts", map[string]interface{}{"key": s.key})
		return
	}

	entries, err := models.DecodeLog(raw)
	if err != nil {
		s.preserveCorrupt(raw, err)
		return
	}

	s.entries = entries
	s.logger.Info("workouts loaded", map[string]interface{}{
		"key":     s.key,
		"entries": len(entries),
	})
}

func (s *WorkoutService) preserveCorrupt(raw string, cause error) {
	backup := s.key + ".corrupt"
	fields := map[string]interface{}{
		"key":       s.key,
		"backup":    backup,
		"raw_bytes": len(raw),
		"cause":     cause.Error(),
	}
	if err := s.store.Set(backup, raw); err != nil {
		s.logger.Error("stored workouts are malformed and could not be backed up", err, fields)
		return
	}
	s.recoveredAt = backup
	s.logger.Warning("stored workouts are malformed, starting empty", fields)
}

// Add appends an entry and persists the log.
func (s *WorkoutService) Add(entry models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	s.logger.Debug("entry added", map[string]interface{}{
		"exercise": entry.Exercise,
		"reps":     entry.Reps,
		"weight":   entry.Weight,
		"entries":  len(s.entries),
	})
	return s.persistLocked()
}

// DeleteAt removes the entry at index, keeping the order of the rest.
// It reports false, and writes nothing, when index is out of range.
func (s *WorkoutService) DeleteAt(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return false, nil
	}

	next := make([]models.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:index]...)
	next = append(next, s.entries[index+1:]...)
	s.entries = next

	s.logger.Debug("entry deleted", map[string]interface{}{
		"index":   index,
		"entries": len(s.entries),
	})
	return true, s.persistLocked()
}

// Clear empties the log and persists the empty snapshot.
func (s *WorkoutService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.entries)
	s.entries = make([]models.Entry, 0)
	s.logger.Info("workouts cleared", map[string]interface{}{"removed": removed})
	return s.persistLocked()
}

// persistLocked writes the whole log. A failed write leaves the in-memory log
// as is and marks the service dirty; the error is returned so callers can
// warn the user.
func (s *WorkoutService) persistLocked() error {
	raw, err := models.EncodeLog(s.entries)
	if err == nil {
		err = s.store.Set(s.key, raw)
		if err != nil {
			err = fmt.Errorf("write %q: %w", s.key, err)
		}
	}

	if err != nil {
		s.dirty = true
		s.persistErr = err
		s.logger.Error("persisting workouts failed, continuing in memory", err, map[string]interface{}{
			"entries": len(s.entries),
		})
		return err
	}

	s.dirty = false
	s.persistErr = nil
	return nil
}

// Entries returns a copy of the log.
func (s *WorkoutService) Entries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *WorkoutService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *WorkoutService) TotalVolume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.TotalVolume(s.entries)
}

// Summary derives the render state from the current log.
func (s *WorkoutService) Summary() models.Summary {
	return models.Summarize(s.Entries())
}

// Loaded reports whether Load has run.
func (s *WorkoutService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LastPersistError is the error of the most recent write, or nil if it succeeded.
func (s *WorkoutService) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// RecoveredTo names the backup key written when Load found a malformed value.
func (s *WorkoutService) RecoveredTo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recoveredAt
}

// Shutdown retries the snapshot if the last write failed.
func (s *WorkoutService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		s.logger.Debug("shutdown with log in sync", map[string]interface{}{"entries": len(s.entries)})
		return
	}
	if err := s.persistLocked(); err != nil {
		s.logger.Error("final snapshot failed, unsaved workouts lost", err, nil)
		return
	}
	s.logger.Info("final snapshot written", map[string]interface{}{"entries": len(s.entries)})
}
