// Package storage provides the durable key-value slot the workout log is
// mirrored to. The slot is last-writer-wins: two instances writing the same
// key overwrite each other without notice.
package storage

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

// Store is a key-value capability holding text values.
type Store interface {
	// Get returns the value under key. ok is false when nothing is stored.
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value under key.
	Set(key, value string) error
}

const (
	BackendPreferences = "preferences"
	BackendFile        = "file"
	BackendMemory      = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open builds the store for a backend name. prefs is only used by the
// preferences backend and dataDir only by the file backend.
func Open(backend, dataDir string, prefs fyne.Preferences) (Store, error) {
	switch backend {
	case BackendPreferences, "":
		if prefs == nil {
			return nil, errors.New("preferences backend requires an application")
		}
		return NewPreferencesStore(prefs), nil
	case BackendFile:
		return NewFileStore(dataDir)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
