package storage

// Preferences is the subset of fyne.Preferences the store needs.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
}

// PreferencesStore keeps values in the application's preferences, which
// fyne persists per app ID across restarts.
type PreferencesStore struct {
	prefs Preferences
}

func NewPreferencesStore(prefs Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Get treats an empty string as absent, since preferences cannot tell the two apart.
func (s *PreferencesStore) Get(key string) (string, bool, error) {
	v := s.prefs.String(key)
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *PreferencesStore) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}
