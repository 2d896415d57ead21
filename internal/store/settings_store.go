package store

import (
	"sync"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// PreferencesPatch carries partial preference updates; nil fields are left
// unchanged.
type PreferencesPatch struct {
	Notifications *bool
	AutoRefresh   *bool
	Language      *string
}

// SettingsStore owns the UI theme and user preferences.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsStore constructs the store with default settings.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		settings: domain.Settings{
			Theme: domain.ThemeLight,
			Preferences: domain.Preferences{
				Notifications: true,
				AutoRefresh:   true,
				Language:      "en",
			},
		},
	}
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *SettingsStore) ToggleTheme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Theme == domain.ThemeLight {
		s.settings.Theme = domain.ThemeDark
	} else {
		s.settings.Theme = domain.ThemeLight
	}
	return s.settings.Theme
}

// UpdatePreferences merges the supplied fields and returns the result.
func (s *SettingsStore) UpdatePreferences(patch PreferencesPatch) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Notifications != nil {
		s.settings.Preferences.Notifications = *patch.Notifications
	}
	if patch.AutoRefresh != nil {
		s.settings.Preferences.AutoRefresh = *patch.AutoRefresh
	}
	if patch.Language != nil {
		s.settings.Preferences.Language = *patch.Language
	}
	return s.settings.Preferences
}

// Settings returns the current settings snapshot.
func (s *SettingsStore) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
