package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func TestToggleTheme(t *testing.T) {
	s := NewSettingsStore()

	assert.Equal(t, domain.ThemeLight, s.Settings().Theme)
	assert.Equal(t, domain.ThemeDark, s.ToggleTheme())
	assert.Equal(t, domain.ThemeLight, s.ToggleTheme())
}

func TestUpdatePreferencesMergesPartial(t *testing.T) {
	s := NewSettingsStore()

	off := false
	prefs := s.UpdatePreferences(PreferencesPatch{Notifications: &off})
	assert.False(t, prefs.Notifications)
	assert.True(t, prefs.AutoRefresh, "untouched fields preserved")
	assert.Equal(t, "en", prefs.Language)

	lang := "de"
	prefs = s.UpdatePreferences(PreferencesPatch{Language: &lang})
	assert.False(t, prefs.Notifications)
	assert.Equal(t, "de", prefs.Language)
}
