package domain

// Theme enumerates UI themes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences holds per-user UI preferences.
type Preferences struct {
	Notifications bool   `json:"notifications"`
	AutoRefresh   bool   `json:"autoRefresh"`
	Language      string `json:"language"`
}

// Settings aggregates theme and preferences state.
type Settings struct {
	Theme       Theme       `json:"theme"`
	Preferences Preferences `json:"preferences"`
}
