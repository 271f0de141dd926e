package models

// Settings are the settings-screen toggles. They live in memory only and
// start from DefaultSettings every time the screen is opened.
type Settings struct {
	Notifications bool
	DataSharing   bool
}

func DefaultSettings() Settings {
	return Settings{Notifications: true, DataSharing: false}
}

// SettingsItem is one row of the settings screen.
type SettingsItem struct {
	Label       string
	Description string
	// Command is the REPL command bound to the row, empty for static rows.
	Command string
}

type SettingsSection struct {
	Title string
	Items []SettingsItem
}
