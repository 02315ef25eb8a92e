// ABOUTME: Key/value settings storage, the backend stand-in for browser
// ABOUTME: localStorage (theme selection, accent color).

package store

import "database/sql"

// Setting keys used by the admin console.
const (
	SettingTheme  = "app-theme"
	SettingAccent = "app-accent"
)

// Theme values accepted for SettingTheme.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// GetSetting reads one setting; missing keys yield the fallback.
func (s *Store) GetSetting(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting writes one setting.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}
