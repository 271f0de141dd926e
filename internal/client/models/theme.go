package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nvxprofile/internal/common"
)

// ThemeMode is the persisted appearance preference. It is device-wide,
// not tied to the logged-in user.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// DefaultTheme is used when nothing has been stored yet.
const DefaultTheme = ThemeLight

func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// ParseThemeMode accepts a mode name in any case.
func ParseThemeMode(s string) (ThemeMode, error) {
	m := ThemeMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (want light, dark or system)", common.ErrInvalidTheme, s)
	}
	return m, nil
}
