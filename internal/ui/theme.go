package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hbjs97/hbgen/internal/storage"
)

// KeyTheme은 테마 선택의 저장소 키다.
const KeyTheme = "harbourTheme"

// Theme은 상태 표시줄과 미리보기의 색상 테마다.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// palette는 상태 메시지 레벨별 색상이다.
type palette struct {
	success, warning, err, secondary lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark:  {success: "#4caf50", warning: "#ffb300", err: "#f44336", secondary: "#b0b0b0"},
	ThemeLight: {success: "#2e7d32", warning: "#ef6c00", err: "#c62828", secondary: "#616161"},
}

// ParseTheme은 테마 이름을 해석한다. 알 수 없는 값은 dark다.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle은 반대 테마를 반환한다.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Label은 "Dark" / "Light" 표시 이름이다.
func (t Theme) Label() string {
	if t == ThemeLight {
		return "Light"
	}
	return "Dark"
}

// LoadTheme은 저장된 테마를 읽는다. 없으면 fallback을 사용한다.
func LoadTheme(kv storage.Store, fallback Theme) Theme {
	v, ok := kv.Get(KeyTheme)
	if !ok {
		return fallback
	}
	return ParseTheme(v)
}

// SaveTheme은 테마를 저장한다.
func SaveTheme(kv storage.Store, t Theme) error {
	return kv.Set(KeyTheme, string(t))
}
