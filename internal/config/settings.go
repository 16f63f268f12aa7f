package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage    = "app_language"
	KeySampleText  = "preview_sample_text"
	KeyPreviewSize = "preview_text_size"
)

// Default values
const (
	DefaultLanguage    = "fr"
	DefaultSampleText  = "Aperçu : Le petit chat est mignon."
	DefaultPreviewSize = 24
)

// Preview size bounds, in points
const (
	MinPreviewSize = 12
	MaxPreviewSize = 72
)

// Settings manages the persisted UI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes fall back to the default.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSampleText returns the sentence rendered in every preview card
func (s *Settings) GetSampleText() string {
	text := s.app.Preferences().String(KeySampleText)
	if strings.TrimSpace(text) == "" {
		return DefaultSampleText
	}
	return text
}

// SetSampleText sets the preview sentence; blank restores the default
func (s *Settings) SetSampleText(text string) {
	if strings.TrimSpace(text) == "" {
		text = DefaultSampleText
	}
	s.app.Preferences().SetString(KeySampleText, text)
}

// GetPreviewSize returns the preview text size in points
func (s *Settings) GetPreviewSize() float32 {
	size := s.app.Preferences().IntWithFallback(KeyPreviewSize, DefaultPreviewSize)
	return float32(clampPreviewSize(size))
}

// SetPreviewSize sets the preview text size, clamped to the allowed range
func (s *Settings) SetPreviewSize(size int) {
	s.app.Preferences().SetInt(KeyPreviewSize, clampPreviewSize(size))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"fr": "Français",
		"en": "English",
	}
}

func clampPreviewSize(size int) int {
	if size < MinPreviewSize {
		return MinPreviewSize
	}
	if size > MaxPreviewSize {
		return MaxPreviewSize
	}
	return size
}
