package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}

	settings.SetLanguage("xx")
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Unknown language should fall back to %s, got %s", DefaultLanguage, lang)
	}
}

func TestSampleText(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if text := settings.GetSampleText(); text != DefaultSampleText {
		t.Errorf("Expected default sample %q, got %q", DefaultSampleText, text)
	}

	settings.SetSampleText("Portez ce vieux whisky au juge blond qui fume")
	if text := settings.GetSampleText(); text != "Portez ce vieux whisky au juge blond qui fume" {
		t.Errorf("Unexpected sample text %q", text)
	}

	settings.SetSampleText("   ")
	if text := settings.GetSampleText(); text != DefaultSampleText {
		t.Errorf("Blank sample should restore default, got %q", text)
	}
}

func TestPreviewSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetPreviewSize(); size != DefaultPreviewSize {
		t.Errorf("Expected default preview size %d, got %v", DefaultPreviewSize, size)
	}

	settings.SetPreviewSize(36)
	if size := settings.GetPreviewSize(); size != 36 {
		t.Errorf("Expected preview size 36, got %v", size)
	}

	settings.SetPreviewSize(4)
	if size := settings.GetPreviewSize(); size != MinPreviewSize {
		t.Errorf("Preview size should be clamped to %d, got %v", MinPreviewSize, size)
	}

	settings.SetPreviewSize(500)
	if size := settings.GetPreviewSize(); size != MaxPreviewSize {
		t.Errorf("Preview size should be clamped to %d, got %v", MaxPreviewSize, size)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"fr", "en"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
	if len(options) != 2 {
		t.Errorf("Expected 2 language options, got %d", len(options))
	}
}
