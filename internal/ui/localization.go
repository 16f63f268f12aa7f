package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySubtitle         = "subtitle"
	KeySearchHint       = "search_hint"
	KeySearch           = "search"
	KeyLoading          = "loading"
	KeyNoResults        = "no_results"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySampleText       = "sample_text"
	KeyPreviewSize      = "preview_size"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyCopyCSS          = "copy_css"
	KeyCSSCopied        = "css_copied"
	KeyOpenFont         = "open_font"
	KeyErrorOpeningFont = "error_opening_font"
	KeyInterface        = "interface"
	KeyPreview          = "preview"
)

const fallbackLanguage = "fr"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: fallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[fallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"fr": "Français",
		"en": "English",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "Aurane",
		KeySubtitle:         "Recherche et installe des polices en un clic.",
		KeySearchHint:       "Rechercher une police...",
		KeySearch:           "Rechercher",
		KeyLoading:          "Chargement...",
		KeyNoResults:        "Aucune police trouvée. Essayez autre chose.",
		KeySettings:         "Paramètres",
		KeyFile:             "Fichier",
		KeyLanguage:         "Langue",
		KeySampleText:       "Texte d'aperçu",
		KeyPreviewSize:      "Taille de l'aperçu",
		KeySave:             "Enregistrer",
		KeyCancel:           "Annuler",
		KeySettingsSaved:    "Paramètres enregistrés.",
		KeyCopyCSS:          "Copier le CSS",
		KeyCSSCopied:        "Règle @font-face copiée.",
		KeyOpenFont:         "Ouvrir",
		KeyErrorOpeningFont: "Impossible d'ouvrir la police",
		KeyInterface:        "Interface",
		KeyPreview:          "Aperçu",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Aurane",
		KeySubtitle:         "Search and install fonts in one click.",
		KeySearchHint:       "Search for a font...",
		KeySearch:           "Search",
		KeyLoading:          "Loading...",
		KeyNoResults:        "No font found. Try something else.",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySampleText:       "Preview text",
		KeyPreviewSize:      "Preview size",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved.",
		KeyCopyCSS:          "Copy CSS",
		KeyCSSCopied:        "@font-face rule copied.",
		KeyOpenFont:         "Open",
		KeyErrorOpeningFont: "Could not open font",
		KeyInterface:        "Interface",
		KeyPreview:          "Preview",
	}
}
