package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Keddaaa/Aurane/internal/config"
)

// SettingsDialog edits the preview and language preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	sampleEntry    *widget.Entry
	sizeSlider     *widget.Slider
	sizeLabel      *widget.Label
	languageSelect *widget.Select

	// display name -> language code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs
// after the preferences have been written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.sampleEntry = widget.NewEntry()
	sd.sampleEntry.SetPlaceHolder(config.DefaultSampleText)

	sd.sizeLabel = widget.NewLabel("")
	sd.sizeSlider = widget.NewSlider(config.MinPreviewSize, config.MaxPreviewSize)
	sd.sizeSlider.Step = 1
	sd.sizeSlider.OnChanged = func(v float64) {
		sd.sizeLabel.SetText(fmt.Sprintf(previewSizeFormat, v))
	}
	sizeRow := container.NewBorder(nil, nil, nil, sd.sizeLabel, sd.sizeSlider)

	names := make([]string, 0)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyPreview)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeySampleText)+":"),
		sd.sampleEntry,

		widget.NewLabel(text(KeyPreviewSize)+":"),
		sizeRow,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.sampleEntry.SetText(sd.settings.GetSampleText())
	sd.sizeSlider.SetValue(float64(sd.settings.GetPreviewSize()))
	sd.sizeLabel.SetText(fmt.Sprintf(previewSizeFormat, sd.sizeSlider.Value))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the form values to the preferences
func (sd *SettingsDialog) save() {
	sd.settings.SetSampleText(sd.sampleEntry.Text)
	sd.settings.SetPreviewSize(int(sd.sizeSlider.Value))

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
