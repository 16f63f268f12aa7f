package ui

import (
	"context"
	"slices"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Keddaaa/Aurane/internal/config"
	"github.com/Keddaaa/Aurane/internal/fontface"
	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/model"
	"github.com/Keddaaa/Aurane/internal/platform"
	"github.com/Keddaaa/Aurane/internal/search"
)

// RootUI represents the main window content
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	app          fyne.App
	searcher     search.Searcher
	registry     *fontface.Registry
	loader       *fontface.Loader
	settings     *config.Settings
	localization *Localization
	openURL      func(string) error

	titleText     *canvas.Text
	subtitleLabel *widget.Label
	queryEntry    *widget.Entry
	searchBtn     *widget.Button
	errorLabel    *widget.Label
	emptyLabel    *widget.Label
	resultsBox    *fyne.Container

	// Owned by the UI goroutine.
	state model.SearchState
	cards []*PreviewCard
}

// NewRootUI creates and initializes the main UI. The font-face registry
// lives as long as the returned view.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, searcher search.Searcher, loader *fontface.Loader) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          logging.WithComponent(ctx, "ui"),
		window:       window,
		app:          app,
		searcher:     searcher,
		registry:     fontface.NewRegistry(),
		loader:       loader,
		settings:     settings,
		localization: localization,
		openURL:      platform.OpenWithDefaultApp,
		state:        model.NewSearchState(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LogoResource)

	searcher.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.render(searcher.State())
	return ui
}

// Registry returns the font-face rules registered by this view
func (ui *RootUI) Registry() *fontface.Registry {
	return ui.registry
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	logo := canvas.NewImageFromResource(LogoResource)
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logo.FillMode = canvas.ImageFillContain

	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), theme.Color(theme.ColorNameForeground))
	ui.titleText.TextSize = TitleSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}

	ui.subtitleLabel = widget.NewLabel(ui.localization.GetText(KeySubtitle))
	ui.subtitleLabel.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, logo, settingsBtn,
		container.NewVBox(ui.titleText, ui.subtitleLabel))

	ui.queryEntry = widget.NewEntry()
	ui.queryEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	// Enter behaves like the button, even while a search is running.
	ui.queryEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	searchRow := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.queryEntry)

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoResults))
	ui.emptyLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.emptyLabel.Importance = widget.LowImportance

	ui.resultsBox = container.NewVBox()

	top := container.NewVBox(header, searchRow, ui.errorLabel)
	center := container.NewVScroll(container.NewVBox(ui.emptyLabel, ui.resultsBox))

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, center))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()
	ui.subtitleLabel.SetText(ui.localization.GetText(KeySubtitle))
	ui.queryEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoResults))
	for _, card := range ui.cards {
		card.RefreshTexts()
	}
	ui.renderControls(ui.state)
}

// onSearchClick starts a search for the entry's text. The backend runs
// off the UI goroutine; state changes come back through onStateUpdate.
func (ui *RootUI) onSearchClick() {
	req, ok := ui.searcher.Begin(ui.queryEntry.Text)
	if !ok {
		return
	}
	go ui.searcher.Complete(ui.ctx, req)
}

func (ui *RootUI) onStateUpdate(state model.SearchState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

func (ui *RootUI) render(state model.SearchState) {
	resultsChanged := !slices.Equal(ui.state.Results, state.Results)
	ui.state = state

	ui.renderControls(state)
	if resultsChanged {
		ui.renderResults(state.Results)
	}

	if state.ShowEmpty() {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

func (ui *RootUI) renderControls(state model.SearchState) {
	if state.Status.IsActive() {
		ui.searchBtn.SetText(ui.localization.GetText(KeyLoading))
		ui.searchBtn.Disable()
	} else {
		ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
		ui.searchBtn.Enable()
	}

	if state.HasError() {
		ui.errorLabel.SetText(state.Error)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorLabel.Hide()
	}
}

// renderResults registers rules for unseen fonts, rebuilds the cards and
// starts loading every font that is not loaded yet.
func (ui *RootUI) renderResults(results []model.Font) {
	ui.registry.Inject(ui.ctx, results)

	sample := ui.settings.GetSampleText()
	size := ui.settings.GetPreviewSize()

	ui.cards = ui.cards[:0]
	objects := make([]fyne.CanvasObject, 0, len(results))
	pending := make(map[string]fontface.Rule)

	for _, font := range results {
		card := NewPreviewCard(font, sample, size, ui.localization)
		card.SetCallbacks(ui.onCopyCSS, ui.onOpenFont)

		rule, ok := ui.registry.Rule(font.Name)
		card.SetActionsEnabled(ok)
		if ok {
			if res, loaded := ui.loader.Resource(rule.Family); loaded {
				card.SetFontResource(res)
			} else {
				pending[rule.Family] = rule
			}
		}

		ui.cards = append(ui.cards, card)
		objects = append(objects, card)
	}

	ui.resultsBox.Objects = objects
	ui.resultsBox.Refresh()

	for _, rule := range pending {
		go ui.loadFont(rule)
	}
}

func (ui *RootUI) loadFont(rule fontface.Rule) {
	res, err := ui.loader.Load(ui.ctx, rule)
	if err != nil {
		logging.FromContext(ui.ctx).Warn().Err(err).Str("font", rule.Family).Msg("font preview unavailable")
		return
	}
	fyne.Do(func() {
		ui.applyFontResource(rule.Family, res)
	})
}

func (ui *RootUI) applyFontResource(family string, res fyne.Resource) {
	for _, card := range ui.cards {
		if card.Font().Name == family {
			card.SetFontResource(res)
		}
	}
}

func (ui *RootUI) applyPreviewSettings() {
	sample := ui.settings.GetSampleText()
	size := ui.settings.GetPreviewSize()
	for _, card := range ui.cards {
		card.SetSample(sample, size)
	}
	ui.resultsBox.Refresh()
}

func (ui *RootUI) onCopyCSS(font model.Font) {
	rule, ok := ui.registry.Rule(font.Name)
	if !ok {
		return
	}
	ui.app.Clipboard().SetContent(rule.CSS())
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyCSSCopied)), ui.window.Canvas())
}

// onOpenFont opens the source of the registered rule, never the raw
// backend URL.
func (ui *RootUI) onOpenFont(font model.Font) {
	rule, ok := ui.registry.Rule(font.Name)
	if !ok {
		return
	}
	if err := ui.openURL(rule.Src); err != nil {
		logging.FromContext(ui.ctx).Error().Err(err).Str("font", font.Name).Msg("failed to open font")
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.applyPreviewSettings()
}
