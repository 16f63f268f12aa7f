package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Keddaaa/Aurane/internal/model"
)

// PreviewCard shows one font: its name as the card title and the sample
// sentence rendered with the font's own resource once it is loaded.
type PreviewCard struct {
	widget.BaseWidget

	font         model.Font
	localization *Localization

	card    *widget.Card
	sample  *canvas.Text
	copyBtn *widget.Button
	openBtn *widget.Button

	onCopyCSS func(font model.Font)
	onOpen    func(font model.Font)
}

// NewPreviewCard creates a card for font using the given sample text and size
func NewPreviewCard(font model.Font, sample string, size float32, localization *Localization) *PreviewCard {
	pc := &PreviewCard{
		font:         font,
		localization: localization,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI(sample, size)
	return pc
}

// SetCallbacks sets the action callbacks
func (pc *PreviewCard) SetCallbacks(onCopyCSS, onOpen func(font model.Font)) {
	pc.onCopyCSS = onCopyCSS
	pc.onOpen = onOpen
}

// Font returns the font this card previews
func (pc *PreviewCard) Font() model.Font {
	return pc.font
}

// SetFontResource renders the sample with res. Nil restores the theme font.
func (pc *PreviewCard) SetFontResource(res fyne.Resource) {
	pc.sample.FontSource = res
	pc.sample.Refresh()
}

// HasFontResource reports whether the sample uses a loaded font
func (pc *PreviewCard) HasFontResource() bool {
	return pc.sample.FontSource != nil
}

// SetSample updates the sample sentence and its size
func (pc *PreviewCard) SetSample(text string, size float32) {
	pc.sample.Text = text
	pc.sample.TextSize = size
	pc.sample.Refresh()
	pc.Refresh()
}

// SetActionsEnabled toggles the copy and open actions. Fonts without a
// rule have nothing to copy and no checked URL to open.
func (pc *PreviewCard) SetActionsEnabled(enabled bool) {
	for _, btn := range []*widget.Button{pc.copyBtn, pc.openBtn} {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// RefreshTexts reapplies localized button labels
func (pc *PreviewCard) RefreshTexts() {
	pc.copyBtn.SetText(pc.localization.GetText(KeyCopyCSS))
	pc.openBtn.SetText(pc.localization.GetText(KeyOpenFont))
}

func (pc *PreviewCard) createUI(sample string, size float32) {
	pc.sample = canvas.NewText(sample, theme.Color(theme.ColorNameForeground))
	pc.sample.TextSize = size

	pc.copyBtn = widget.NewButton(pc.localization.GetText(KeyCopyCSS), func() {
		if pc.onCopyCSS != nil {
			pc.onCopyCSS(pc.font)
		}
	})
	pc.copyBtn.Importance = widget.LowImportance

	pc.openBtn = widget.NewButton(pc.localization.GetText(KeyOpenFont), func() {
		if pc.onOpen != nil {
			pc.onOpen(pc.font)
		}
	})
	pc.openBtn.Importance = widget.LowImportance

	actions := container.NewHBox(pc.copyBtn, pc.openBtn)
	body := container.NewVBox(
		widget.NewSeparator(),
		container.NewPadded(pc.sample),
		container.NewBorder(nil, nil, nil, actions),
	)

	pc.card = widget.NewCard(pc.font.Name, "", body)
}

// CreateRenderer creates the widget renderer
func (pc *PreviewCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.card)
}

// MinSize keeps cards readable in narrow windows
func (pc *PreviewCard) MinSize() fyne.Size {
	pc.ExtendBaseWidget(pc)
	size := pc.BaseWidget.MinSize()
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	return size
}
