package ui

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keddaaa/Aurane/internal/config"
	"github.com/Keddaaa/Aurane/internal/fontface"
	"github.com/Keddaaa/Aurane/internal/model"
	"github.com/Keddaaa/Aurane/internal/search"
)

const waitFor = 2 * time.Second

var robotoFamily = []model.Font{
	{Name: "Roboto", URL: "https://fonts.example.com/roboto.ttf"},
	{Name: "Roboto Mono", URL: "https://fonts.example.com/roboto-mono.ttf"},
}

// fakeBackend answers from a fixed table and counts calls
type fakeBackend struct {
	mu      sync.Mutex
	results map[string][]model.Font
	err     error
	calls   int
	gate    chan struct{}
}

func (b *fakeBackend) SearchFonts(ctx context.Context, query string) ([]model.Font, error) {
	b.mu.Lock()
	b.calls++
	gate := b.gate
	b.mu.Unlock()

	if gate != nil {
		<-gate
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return nil, b.err
	}
	return b.results[query], nil
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func (b *fakeBackend) setErr(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

type fixture struct {
	app        fyne.App
	ui         *RootUI
	controller *search.Controller
	backend    *fakeBackend
	fetches    atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		app:     test.NewApp(),
		backend: &fakeBackend{results: map[string][]model.Font{"roboto": robotoFamily}},
	}
	t.Cleanup(f.app.Quit)

	f.controller = search.NewController(f.backend)
	loader := fontface.NewLoaderWithFetcher(func(ctx context.Context, rule fontface.Rule) (fyne.Resource, error) {
		f.fetches.Add(1)
		return theme.TextBoldFont(), nil
	})

	window := f.app.NewWindow("")
	f.ui = NewRootUI(context.Background(), window, f.app, f.controller, loader)
	return f
}

// search runs a full request on the calling goroutine
func (f *fixture) search(query string) {
	f.ui.queryEntry.SetText(query)
	if req, ok := f.controller.Begin(query); ok {
		f.controller.Complete(context.Background(), req)
	}
}

func TestRootUI_InitialState(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "Aurane", f.ui.titleText.Text)
	assert.Equal(t, "Recherche et installe des polices en un clic.", f.ui.subtitleLabel.Text)
	assert.Equal(t, "Rechercher une police...", f.ui.queryEntry.PlaceHolder)
	assert.Equal(t, "Rechercher", f.ui.searchBtn.Text)
	assert.False(t, f.ui.searchBtn.Disabled())
	assert.False(t, f.ui.errorLabel.Visible())
	assert.True(t, f.ui.emptyLabel.Visible())
	assert.Equal(t, "Aucune police trouvée. Essayez autre chose.", f.ui.emptyLabel.Text)
	assert.Empty(t, f.ui.cards)
}

func TestRootUI_BlankQueryDoesNothing(t *testing.T) {
	f := newFixture(t)

	f.ui.queryEntry.SetText("   ")
	test.Tap(f.ui.searchBtn)

	assert.Equal(t, 0, f.backend.callCount())
	assert.Equal(t, "Rechercher", f.ui.searchBtn.Text)
	assert.Equal(t, model.SearchStatusIdle, f.controller.State().Status)
}

func TestRootUI_SuccessRendersPreviewCards(t *testing.T) {
	f := newFixture(t)

	f.search("roboto")

	require.Len(t, f.ui.cards, 2)
	assert.Equal(t, "Roboto", f.ui.cards[0].Font().Name)
	assert.Equal(t, "Roboto Mono", f.ui.cards[1].Font().Name)
	assert.Equal(t, config.DefaultSampleText, f.ui.cards[0].sample.Text)
	assert.Equal(t, float32(config.DefaultPreviewSize), f.ui.cards[0].sample.TextSize)
	assert.False(t, f.ui.emptyLabel.Visible())
	assert.False(t, f.ui.errorLabel.Visible())
	assert.Equal(t, "Rechercher", f.ui.searchBtn.Text)

	assert.True(t, f.ui.Registry().Has("Roboto"))
	assert.True(t, f.ui.Registry().Has("Roboto Mono"))

	assert.Eventually(t, func() bool {
		return f.ui.cards[0].HasFontResource() && f.ui.cards[1].HasFontResource()
	}, waitFor, 10*time.Millisecond)
}

func TestRootUI_RepeatedSearchReusesRulesAndFonts(t *testing.T) {
	f := newFixture(t)

	f.search("roboto")
	require.Eventually(t, func() bool { return f.fetches.Load() == 2 }, waitFor, 10*time.Millisecond)

	f.search("nothing")
	f.search("roboto")

	assert.Equal(t, 2, f.ui.Registry().Len())
	require.Len(t, f.ui.cards, 2)
	assert.True(t, f.ui.cards[0].HasFontResource(), "already loaded fonts apply immediately")
	assert.Equal(t, int32(2), f.fetches.Load())
}

func TestRootUI_EmptyResults(t *testing.T) {
	f := newFixture(t)

	f.search("zzz")

	assert.Empty(t, f.ui.cards)
	assert.True(t, f.ui.emptyLabel.Visible())
	assert.False(t, f.ui.errorLabel.Visible())
}

func TestRootUI_FailureShowsFixedMessage(t *testing.T) {
	f := newFixture(t)

	f.search("roboto")
	require.Len(t, f.ui.cards, 2)

	f.backend.setErr(errors.New("backend down"))
	f.search("roboto")

	assert.True(t, f.ui.errorLabel.Visible())
	assert.Equal(t, "Erreur lors de la recherche de polices.", f.ui.errorLabel.Text)
	assert.Empty(t, f.ui.cards)
	assert.Empty(t, f.ui.resultsBox.Objects)
	assert.False(t, f.ui.emptyLabel.Visible(), "error replaces the empty-state message")

	f.backend.setErr(nil)
	f.search("roboto")

	assert.False(t, f.ui.errorLabel.Visible())
	assert.Len(t, f.ui.cards, 2)
}

func TestRootUI_ButtonReflectsLoading(t *testing.T) {
	f := newFixture(t)
	gate := make(chan struct{})
	f.backend.gate = gate

	f.ui.queryEntry.SetText("roboto")
	test.Tap(f.ui.searchBtn)

	assert.Equal(t, "Chargement...", f.ui.searchBtn.Text)
	assert.True(t, f.ui.searchBtn.Disabled())

	close(gate)

	assert.Eventually(t, func() bool {
		return !f.controller.State().Loading
	}, waitFor, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return f.ui.searchBtn.Text == "Rechercher" && !f.ui.searchBtn.Disabled()
	}, waitFor, 10*time.Millisecond)
}

func TestRootUI_EnterWhileLoadingStillSearches(t *testing.T) {
	f := newFixture(t)
	gate := make(chan struct{})
	f.backend.gate = gate

	f.ui.queryEntry.SetText("roboto")
	f.ui.queryEntry.OnSubmitted(f.ui.queryEntry.Text)
	f.ui.queryEntry.OnSubmitted(f.ui.queryEntry.Text)

	assert.Eventually(t, func() bool { return f.backend.callCount() == 2 }, waitFor, 10*time.Millisecond)
	close(gate)

	assert.Eventually(t, func() bool {
		return !f.controller.State().Loading
	}, waitFor, 10*time.Millisecond)
	assert.Equal(t, uint64(2), f.controller.State().Seq)
}

func TestRootUI_InvalidFontHasNoRule(t *testing.T) {
	f := newFixture(t)
	f.backend.results["bad"] = []model.Font{{Name: "Broken", URL: "ftp://fonts.example.com/broken.ttf"}}

	f.search("bad")

	require.Len(t, f.ui.cards, 1)
	assert.False(t, f.ui.Registry().Has("Broken"))
	assert.True(t, f.ui.cards[0].copyBtn.Disabled())
	assert.True(t, f.ui.cards[0].openBtn.Disabled())
	assert.False(t, f.ui.cards[0].HasFontResource())
	assert.Equal(t, int32(0), f.fetches.Load())
}

func TestRootUI_LanguageChange(t *testing.T) {
	f := newFixture(t)

	f.ui.onLanguageChange("en")

	assert.Equal(t, "Search", f.ui.searchBtn.Text)
	assert.Equal(t, "Search for a font...", f.ui.queryEntry.PlaceHolder)
	assert.Equal(t, "No font found. Try something else.", f.ui.emptyLabel.Text)
	assert.Equal(t, "en", f.ui.settings.GetLanguage())
}

func TestRootUI_PreviewSettingsApplyToCards(t *testing.T) {
	f := newFixture(t)
	f.search("roboto")
	require.Len(t, f.ui.cards, 2)

	f.ui.settings.SetPreviewSize(40)
	f.ui.settings.SetSampleText("Voix ambiguë d'un cœur qui au zéphyr préfère les jattes de kiwis")
	f.ui.applyPreviewSettings()

	for _, card := range f.ui.cards {
		assert.Equal(t, float32(40), card.sample.TextSize)
		assert.Equal(t, "Voix ambiguë d'un cœur qui au zéphyr préfère les jattes de kiwis", card.sample.Text)
	}
}

func TestRootUI_CopyCSS(t *testing.T) {
	f := newFixture(t)
	f.search("roboto")
	require.Len(t, f.ui.cards, 2)

	f.ui.onCopyCSS(robotoFamily[0])

	assert.Equal(t,
		"@font-face { font-family: 'Roboto'; src: url('https://fonts.example.com/roboto.ttf'); }",
		f.app.Clipboard().Content())
}

func TestRootUI_OpenFontUsesRuleSource(t *testing.T) {
	f := newFixture(t)
	f.backend.results["mix"] = []model.Font{
		{Name: "Roboto", URL: "  https://fonts.example.com/roboto.ttf  "},
		{Name: "Sneaky", URL: "javascript:alert(1)&calc"},
	}
	var opened []string
	f.ui.openURL = func(target string) error {
		opened = append(opened, target)
		return nil
	}

	f.search("mix")
	require.Len(t, f.ui.cards, 2)
	assert.False(t, f.ui.cards[0].openBtn.Disabled())
	assert.True(t, f.ui.cards[1].openBtn.Disabled())

	f.ui.onOpenFont(f.ui.cards[0].Font())
	f.ui.onOpenFont(f.ui.cards[1].Font())

	assert.Equal(t, []string{"https://fonts.example.com/roboto.ttf"}, opened)
}

func TestSettingsDialog_SaveAppliesToView(t *testing.T) {
	f := newFixture(t)
	f.search("roboto")
	require.Len(t, f.ui.cards, 2)

	sd := NewSettingsDialog(f.ui.settings, f.ui.localization, f.ui.window, f.ui.onSettingsSaved)
	sd.loadCurrentSettings()
	assert.Equal(t, "Français", sd.languageSelect.Selected)

	sd.sampleEntry.SetText("Portez ce vieux whisky")
	sd.sizeSlider.Value = 100
	sd.languageSelect.SetSelected("English")
	sd.save()

	assert.Equal(t, "en", f.ui.settings.GetLanguage())
	assert.Equal(t, float32(config.MaxPreviewSize), f.ui.settings.GetPreviewSize())
	assert.Equal(t, "Search", f.ui.searchBtn.Text)
	for _, card := range f.ui.cards {
		assert.Equal(t, "Portez ce vieux whisky", card.sample.Text)
		assert.Equal(t, float32(config.MaxPreviewSize), card.sample.TextSize)
		assert.Equal(t, "Copy CSS", card.copyBtn.Text)
	}
}
