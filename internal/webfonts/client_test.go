package webfonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const listResponse = `{
  "kind": "webfonts#webfontList",
  "items": [
    {"family": "Roboto", "variants": ["regular", "700"], "files": {"regular": "http://fonts.gstatic.com/s/roboto/v30/roboto-regular.ttf", "700": "http://fonts.gstatic.com/s/roboto/v30/roboto-700.ttf"}},
    {"family": "Open Sans", "variants": ["regular"], "files": {"regular": "https://fonts.gstatic.com/s/opensans/v34/opensans-regular.ttf"}},
    {"family": "Roboto Mono", "variants": ["700", "300"], "files": {"700": "https://fonts.gstatic.com/s/robotomono/700.ttf", "300": "https://fonts.gstatic.com/s/robotomono/300.ttf"}},
    {"family": "Roboto Flex", "variants": [], "files": {}}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, limit int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(context.Background(),
		Config{APIKey: "test-key", Endpoint: srv.URL, Limit: limit},
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{APIKey: "  "})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSearchFonts_FiltersByFamily(t *testing.T) {
	var gotPath, gotSort string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSort = r.URL.Query().Get("sort")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listResponse))
	}, 0)

	fonts, err := client.SearchFonts(context.Background(), "  roBOto ")
	require.NoError(t, err)

	assert.Equal(t, "/v1/webfonts", gotPath)
	assert.Equal(t, DefaultSort, gotSort)

	require.Len(t, fonts, 2, "families without files are skipped")
	assert.Equal(t, "Roboto", fonts[0].Name)
	assert.Equal(t, "https://fonts.gstatic.com/s/roboto/v30/roboto-regular.ttf", fonts[0].URL)
	assert.Equal(t, "Roboto Mono", fonts[1].Name)
	assert.Equal(t, "https://fonts.gstatic.com/s/robotomono/300.ttf", fonts[1].URL)
}

func TestSearchFonts_Limit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listResponse))
	}, 1)

	fonts, err := client.SearchFonts(context.Background(), "o")
	require.NoError(t, err)
	require.Len(t, fonts, 1)
	assert.Equal(t, "Roboto", fonts[0].Name)
}

func TestSearchFonts_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403, "message": "API key not valid"}}`, http.StatusForbidden)
	}, 0)

	_, err := client.SearchFonts(context.Background(), "Roboto")
	assert.Error(t, err)
}

func TestPickFile(t *testing.T) {
	assert.Empty(t, pickFile(nil))
	assert.Equal(t, "https://x/regular.ttf", pickFile(map[string]string{
		"italic":  "https://x/italic.ttf",
		"regular": "https://x/regular.ttf",
	}))
	assert.Equal(t, "https://x/100.ttf", pickFile(map[string]string{
		"italic": "https://x/italic.ttf",
		"100":    "https://x/100.ttf",
	}))
}
