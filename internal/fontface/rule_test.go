package fontface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keddaaa/Aurane/internal/model"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		name    string
		font    model.Font
		wantErr bool
	}{
		{"https url", model.Font{Name: "Roboto", URL: "https://x/roboto.woff2"}, false},
		{"http url", model.Font{Name: "Lato", URL: "http://fonts.example/lato.ttf"}, false},
		{"file url", model.Font{Name: "Local", URL: "file:///usr/share/fonts/local.ttf"}, false},
		{"blank name", model.Font{Name: "  ", URL: "https://x/a.ttf"}, true},
		{"javascript scheme", model.Font{Name: "Evil", URL: "javascript:alert(1)"}, true},
		{"relative url", model.Font{Name: "Rel", URL: "fonts/rel.ttf"}, true},
		{"missing host", model.Font{Name: "NoHost", URL: "https:///a.ttf"}, true},
		{"unparsable", model.Font{Name: "Bad", URL: "http://[::1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule(tt.font)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFont)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "font-"+tt.font.Name, rule.ID)
			assert.Equal(t, tt.font.Name, rule.Family)
			assert.Equal(t, tt.font.URL, rule.Src)
		})
	}
}

func TestRule_CSS(t *testing.T) {
	rule, err := NewRule(model.Font{Name: "Roboto", URL: "https://x/roboto.woff2"})
	require.NoError(t, err)

	assert.Equal(t, "font-Roboto", rule.ID)
	assert.Equal(t,
		"@font-face { font-family: 'Roboto'; src: url('https://x/roboto.woff2'); }",
		rule.CSS())
}

func TestRule_CSSEscapesHostileValues(t *testing.T) {
	hostile := []string{
		"Evil'; } body { display: none; } @font-face { font-family: 'x",
		"Line\nBreak",
		`Back\slash`,
		"</style><script>alert(1)</script>",
	}

	for _, name := range hostile {
		rule := Rule{ID: RuleIDPrefix + name, Family: name, Src: "https://x/a.ttf'); } *{color:red} ('"}
		css := rule.CSS()

		assert.True(t, strings.HasPrefix(css, "@font-face { font-family: '"), css)
		assert.True(t, strings.HasSuffix(css, "'); }"), css)
		assert.NotContains(t, css, "\n")
		assert.NotContains(t, css, "<")
		// exactly one unescaped closing brace: the rule's own
		assert.Equal(t, 1, countUnescaped(css, '}'), css)
		assert.Equal(t, 4, countUnescaped(css, '\''), css)
	}
}

func countUnescaped(s string, target rune) int {
	count := 0
	escaped := false
	inString := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '\'':
			inString = !inString
			if target == '\'' {
				count++
			}
		case r == target && !inString:
			count++
		}
	}
	return count
}
