package fontface

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Keddaaa/Aurane/internal/model"
)

// RuleIDPrefix prefixes the identifier of every injected rule
const RuleIDPrefix = "font-"

// ErrInvalidFont is returned when a font cannot be turned into a rule
var ErrInvalidFont = errors.New("invalid font")

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
}

// Rule associates a font family with the resource that provides it
type Rule struct {
	ID     string
	Family string
	Src    string
}

// NewRule validates font and builds its rule
func NewRule(font model.Font) (Rule, error) {
	if !font.Valid() {
		return Rule{}, fmt.Errorf("%w: empty name", ErrInvalidFont)
	}

	src := strings.TrimSpace(font.URL)
	u, err := url.Parse(src)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidFont, font.Name, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return Rule{}, fmt.Errorf("%w: %q: unsupported scheme %q", ErrInvalidFont, font.Name, u.Scheme)
	}
	if scheme != "file" && u.Host == "" {
		return Rule{}, fmt.Errorf("%w: %q: missing host", ErrInvalidFont, font.Name)
	}

	return Rule{
		ID:     RuleIDPrefix + font.Name,
		Family: font.Name,
		Src:    src,
	}, nil
}

// CSS renders the rule as an @font-face declaration
func (r Rule) CSS() string {
	var b strings.Builder
	b.WriteString("@font-face { font-family: '")
	writeEscaped(&b, r.Family)
	b.WriteString("'; src: url('")
	writeEscaped(&b, r.Src)
	b.WriteString("'); }")
	return b.String()
}

// writeEscaped writes s as the body of a single-quoted CSS string.
// Quotes and backslashes get a backslash, control characters and angle
// brackets become hex escapes terminated by a space.
func writeEscaped(b *strings.Builder, s string) {
	for _, r := range s {
		switch {
		case r == '\\' || r == '\'' || r == '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f || r == '<' || r == '>':
			fmt.Fprintf(b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
}
