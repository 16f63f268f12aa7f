package fontface

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Keddaaa/Aurane/internal/logging"
)

// Fetcher retrieves the font resource a rule points at
type Fetcher func(ctx context.Context, rule Rule) (fyne.Resource, error)

// Loader resolves rules into renderable font resources. Each family is
// fetched at most once at a time; successful loads are kept, failures are not.
type Loader struct {
	fetch Fetcher
	group singleflight.Group

	mu     sync.RWMutex
	loaded map[string]fyne.Resource
}

// NewLoader creates a loader using Fyne's resource loading
func NewLoader() *Loader {
	return NewLoaderWithFetcher(FetchResource)
}

// NewLoaderWithFetcher creates a loader with a custom fetcher
func NewLoaderWithFetcher(fetch Fetcher) *Loader {
	return &Loader{
		fetch:  fetch,
		loaded: make(map[string]fyne.Resource),
	}
}

// Resource returns an already loaded resource for family
func (l *Loader) Resource(family string) (fyne.Resource, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res, ok := l.loaded[family]
	return res, ok
}

// Load returns the resource for rule, fetching it if needed
func (l *Loader) Load(ctx context.Context, rule Rule) (fyne.Resource, error) {
	if res, ok := l.Resource(rule.Family); ok {
		return res, nil
	}

	v, err, shared := l.group.Do(rule.Family, func() (any, error) {
		if res, ok := l.Resource(rule.Family); ok {
			return res, nil
		}
		res, err := l.fetch(ctx, rule)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.loaded[rule.Family] = res
		l.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", rule.Family, err)
	}

	logging.FromContext(ctx).Debug().
		Str("font", rule.Family).
		Bool("shared", shared).
		Msg("font resource loaded")
	return v.(fyne.Resource), nil
}

// FetchResource loads rule.Src through Fyne: local paths for file URLs,
// HTTP(S) downloads otherwise.
func FetchResource(ctx context.Context, rule Rule) (fyne.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := url.Parse(rule.Src)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return fyne.LoadResourceFromPath(u.Path)
	case "http", "https":
		return fyne.LoadResourceFromURLString(rule.Src)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidFont, u.Scheme)
	}
}
