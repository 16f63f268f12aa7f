package search

import (
	"context"

	"github.com/Keddaaa/Aurane/internal/model"
)

// Backend is the font search capability. Implementations may fail for any
// reason; callers only distinguish success from failure.
type Backend interface {
	SearchFonts(ctx context.Context, query string) ([]model.Font, error)
}

// BackendFunc adapts a plain function to the Backend interface
type BackendFunc func(ctx context.Context, query string) ([]model.Font, error)

// SearchFonts calls f(ctx, query)
func (f BackendFunc) SearchFonts(ctx context.Context, query string) ([]model.Font, error) {
	return f(ctx, query)
}

// Searcher defines the controller surface used by the view.
type Searcher interface {
	SetUpdateCallback(func(model.SearchState))
	Begin(query string) (Request, bool)
	Complete(ctx context.Context, req Request)
	Search(ctx context.Context, query string) bool
	State() model.SearchState
}
