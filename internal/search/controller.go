package search

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/model"
)

// ErrorMessage is the only error text the view ever displays
const ErrorMessage = "Erreur lors de la recherche de polices."

// Request identifies one triggered search
type Request struct {
	Seq   uint64
	ID    string // correlation id for logs
	Query string
}

// Controller owns the search state and the request lifecycle
type Controller struct {
	backend Backend

	mu       sync.Mutex
	state    model.SearchState
	seq      uint64
	onUpdate func(model.SearchState) // callback for UI updates
}

// NewController creates a controller bound to a backend
func NewController(backend Backend) *Controller {
	return &Controller{
		backend: backend,
		state:   model.NewSearchState(),
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func(model.SearchState)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// State returns a copy of the current state
func (c *Controller) State() model.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Begin starts a request for query. A blank query is a no-op and returns
// false without touching state. Otherwise the previous error is cleared,
// loading is set and subscribers are notified before returning.
func (c *Controller) Begin(query string) (Request, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Request{}, false
	}

	c.mu.Lock()
	c.seq++
	req := Request{
		Seq:   c.seq,
		ID:    uuid.NewString(),
		Query: trimmed,
	}
	c.state.Query = trimmed
	c.state.Error = ""
	c.state.Loading = true
	c.state.Status = model.SearchStatusLoading
	c.state.Seq = req.Seq
	snapshot, notify := c.state.Clone(), c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
	return req, true
}

// Complete invokes the backend for req and applies the outcome. Outcomes of
// requests older than the latest begun one are dropped.
func (c *Controller) Complete(ctx context.Context, req Request) {
	log := logging.FromContext(ctx).With().
		Uint64("seq", req.Seq).
		Str("request_id", req.ID).
		Str("query", req.Query).
		Logger()

	fonts, err := c.backend.SearchFonts(ctx, req.Query)

	c.mu.Lock()
	if req.Seq < c.seq {
		latest := c.seq
		c.mu.Unlock()
		log.Debug().Uint64("latest_seq", latest).Msg("discarding stale search response")
		return
	}

	if err != nil {
		log.Error().Err(err).Msg("font search failed")
		c.state.Results = make([]model.Font, 0)
		c.state.Error = ErrorMessage
		c.state.Status = model.SearchStatusFailed
	} else {
		log.Debug().Int("count", len(fonts)).Msg("font search completed")
		c.state.Results = model.CloneFonts(fonts)
		c.state.Error = ""
		c.state.Status = model.SearchStatusResults
	}
	c.state.Loading = false
	snapshot, notify := c.state.Clone(), c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// Search runs Begin and Complete synchronously. It reports whether a
// backend call was made.
func (c *Controller) Search(ctx context.Context, query string) bool {
	req, ok := c.Begin(query)
	if !ok {
		return false
	}
	c.Complete(ctx, req)
	return true
}

var _ Searcher = (*Controller)(nil)
