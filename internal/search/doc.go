package search

// Package search implements the search controller: it owns the SearchState,
// invokes the backend capability once per non-blank trigger, collapses any
// backend failure into a single user-facing message, and discards responses
// that arrive after a newer request was started.
