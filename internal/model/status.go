package model

// SearchStatus represents where the current search lifecycle stands
type SearchStatus string

const (
	// SearchStatusIdle means no search has been triggered yet
	SearchStatusIdle SearchStatus = "Idle"

	// SearchStatusLoading means a backend call is in flight
	SearchStatusLoading SearchStatus = "Loading"

	// SearchStatusResults means the latest search succeeded
	SearchStatusResults SearchStatus = "Results"

	// SearchStatusFailed means the latest search failed
	SearchStatusFailed SearchStatus = "Failed"
)

// String returns the string representation of SearchStatus
func (s SearchStatus) String() string {
	return string(s)
}

// IsActive returns true while a backend call is pending
func (s SearchStatus) IsActive() bool {
	return s == SearchStatusLoading
}

// IsFinished returns true once a search resolved (results or failure)
func (s SearchStatus) IsFinished() bool {
	return s == SearchStatusResults || s == SearchStatusFailed
}
