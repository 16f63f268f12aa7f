package model

// SearchState is the view-facing state of the search screen
type SearchState struct {
	Query   string
	Results []Font
	Loading bool
	Error   string
	Status  SearchStatus
	Seq     uint64 // sequence number of the latest begun request
}

// NewSearchState returns the initial idle state
func NewSearchState() SearchState {
	return SearchState{
		Results: make([]Font, 0),
		Status:  SearchStatusIdle,
	}
}

// Clone returns a deep copy of the state
func (s SearchState) Clone() SearchState {
	s.Results = CloneFonts(s.Results)
	return s
}

// HasError reports whether an error message should be displayed
func (s SearchState) HasError() bool {
	return s.Error != ""
}

// ShowEmpty reports whether the empty-state message should be displayed:
// no results, nothing loading and no error.
func (s SearchState) ShowEmpty() bool {
	return len(s.Results) == 0 && !s.Loading && !s.HasError()
}
