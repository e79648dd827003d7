package verify

import "strings"

// SourceList is the curated allow-list of outlet identifiers the official
// API is restricted to.
type SourceList struct {
	ids []string
	set map[string]bool
}

// NewSourceList builds a source list with membership lookup
func NewSourceList(ids []string) *SourceList {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[strings.ToLower(strings.TrimSpace(id))] = true
	}
	return &SourceList{ids: ids, set: set}
}

// Contains reports whether the outlet identifier is on the allow-list
func (s *SourceList) Contains(id string) bool {
	return s.set[strings.ToLower(strings.TrimSpace(id))]
}

// Param renders the list as the comma-separated API query parameter
func (s *SourceList) Param() string {
	return strings.Join(s.ids, ",")
}

// Len returns the number of allow-listed outlets
func (s *SourceList) Len() int {
	return len(s.ids)
}
