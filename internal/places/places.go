// Package places defines the external store-search contract and the Google
// Places implementation of it.
package places

import "context"

// Candidate is one store returned by a search provider. AllocationScore is
// zero as supplied; the filtering layer derives it.
type Candidate struct {
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Types           []string `json:"types,omitempty"`
	AllocationScore int      `json:"allocation_score"`
}

// Searcher finds store candidates for a free-text query near a location.
// Implementations return an empty slice when nothing matched; an error means
// the provider itself failed.
type Searcher interface {
	Search(ctx context.Context, query, location string) ([]Candidate, error)
}
