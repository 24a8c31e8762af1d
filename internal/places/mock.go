package places

import (
	"context"
	"strings"
)

// MockSearcher is a canned Searcher for tests. Responses maps a query substring
// to the candidates it should yield; the first matching entry wins.
type MockSearcher struct {
	Responses map[string][]Candidate
	Default   []Candidate
	Err       error

	Queries []string
}

func (m *MockSearcher) Search(_ context.Context, query, _ string) ([]Candidate, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	for key, out := range m.Responses {
		if key != "" && strings.Contains(query, key) {
			return out, nil
		}
	}
	return m.Default, nil
}
