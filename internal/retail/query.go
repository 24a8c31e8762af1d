package retail

import "strings"

// BuildQuery combines the system's search terms with the location.
func BuildQuery(cfg Config, location string) string {
	return strings.TrimSpace(cfg.SearchTermTemplate + " " + location)
}

// CigarQuery is the search query for cigar retailers near a location.
func CigarQuery(location string) string {
	return strings.TrimSpace("cigar shop near " + location)
}
