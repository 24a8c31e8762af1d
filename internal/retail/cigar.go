package retail

import (
	"strings"

	"caddie/internal/places"
)

// Drugstore and convenience chains that do not stock premium cigars.
var cigarExcludedChains = []string{
	"cvs", "walgreens", "walmart", "target", "whole foods",
	"trader joe", "safeway", "kroger", "7-eleven", "circle k",
}

var cigarKeywords = []string{"cigar", "tobacco", "smoke shop", "humidor"}

// FilterCigarRetailers keeps only candidates that look like real cigar shops,
// dropping convenience chains and anything without a cigar signal in its name
// or place types.
func FilterCigarRetailers(candidates []places.Candidate) []places.Candidate {
	out := make([]places.Candidate, 0, len(candidates))
	for _, c := range candidates {
		name := strings.ToLower(c.Name)
		if matchesAny(name, cigarExcludedChains) {
			continue
		}
		if matchesAny(name, cigarKeywords) || hasCigarType(c.Types) {
			out = append(out, c)
		}
	}
	return out
}

func hasCigarType(types []string) bool {
	for _, t := range types {
		if t == "tobacco_shop" || t == "cigar_shop" {
			return true
		}
	}
	return false
}
