package retail

import (
	"context"
	"sort"
	"strings"

	"caddie/internal/places"
)

// Allocation likelihood tiers. Approved chains and government outlets are the
// surest bets, plain liquor stores next, everything else last.
const (
	scoreApprovedChain = 90
	scoreIndependent   = 60
	scoreUnclassified  = 30
)

const maxFallbackQueries = 3

var governmentKeywords = []string{"abc", "state liquor", "liquor control", "state store"}

// Engine filters and ranks store candidates against a state's retail system.
// The searcher is only used for the chain-friendly fallback re-query and may
// be nil.
type Engine struct {
	searcher places.Searcher
}

func NewEngine(searcher places.Searcher) *Engine {
	return &Engine{searcher: searcher}
}

// FilterAndRank applies the state's chain policy, scores the survivors, and
// orders them by descending allocation score with name as the tie-break. An
// empty result in a chain-friendly state triggers up to three targeted
// re-queries, one per top approved chain.
func (e *Engine) FilterAndRank(ctx context.Context, candidates []places.Candidate, stateCode, location string) []places.Candidate {
	cfg := Resolve(stateCode)

	ranked := rank(filter(candidates, cfg), cfg)
	if len(ranked) > 0 || cfg.SystemType != SystemChainFriendly || e.searcher == nil {
		return ranked
	}

	merged := dedupe(append(candidates, e.fallbackSearch(ctx, cfg, location)...))
	return rank(filter(merged, cfg), cfg)
}

func (e *Engine) fallbackSearch(ctx context.Context, cfg Config, location string) []places.Candidate {
	var extra []places.Candidate
	for i, chain := range cfg.ApprovedChains {
		if i == maxFallbackQueries {
			break
		}
		// A provider failure counts as zero candidates for that query.
		found, err := e.searcher.Search(ctx, chain+" bourbon allocation", location)
		if err != nil {
			continue
		}
		extra = append(extra, found...)
	}
	return extra
}

func filter(candidates []places.Candidate, cfg Config) []places.Candidate {
	out := make([]places.Candidate, 0, len(candidates))
	for _, c := range candidates {
		name := strings.ToLower(c.Name)
		if matchesAny(name, globalExcludedChains) {
			continue
		}
		if keep(name, c, cfg) {
			out = append(out, c)
		}
	}
	return out
}

func keep(lowerName string, c places.Candidate, cfg Config) bool {
	switch cfg.SystemType {
	case SystemChainFriendly:
		// Approved chains stay; anything not on a chain list is treated as
		// an independent and stays too.
		return true
	case SystemStateControlled:
		if isGovernmentOutlet(lowerName, cfg) {
			return true
		}
		// Private allocation chains have no role in a control state.
		if matchesAny(lowerName, approvedChains) {
			return false
		}
		return isLiquorStore(lowerName, c.Types)
	default:
		// independent_dominant and unknown: no chains of any kind.
		if matchesAny(lowerName, approvedChains) {
			return false
		}
		return isLiquorStore(lowerName, c.Types)
	}
}

func rank(candidates []places.Candidate, cfg Config) []places.Candidate {
	out := make([]places.Candidate, len(candidates))
	copy(out, candidates)
	for i := range out {
		out[i].AllocationScore = score(out[i], cfg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AllocationScore != out[j].AllocationScore {
			return out[i].AllocationScore > out[j].AllocationScore
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func score(c places.Candidate, cfg Config) int {
	name := strings.ToLower(c.Name)
	switch cfg.SystemType {
	case SystemChainFriendly:
		if matchesAny(name, cfg.ApprovedChains) {
			return scoreApprovedChain
		}
	case SystemStateControlled:
		if isGovernmentOutlet(name, cfg) {
			return scoreApprovedChain
		}
	}
	if isLiquorStore(name, c.Types) {
		return scoreIndependent
	}
	return scoreUnclassified
}

func isGovernmentOutlet(lowerName string, cfg Config) bool {
	return matchesAny(lowerName, governmentKeywords) || matchesAny(lowerName, cfg.StateTerms)
}

func isLiquorStore(lowerName string, types []string) bool {
	for _, t := range types {
		if t == "liquor_store" {
			return true
		}
	}
	return strings.Contains(lowerName, "liquor") ||
		strings.Contains(lowerName, "spirits") ||
		strings.Contains(lowerName, "wine")
}

func matchesAny(lowerName string, chains []string) bool {
	for _, chain := range chains {
		if strings.Contains(lowerName, chain) {
			return true
		}
	}
	return false
}

func dedupe(candidates []places.Candidate) []places.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]places.Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(c.Name) + "|" + strings.ToLower(c.Address)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
