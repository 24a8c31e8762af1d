// Package resolve turns a normalized user turn plus session state into the
// routing decisions of the pipeline: which product domain the turn is about,
// what the user wants done, and where.
package resolve

import (
	"strings"
	"unicode"

	"caddie/internal/session"
)

// Subject is the product domain a turn concerns.
type Subject string

const (
	SubjectCigar     Subject = "cigar"
	SubjectBourbon   Subject = "bourbon"
	SubjectAmbiguous Subject = "ambiguous"
)

var (
	cigarKeywords = map[string]struct{}{
		"cigar":   {},
		"cigars":  {},
		"smoke":   {},
		"smokes":  {},
		"stick":   {},
		"sticks":  {},
		"humidor": {},
		"tobacco": {},
		"wrapper": {},
	}
	bourbonKeywords = map[string]struct{}{
		"bourbon":  {},
		"bourbons": {},
		"whiskey":  {},
		"whiskeys": {},
		"bottle":   {},
		"bottles":  {},
		"pour":     {},
		"proof":    {},
		"rye":      {},
	}
)

// InferSubject decides which domain the turn is about.
//
// Resolution order is load-bearing: an explicit mention in the current turn
// always beats session state, a turn naming both domains is a genuine
// ambiguity rather than a coin flip, and only when the turn itself is silent
// does stored context get a vote.
func InferSubject(text string, s *session.Session) Subject {
	words := tokenize(text)
	cigar := hasAny(words, cigarKeywords)
	bourbon := hasAny(words, bourbonKeywords)

	switch {
	case cigar && bourbon:
		return SubjectAmbiguous
	case cigar:
		return SubjectCigar
	case bourbon:
		return SubjectBourbon
	}

	if s != nil {
		cigarCtx := s.LastCigarDiscussed != ""
		bourbonCtx := s.LastBourbonDiscussed != ""
		if cigarCtx != bourbonCtx {
			if cigarCtx {
				return SubjectCigar
			}
			return SubjectBourbon
		}

		// Both or neither slot set: the single most recent history turn
		// breaks the tie if it names exactly one domain.
		if last, ok := s.LastTurn(); ok {
			lastWords := tokenize(last.Content)
			lc := hasAny(lastWords, cigarKeywords)
			lb := hasAny(lastWords, bourbonKeywords)
			if lc != lb {
				if lc {
					return SubjectCigar
				}
				return SubjectBourbon
			}
		}
	}

	return SubjectAmbiguous
}

// tokenize lowercases and splits on anything that is not a letter or digit,
// so keyword hits are whole-word only.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func hasAny(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}
