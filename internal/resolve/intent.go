package resolve

import (
	"regexp"
	"strings"

	"caddie/internal/session"
)

// Intent is the actionable request behind a turn.
type Intent string

const (
	IntentCigarRetailSearch       Intent = "cigar_retail_search"
	IntentBourbonAllocationSearch Intent = "bourbon_allocation_search"
	IntentMoreRequest             Intent = "more_request"
	IntentRecommendationRequest   Intent = "recommendation_request"
	IntentOther                   Intent = "other"
)

// Classification pairs the routed intent with the inferred subject so the
// caller can pick both a handler and a data subset.
type Classification struct {
	Intent  Intent
	Subject Subject
}

var (
	locatePhrases = []string{
		"where can i find",
		"where to buy",
		"where do i get",
		"where can i buy",
		"where can i get",
		"shop near me",
		"store near me",
		"buy near me",
		"near me",
		"closest",
		"in my area",
	}
	allocationWords = map[string]struct{}{
		"allocation":  {},
		"allocated":   {},
		"allocations": {},
		"lottery":     {},
		"raffle":      {},
		"btac":        {},
	}

	morePattern      = regexp.MustCompile(`\b(more|another|other)\b`)
	moreNounPattern  = regexp.MustCompile(`\b(option|options|recommendation|recommendations|pick|picks|suggestion|suggestions|one|ones)\b`)
	recommendPattern = regexp.MustCompile(`\b(recommend|recommendation|suggest|pair|pairing|tell me about|good)\b|\bwhat'?s a\b`)
	findVerbPattern  = regexp.MustCompile(`\bfind\b`)
)

// rule is one row of the intent table. Rows are evaluated in order and the
// first match wins.
type rule struct {
	name    string
	applies func(text string, subj Subject, s *session.Session) bool
	intent  Intent
}

// intentRules encodes the routing policy. Subject gating comes before any
// "where can I find" handling: a locate pattern on its own is not evidence
// of an allocation hunt.
var intentRules = []rule{
	{
		name: "cigar retail search",
		applies: func(text string, subj Subject, _ *session.Session) bool {
			return matchesLocate(text) && subj == SubjectCigar
		},
		intent: IntentCigarRetailSearch,
	},
	{
		name: "bourbon allocation search",
		applies: func(text string, subj Subject, s *session.Session) bool {
			if !matchesLocate(text) && !hasAny(tokenize(text), allocationWords) {
				return false
			}
			if subj == SubjectBourbon {
				return true
			}
			return subj == SubjectAmbiguous && allocationContext(s)
		},
		intent: IntentBourbonAllocationSearch,
	},
	{
		name: "more request",
		applies: func(text string, _ Subject, _ *session.Session) bool {
			return morePattern.MatchString(text) && moreNounPattern.MatchString(text)
		},
		intent: IntentMoreRequest,
	},
	{
		name: "recommendation request",
		applies: func(text string, subj Subject, _ *session.Session) bool {
			return subj != SubjectAmbiguous && recommendPattern.MatchString(text)
		},
		intent: IntentRecommendationRequest,
	},
}

// Classify routes a normalized turn. The subject is computed first and gates
// intent selection; when nothing in the table applies the intent is Other
// and the clarification obligation falls to the caller.
func Classify(text string, s *session.Session) Classification {
	subj := InferSubject(text, s)
	lower := strings.ToLower(text)

	for _, r := range intentRules {
		if r.applies(lower, subj, s) {
			return Classification{Intent: r.intent, Subject: subj}
		}
	}
	return Classification{Intent: IntentOther, Subject: subj}
}

// WantsAction reports whether the turn asks for something actionable, a
// search or a recommendation, even when its product domain is unclear. Used
// to decide whether an unrouted turn deserves a subject question.
func WantsAction(text string) bool {
	lower := strings.ToLower(text)
	return matchesLocate(lower) || recommendPattern.MatchString(lower) ||
		(morePattern.MatchString(lower) && moreNounPattern.MatchString(lower))
}

func matchesLocate(lower string) bool {
	for _, phrase := range locatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return findVerbPattern.MatchString(lower)
}

// allocationContext reports whether the session's most recent active context
// is allocation-related: bourbon was the last domain on the table, or the
// latest turn talked allocations.
func allocationContext(s *session.Session) bool {
	if s == nil {
		return false
	}
	if last, ok := s.LastTurn(); ok {
		if hasAny(tokenize(last.Content), allocationWords) {
			return true
		}
	}
	return s.LastBourbonDiscussed != "" && s.LastCigarDiscussed == ""
}
