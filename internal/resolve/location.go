package resolve

import (
	"regexp"
	"strings"

	"caddie/internal/session"
)

var (
	zipPattern = regexp.MustCompile(`\b\d{5}\b`)
	// City half of a "City, ST" token, capped at four words. The state half
	// is validated against the closed tables below rather than by shape, so
	// arbitrary comma-separated prose does not match.
	cityStatePattern = regexp.MustCompile(`(?i)\b([a-z][a-z'.-]*(?: [a-z'.-]+){0,3}) *, *([a-z]{2}|[a-z]+(?: [a-z]+){0,2})\b`)
	nearMePattern    = regexp.MustCompile(`(?i)\bnear me\b`)
)

var stateAbbrevs = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {},
}

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI",
	"minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND",
	"ohio": "OH", "oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"rhode island": "RI", "south carolina": "SC", "south dakota": "SD",
	"tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// ExtractLocation pulls a search location out of a turn. Precedence: a
// 5-digit ZIP, then a "City, ST" token, then "near me" falling back to the
// session's stored location. A false result means the caller owes the user
// exactly one location question.
func ExtractLocation(text string, s *session.Session) (string, bool) {
	if zip := zipPattern.FindString(text); zip != "" {
		return zip, true
	}

	if city, state, ok := matchCityState(text); ok {
		return city + ", " + state, true
	}

	if nearMePattern.MatchString(text) {
		if s != nil && s.StoredLocation != "" {
			return s.StoredLocation, true
		}
	}

	return "", false
}

// StateCode extracts the two-letter state code from a location produced by
// ExtractLocation. Bare ZIPs carry no state; those resolve through the
// unknown retail-system fallback instead.
func StateCode(location string) (string, bool) {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return "", false
	}
	candidate := strings.TrimSpace(location[idx+1:])
	return normalizeState(candidate)
}

// Leading words that are conversation, not city name ("i'm in dallas, tx").
var cityStopwords = map[string]struct{}{
	"i": {}, "im": {}, "i'm": {}, "in": {}, "at": {}, "near": {},
	"around": {}, "from": {}, "to": {}, "live": {}, "the": {},
	"for": {}, "of": {}, "and": {}, "stores": {}, "shops": {},
}

func matchCityState(text string) (city, state string, ok bool) {
	for _, m := range cityStatePattern.FindAllStringSubmatch(text, -1) {
		code, valid := statePrefix(m[2])
		if !valid {
			continue
		}
		words := strings.Fields(strings.ToLower(m[1]))
		// Keep only what follows the last filler word, so "shops in
		// dallas, tx" yields "dallas" rather than the whole phrase.
		for i := len(words) - 1; i >= 0; i-- {
			if _, stop := cityStopwords[words[i]]; stop {
				words = words[i+1:]
				break
			}
		}
		if len(words) == 0 {
			continue
		}
		return titleCase(strings.Join(words, " ")), code, true
	}
	return "", "", false
}

// statePrefix resolves the captured state text, dropping trailing words until
// a word-prefix names a state. The regex grabs up to three words greedily, so
// "north carolina please" still resolves to NC.
func statePrefix(raw string) (string, bool) {
	words := strings.Fields(strings.TrimSpace(raw))
	for n := len(words); n > 0; n-- {
		if code, ok := normalizeState(strings.Join(words[:n], " ")); ok {
			return code, true
		}
	}
	return "", false
}

func normalizeState(raw string) (string, bool) {
	upper := strings.ToUpper(raw)
	if _, ok := stateAbbrevs[upper]; ok {
		return upper, true
	}
	if code, ok := stateNames[strings.ToLower(raw)]; ok {
		return code, true
	}
	return "", false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
