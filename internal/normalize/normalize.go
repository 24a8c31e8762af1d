// Package normalize corrects known misspellings in raw user text before any
// downstream classification runs.
package normalize

import (
	"regexp"
	"sort"
	"strings"
)

// Corrections observed in real traffic. Keys match whole words only, so a
// typo never fires inside a longer word ("mor" leaves "mortar" alone).
// No correction is itself a key, which makes Correct idempotent.
var corrections = map[string]string{
	"mor":       "more",
	"optins":    "options",
	"optons":    "options",
	"fid":       "find",
	"burbon":    "bourbon",
	"bourbn":    "bourbon",
	"wiskey":    "whiskey",
	"whisky":    "whiskey",
	"cigarr":    "cigar",
	"cigarrs":   "cigars",
	"cgar":      "cigar",
	"recomend":  "recommend",
	"reccomend": "recommend",
	"alocation": "allocation",
	"allocaton": "allocation",
	"whre":      "where",
	"wher":      "where",
	"neer":      "near",
	"robus":     "robust",
}

var typoPattern = compileTypoPattern()

func compileTypoPattern() *regexp.Regexp {
	words := make([]string, 0, len(corrections))
	for w := range corrections {
		words = append(words, regexp.QuoteMeta(w))
	}
	// Longest-first so alternation never shadows a longer typo with a
	// shorter one.
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

// Correct replaces every known misspelling in text. Unknown text passes
// through unchanged and Correct(Correct(x)) == Correct(x) for all inputs.
func Correct(text string) string {
	return typoPattern.ReplaceAllStringFunc(text, func(match string) string {
		if fixed, ok := corrections[strings.ToLower(match)]; ok {
			return fixed
		}
		return match
	})
}
