// Package retail maps U.S. states to their liquor retail model and filters
// store candidates accordingly.
package retail

import "strings"

// SystemType classifies how a state's liquor retail market works.
type SystemType string

const (
	SystemIndependentDominant SystemType = "independent_dominant"
	SystemChainFriendly       SystemType = "chain_friendly"
	SystemStateControlled     SystemType = "state_controlled"
	SystemUnknown             SystemType = "unknown"
)

// Config is the resolved retail-system configuration for one state. Static,
// read-only at runtime.
type Config struct {
	StateCode          string
	SystemType         SystemType
	ApprovedChains     []string
	StateTerms         []string
	SearchTermTemplate string
	GuidanceText       string
	StateWebsite       string
}

var stateSystems = map[string]SystemType{}

func init() {
	register := func(system SystemType, codes ...string) {
		for _, c := range codes {
			stateSystems[c] = system
		}
	}
	register(SystemIndependentDominant,
		"KY", "TN", "TX", "GA", "FL", "IN", "OH", "MI",
		"NY", "NJ", "SC", "OK", "KS", "NE", "SD", "ND",
		"IA", "MN", "AR", "CT", "DE", "MA", "RI", "MD")
	register(SystemChainFriendly,
		"WA", "CA", "AZ", "NV", "CO", "NM", "LA", "MO", "WI", "IL")
	register(SystemStateControlled,
		"PA", "UT", "NC", "VA", "AL", "ID", "NH", "MS",
		"MT", "OR", "VT", "WY", "WV", "ME")
}

// Retailers known to receive allocations in private chain-friendly markets.
var approvedChains = []string{
	"total wine", "bevmo", "binny's", "k&l wine merchants",
	"spec's", "twin liquors", "hi-time", "mission liquor",
	"remedy liquor", "justin's house of bourbon",
}

// Grocery and big-box chains that never carry allocated bourbon. Excluded in
// every state.
var globalExcludedChains = []string{
	"walmart", "target", "costco", "kroger", "safeway", "whole foods",
	"trader joe", "fred meyer", "publix", "wegmans", "giant eagle",
}

// GlobalExcludedChains returns the shared exclusion list.
func GlobalExcludedChains() []string {
	return globalExcludedChains
}

// Store-name terms that mark a government-operated outlet, per state.
var stateSpecificTerms = map[string][]string{
	"PA": {"fine wine & good spirits", "fwgs", "plcb"},
	"NC": {"abc store", "north carolina abc"},
	"VA": {"virginia abc", "vabc"},
	"OR": {"olcc", "liquor store"},
	"UT": {"utah liquor store", "dabs"},
	"NH": {"new hampshire liquor", "nh liquor"},
	"AL": {"alabama abc"},
	"ID": {"idaho state liquor"},
	"MS": {"mississippi abc"},
	"MT": {"montana liquor"},
	"VT": {"vermont liquor"},
	"WY": {"wyoming liquor"},
	"WV": {"west virginia abc"},
	"ME": {"maine liquor"},
}

var stateWebsites = map[string]string{
	"PA": "https://www.finewineandgoodspirits.com",
	"NC": "https://abc.nc.gov",
	"VA": "https://www.abc.virginia.gov",
	"OR": "https://www.oregon.gov/olcc",
	"UT": "https://webapps.abc.utah.gov",
	"NH": "https://www.liquorandwineoutlets.com",
}

// Search keywords per system. State-controlled markets lead with government
// store terms; chain-friendly markets name the allocation hunt directly;
// everywhere else a plain liquor-store query works best.
var searchTemplateBySystem = map[SystemType]string{
	SystemIndependentDominant: "liquor store wine spirits",
	SystemChainFriendly:       "bourbon liquor store allocation",
	SystemStateControlled:     "abc store state liquor",
	SystemUnknown:             "liquor store wine spirits",
}

var guidanceBySystem = map[SystemType]string{
	SystemIndependentDominant: "Independent liquor stores dominate allocations here. Build relationships with local store owners and ask about allocation lists and delivery days, typically Thursday or Friday.",
	SystemChainFriendly:       "Major chains and specialty retailers handle significant allocation volume alongside independents. Check Total Wine and BevMo lotteries as well as local specialty shops.",
	SystemStateControlled:     "The state controls liquor distribution. Monitor the state liquor control website for lottery announcements and release schedules; most allocations run through online lotteries.",
	SystemUnknown:             "Start with independent liquor stores and ask how they handle allocated bourbon.",
}

// Resolve maps a two-letter state code to its retail-system configuration.
// Unknown codes get the unknown fallback rather than an error, so every state
// stays serviceable.
func Resolve(stateCode string) Config {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	system, ok := stateSystems[code]
	if !ok {
		system = SystemUnknown
	}

	cfg := Config{
		StateCode:          code,
		SystemType:         system,
		SearchTermTemplate: searchTemplateBySystem[system],
		GuidanceText:       guidanceBySystem[system],
	}
	if system == SystemChainFriendly {
		cfg.ApprovedChains = approvedChains
	}
	if system == SystemStateControlled {
		cfg.StateTerms = stateSpecificTerms[code]
		cfg.StateWebsite = stateWebsites[code]
	}
	return cfg
}
