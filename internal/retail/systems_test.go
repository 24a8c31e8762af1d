package retail

import "testing"

func TestResolveSystemTypes(t *testing.T) {
	cases := []struct {
		code string
		want SystemType
	}{
		{"KY", SystemIndependentDominant},
		{"tx", SystemIndependentDominant},
		{"CA", SystemChainFriendly},
		{"IL", SystemChainFriendly},
		{"PA", SystemStateControlled},
		{"or", SystemStateControlled},
		{"HI", SystemUnknown},
		{"XX", SystemUnknown},
		{"", SystemUnknown},
	}
	for _, tc := range cases {
		got := Resolve(tc.code)
		if got.SystemType != tc.want {
			t.Fatalf("Resolve(%q).SystemType = %q, want %q", tc.code, got.SystemType, tc.want)
		}
	}
}

func TestResolveChainFriendlyCarriesApprovedChains(t *testing.T) {
	cfg := Resolve("CA")
	if len(cfg.ApprovedChains) == 0 {
		t.Fatal("chain-friendly config missing approved chains")
	}
	if cfg.ApprovedChains[0] != "total wine" {
		t.Fatalf("first approved chain = %q", cfg.ApprovedChains[0])
	}

	if got := Resolve("KY"); len(got.ApprovedChains) != 0 {
		t.Fatalf("independent config carries approved chains: %v", got.ApprovedChains)
	}
}

func TestResolveStateControlledDetails(t *testing.T) {
	cfg := Resolve("pa")
	if cfg.StateCode != "PA" {
		t.Fatalf("StateCode = %q, want PA", cfg.StateCode)
	}
	if cfg.StateWebsite != "https://www.finewineandgoodspirits.com" {
		t.Fatalf("StateWebsite = %q", cfg.StateWebsite)
	}
	found := false
	for _, term := range cfg.StateTerms {
		if term == "fwgs" {
			found = true
		}
	}
	if !found {
		t.Fatalf("StateTerms missing fwgs: %v", cfg.StateTerms)
	}
}

func TestResolveCarriesSearchTemplate(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"CA", "bourbon liquor store allocation"},
		{"PA", "abc store state liquor"},
		{"KY", "liquor store wine spirits"},
		{"ZZ", "liquor store wine spirits"},
	}
	for _, tc := range cases {
		if got := Resolve(tc.code).SearchTermTemplate; got != tc.want {
			t.Fatalf("Resolve(%q).SearchTermTemplate = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestResolveUnknownHasGenericGuidance(t *testing.T) {
	cfg := Resolve("ZZ")
	if cfg.GuidanceText == "" {
		t.Fatal("unknown fallback has no guidance")
	}
	if cfg.StateWebsite != "" || len(cfg.ApprovedChains) != 0 {
		t.Fatalf("unknown fallback carries system-specific config: %+v", cfg)
	}
}

func TestBuildQueryPerSystem(t *testing.T) {
	cases := []struct {
		state string
		want  string
	}{
		{"PA", "abc store state liquor Philadelphia, PA"},
		{"CA", "bourbon liquor store allocation Los Angeles, CA"},
		{"KY", "liquor store wine spirits Louisville, KY"},
		{"ZZ", "liquor store wine spirits Somewhere, ZZ"},
	}
	for _, tc := range cases {
		loc := map[string]string{
			"PA": "Philadelphia, PA", "CA": "Los Angeles, CA",
			"KY": "Louisville, KY", "ZZ": "Somewhere, ZZ",
		}[tc.state]
		if got := BuildQuery(Resolve(tc.state), loc); got != tc.want {
			t.Fatalf("BuildQuery(%s) = %q, want %q", tc.state, got, tc.want)
		}
	}
}
