package resolve

import (
	"testing"

	"caddie/internal/session"
)

func TestClassifyMoreRequestKeepsSubjectContext(t *testing.T) {
	s := session.New("s1")
	s.LastCigarDiscussed = "Oliva Serie V"

	got := Classify("give me more robust options", s)
	if got.Intent != IntentMoreRequest {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentMoreRequest)
	}
	if got.Subject != SubjectCigar {
		t.Fatalf("subject = %q, want %q", got.Subject, SubjectCigar)
	}
}

func TestClassifyCigarRetailSearchNotAllocation(t *testing.T) {
	s := session.New("s1")
	s.LastCigarDiscussed = "Oliva Serie V"

	got := Classify("where can i find these cigars", s)
	if got.Intent != IntentCigarRetailSearch {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentCigarRetailSearch)
	}
}

func TestClassifyBourbonAllocationSearch(t *testing.T) {
	got := Classify("where can i buy allocated bourbon in louisville, ky", nil)
	if got.Intent != IntentBourbonAllocationSearch {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentBourbonAllocationSearch)
	}
	if got.Subject != SubjectBourbon {
		t.Fatalf("subject = %q, want %q", got.Subject, SubjectBourbon)
	}
}

func TestClassifyAllocationWordWithBourbonContext(t *testing.T) {
	s := session.New("s1")
	s.LastBourbonDiscussed = "Blanton's"

	got := Classify("any allocation drops this week", s)
	if got.Intent != IntentBourbonAllocationSearch {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentBourbonAllocationSearch)
	}
}

func TestClassifyLocateAloneWithoutSubjectIsNotAllocation(t *testing.T) {
	got := Classify("where can i find one near me", nil)
	if got.Intent == IntentBourbonAllocationSearch {
		t.Fatalf("locate phrase without subject routed to allocation search")
	}
}

func TestClassifyRecommendationRequest(t *testing.T) {
	got := Classify("recommend a good cigar for a beginner", nil)
	if got.Intent != IntentRecommendationRequest {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentRecommendationRequest)
	}
	if got.Subject != SubjectCigar {
		t.Fatalf("subject = %q, want %q", got.Subject, SubjectCigar)
	}
}

func TestClassifyRecommendationNeedsSubject(t *testing.T) {
	got := Classify("recommend something good", nil)
	if got.Intent != IntentOther {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentOther)
	}
	if got.Subject != SubjectAmbiguous {
		t.Fatalf("subject = %q, want %q", got.Subject, SubjectAmbiguous)
	}
}

func TestClassifyNoPatternIsOther(t *testing.T) {
	got := Classify("hello", session.New("s1"))
	if got.Intent != IntentOther {
		t.Fatalf("intent = %q, want %q", got.Intent, IntentOther)
	}
}
