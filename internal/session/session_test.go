package session

import "testing"

func TestAppendTurnKeepsMonotonicOrder(t *testing.T) {
	s := New("s1")
	s.AppendTurn(RoleUser, "whats a mid-tier robust cigar")
	s.AppendTurn(RoleAssistant, "try an Oliva Serie V")
	s.AppendTurn(RoleUser, "give me more robust options")

	for i, turn := range s.History {
		if turn.Order != i {
			t.Fatalf("turn %d has Order = %d", i, turn.Order)
		}
	}
}

func TestTruncateHistoryKeepsNewest(t *testing.T) {
	s := New("s1")
	s.AppendTurn(RoleUser, "one")
	s.AppendTurn(RoleAssistant, "two")
	s.AppendTurn(RoleUser, "three")
	s.TruncateHistory(2)

	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}
	if s.History[0].Content != "two" || s.History[1].Content != "three" {
		t.Fatalf("unexpected surviving turns: %+v", s.History)
	}
	if s.History[1].Order != 2 {
		t.Fatalf("Order = %d, want original position 2", s.History[1].Order)
	}
}

func TestLastTurn(t *testing.T) {
	s := New("s1")
	if _, ok := s.LastTurn(); ok {
		t.Fatalf("LastTurn() on empty history should report false")
	}
	s.AppendTurn(RoleUser, "tell me about buffalo trace")
	turn, ok := s.LastTurn()
	if !ok || turn.Content != "tell me about buffalo trace" {
		t.Fatalf("LastTurn() = %+v, %v", turn, ok)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := New("s1")
	s.AppendTurn(RoleUser, "original")
	s.LastCigarAttributes = map[string]string{"strength": "full"}

	c := s.Clone()
	c.AppendTurn(RoleAssistant, "extra")
	c.LastCigarAttributes["strength"] = "mild"
	c.LastCigarDiscussed = "Padron 1926"

	if len(s.History) != 1 {
		t.Fatalf("clone mutation leaked into original history")
	}
	if s.LastCigarAttributes["strength"] != "full" {
		t.Fatalf("clone mutation leaked into original attributes")
	}
	if s.LastCigarDiscussed != "" {
		t.Fatalf("clone mutation leaked into original fields")
	}
}
