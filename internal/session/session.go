package session

import "time"

// Role identifies who produced a conversational turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single conversational turn. Turns are append-only: once added to
// a session's history they are never edited or removed.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// Session holds per-conversation state. The two last-discussed slots track
// recency, not mutual exclusivity: a user who talked about both domains has
// both set, and precedence is the subject inferencer's job.
type Session struct {
	ID                    string            `json:"session_id"`
	History               []Turn            `json:"history"`
	LastCigarDiscussed    string            `json:"last_cigar_discussed,omitempty"`
	LastCigarAttributes   map[string]string `json:"last_cigar_attributes,omitempty"`
	LastBourbonDiscussed  string            `json:"last_bourbon_discussed,omitempty"`
	LastBourbonAttributes map[string]string `json:"last_bourbon_attributes,omitempty"`
	StoredLocation        string            `json:"stored_location,omitempty"`
	PendingKind           string            `json:"pending_kind,omitempty"`
	PendingText           string            `json:"pending_text,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// SetPending records an outstanding clarification: kind names the missing
// piece and text is the turn to re-route once the user supplies it.
func (s *Session) SetPending(kind, text string) {
	s.PendingKind = kind
	s.PendingText = text
}

// ClearPending returns and clears the outstanding clarification, if any.
func (s *Session) ClearPending() (kind, text string, ok bool) {
	kind, text = s.PendingKind, s.PendingText
	s.PendingKind, s.PendingText = "", ""
	return kind, text, kind != ""
}

// New returns an empty session for the given id.
func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AppendTurn adds a turn at the next history position.
func (s *Session) AppendTurn(role Role, content string) {
	s.History = append(s.History, Turn{
		Role:    role,
		Content: content,
		Order:   len(s.History),
	})
}

// LastTurn returns the most recent history turn, if any.
func (s *Session) LastTurn() (Turn, bool) {
	if len(s.History) == 0 {
		return Turn{}, false
	}
	return s.History[len(s.History)-1], true
}

// TruncateHistory drops the oldest turns beyond limit. Order values of the
// surviving turns are preserved so the sequence stays monotonic.
func (s *Session) TruncateHistory(limit int) {
	if limit <= 0 || len(s.History) <= limit {
		return
	}
	kept := make([]Turn, limit)
	copy(kept, s.History[len(s.History)-limit:])
	s.History = kept
}

// Clone returns a deep copy. The engine mutates a clone and commits it in one
// Save so a failure mid-turn never leaves a half-updated session behind.
func (s *Session) Clone() *Session {
	c := *s
	if s.History != nil {
		c.History = make([]Turn, len(s.History))
		copy(c.History, s.History)
	}
	c.LastCigarAttributes = cloneAttrs(s.LastCigarAttributes)
	c.LastBourbonAttributes = cloneAttrs(s.LastBourbonAttributes)
	return &c
}

func cloneAttrs(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
