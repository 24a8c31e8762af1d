package session

import "context"

// Store persists and retrieves conversation sessions.
//
// Get returns a fresh empty session when the id is unknown; callers cannot
// distinguish "new" from "expired" and should not need to. Save atomically
// replaces the stored session. Concurrent turns for the same id must be
// serialized by the caller; stores only guarantee that each Save is all or
// nothing.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Close() error
}
