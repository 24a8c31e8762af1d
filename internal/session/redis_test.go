package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, srv.Addr(), 0, time.Hour)
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer store.Close()

	s := New("s1")
	s.AppendTurn(RoleUser, "where can i find these cigars")
	s.LastCigarDiscussed = "Romeo y Julieta"
	s.LastCigarAttributes = map[string]string{"strength": "medium"}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.LastCigarDiscussed != "Romeo y Julieta" {
		t.Fatalf("LastCigarDiscussed = %q", got.LastCigarDiscussed)
	}
	if got.LastCigarAttributes["strength"] != "medium" {
		t.Fatalf("attributes did not round-trip: %+v", got.LastCigarAttributes)
	}
	if len(got.History) != 1 || got.History[0].Role != RoleUser {
		t.Fatalf("history did not round-trip: %+v", got.History)
	}
}

func TestRedisStoreUnknownIDCreatesEmpty(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, srv.Addr(), 0, time.Hour)
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer store.Close()

	got, err := store.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "nobody" || len(got.History) != 0 {
		t.Fatalf("unexpected fresh session: %+v", got)
	}
}

func TestRedisStoreSessionsExpire(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, srv.Addr(), 0, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer store.Close()

	s := New("s1")
	s.LastBourbonDiscussed = "Blanton's"
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	srv.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.LastBourbonDiscussed != "" {
		t.Fatalf("session should have expired, got %+v", got)
	}
}

func TestFactoryDefaultsToInMemory(t *testing.T) {
	store, err := NewStore(context.Background(), StoreOptions{})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, ok := store.(*InMemoryStore); !ok {
		t.Fatalf("NewStore() = %T, want *InMemoryStore", store)
	}
}

func TestFactoryPicksRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	store, err := NewStore(context.Background(), StoreOptions{RedisAddr: srv.Addr(), TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer store.Close()
	if _, ok := store.(*RedisStore); !ok {
		t.Fatalf("NewStore() = %T, want *RedisStore", store)
	}
}
