package memory

import (
	"context"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	if !s.Save(ctx, "language", "fr") {
		t.Fatalf("save failed")
	}
	var got string
	if !s.Load(ctx, "language", &got) || got != "fr" {
		t.Fatalf("got %q, want fr", got)
	}
}

func TestMissingKey(t *testing.T) {
	s := New(nil)
	var dest string
	if s.Load(context.Background(), "missing", &dest) {
		t.Fatalf("expected miss")
	}
}

func TestCorruptValue(t *testing.T) {
	s := New(nil)
	s.Seed("broken", []byte(`{oops`))

	var dest map[string]any
	if s.Load(context.Background(), "broken", &dest) {
		t.Fatalf("expected false for corrupt value")
	}
}

func TestDelete(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	s.Save(ctx, "user", "x")
	s.Delete(ctx, "user")
	var dest string
	if s.Load(ctx, "user", &dest) {
		t.Fatalf("expected miss after delete")
	}
}
