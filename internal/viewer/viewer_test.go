package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/ui"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	g, err := layout.NewGenerator(layout.Config{GridSize: 40, RoomsAmount: 15, RoomMinSize: 3, RoomMaxSize: 6, Seed: 100})
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}
	return NewSession(g)
}

func TestSessionRegenerate(t *testing.T) {
	s := newTestSession(t)
	if s.Layout() != nil {
		t.Fatal("new session already has a layout")
	}
	if s.Seed() != 100 {
		t.Errorf("Seed() = %d before generation, want 100", s.Seed())
	}

	ctx := context.Background()
	if err := s.Regenerate(ctx, s.Seed()); err != nil {
		t.Fatalf("Regenerate returned error: %v", err)
	}
	first := s.Layout()
	if first == nil || first.Seed != 100 {
		t.Fatalf("Layout() = %v after Regenerate", first)
	}

	if err := s.Regenerate(ctx, s.Seed()+1); err != nil {
		t.Fatalf("Regenerate returned error: %v", err)
	}
	second := s.Layout()
	if second.Seed != 101 {
		t.Errorf("reseeded layout has seed %d, want 101", second.Seed)
	}
	if second.ID == first.ID {
		t.Error("reseeded layout kept the old ID")
	}
	if len(second.GetTriangles()) > 0 && len(s.Points()) != len(second.GetAcceptedRooms()) {
		t.Errorf("session has %d points for %d rooms", len(s.Points()), len(second.GetAcceptedRooms()))
	}
}

func TestSessionRegenerateFailureKeepsSeed(t *testing.T) {
	s := newTestSession(t)
	if err := s.Regenerate(context.Background(), 100); err != nil {
		t.Fatalf("Regenerate returned error: %v", err)
	}
	kept := s.Layout()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Regenerate(ctx, 555); !errors.Is(err, context.Canceled) {
		t.Fatalf("Regenerate error = %v, want context.Canceled", err)
	}

	if s.Layout() != kept {
		t.Error("failed Regenerate replaced the layout")
	}
	if s.Seed() != 100 || s.gen.Seed() != 100 {
		t.Errorf("after failed Regenerate session seed = %d, generator seed = %d, want 100 and 100",
			s.Seed(), s.gen.Seed())
	}
}

func TestKeyActions(t *testing.T) {
	tests := []struct {
		key      rune
		expected string
	}{
		{'q', "quit"},
		{'Q', "quit"},
		{'r', "reseed"},
		{'b', "toggle_rooms"},
		{'e', "toggle_edges"},
		{'p', "toggle_points"},
	}

	for _, tt := range tests {
		a, ok := keyActions[tt.key]
		if !ok {
			t.Errorf("key %q has no action", tt.key)
			continue
		}
		if got := a.String(); got != tt.expected {
			t.Errorf("key %q action = %q, want %q", tt.key, got, tt.expected)
		}
	}
	if action(99).String() != "unknown" {
		t.Error("out of range action is not unknown")
	}
}

func TestActionApply(t *testing.T) {
	layers := ui.LayersAll

	layers = actionToggleEdges.apply(layers)
	if layers.Has(ui.LayerEdges) {
		t.Error("toggle_edges did not hide edges")
	}
	layers = actionTogglePoints.apply(layers)
	layers = actionToggleRooms.apply(layers)
	if layers != 0 {
		t.Errorf("layers = %v, want none", layers)
	}
	if actionReseed.apply(ui.LayerRooms) != ui.LayerRooms {
		t.Error("reseed changed the layers")
	}
}
