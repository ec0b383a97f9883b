package viewer

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomweave/internal/delaunay"
	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/telemetry"
	"github.com/samdwyer/roomweave/internal/ui"
)

// Session owns the current layout and the point markers produced while it
// was triangulated.
type Session struct {
	gen     *layout.Generator
	tracker *ui.PointTracker
	layout  *layout.Layout
}

// NewSession creates a session with no layout yet.
func NewSession(gen *layout.Generator) *Session {
	return &Session{
		gen:     gen,
		tracker: ui.NewPointTracker(),
	}
}

// Regenerate discards the current layout and builds a new one from seed.
// On error the previous layout and the generator's previous seed are kept.
func (s *Session) Regenerate(ctx context.Context, seed int64) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	previous := s.gen.Seed()
	s.gen.Reseed(seed)
	l, err := s.gen.Generate(ctx, s.tracker)
	if err != nil {
		s.gen.Reseed(previous)
		span.RecordError(err)
		return err
	}
	s.layout = l

	span.SetAttributes(
		attribute.Int64("layout.seed", l.Seed),
		attribute.String("layout.id", l.ID.String()),
	)
	return nil
}

// Layout returns the current layout, or nil before the first Regenerate.
func (s *Session) Layout() *layout.Layout {
	return s.layout
}

// Points returns the vertex markers for the current layout.
func (s *Session) Points() []delaunay.Vertex {
	return s.tracker.Points()
}

// Seed returns the seed of the current layout, or the generator's seed if
// nothing has been generated yet.
func (s *Session) Seed() int64 {
	if s.layout != nil {
		return s.layout.Seed
	}
	return s.gen.Seed()
}
