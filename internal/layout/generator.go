package layout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomweave/internal/delaunay"
	"github.com/samdwyer/roomweave/internal/telemetry"
	"github.com/samdwyer/roomweave/internal/world"
)

// Generator produces layouts from a fixed configuration.
type Generator struct {
	cfg  Config
	grid world.Grid
}

// NewGenerator validates cfg and returns a generator for it. A zero seed is
// replaced by a time-based one.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layout config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:  cfg,
		grid: world.Grid{Size: cfg.GridSize},
	}, nil
}

// Config returns the configuration in use, with the resolved seed.
func (g *Generator) Config() Config {
	return g.cfg
}

// Seed returns the seed the next Generate call will use.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// Reseed changes the seed for subsequent runs. Zero picks a time-based seed.
func (g *Generator) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.cfg.Seed = seed
}

// Generate places rooms, then triangulates their centers. Each call starts
// from the generator's seed, so repeated calls give the same rooms until
// Reseed is called. obs may be nil; it receives the triangulator's reset and
// vertex notifications. A cancelled ctx fails before any work is done.
func (g *Generator) Generate(ctx context.Context, obs delaunay.Observer) (*Layout, error) {
	tracer := telemetry.Tracer("layout")
	ctx, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
		return nil, fmt.Errorf("generate layout: %w", err)
	}

	id := uuid.New()
	startTime := time.Now()

	placer, err := world.NewPlacer(g.grid, g.cfg.placer(), rand.New(rand.NewSource(g.cfg.Seed)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid placement config")
		return nil, fmt.Errorf("layout config: %w", err)
	}
	rooms := placer.Place(ctx)

	tri, err := delaunay.Triangulate(ctx, world.Centroids(rooms), obs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "triangulation failed")
		return nil, fmt.Errorf("triangulate room centers: %w", err)
	}

	span.SetAttributes(
		attribute.String("layout.id", id.String()),
		attribute.Int64("layout.seed", g.cfg.Seed),
		attribute.Int("layout.grid_size", g.grid.Size),
		attribute.Int("layout.rooms", len(rooms)),
		attribute.Int("layout.triangles", tri.Len()),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Layout{
		ID:            id,
		Seed:          g.cfg.Seed,
		Grid:          g.grid,
		Attempts:      placer.Attempts(),
		Rejected:      placer.Rejected(),
		rooms:         rooms,
		triangulation: tri,
	}, nil
}
