package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomweave/internal/telemetry"
)

// Source is the random number source used for placement. *rand.Rand
// satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// PlacerConfig holds the room placement parameters.
type PlacerConfig struct {
	RoomsAmount int // Number of placement attempts
	RoomMinSize int // Smallest room side, inclusive
	RoomMaxSize int // Largest room side, inclusive
}

// Validate checks the parameters against the grid.
func (c PlacerConfig) Validate(grid Grid) error {
	if grid.Size <= 0 {
		return &ConfigurationError{Field: "gridSize", Value: grid.Size, Reason: "must be positive"}
	}
	if c.RoomsAmount < 0 {
		return &ConfigurationError{Field: "roomsAmount", Value: c.RoomsAmount, Reason: "must not be negative"}
	}
	if c.RoomMinSize <= 0 {
		return &ConfigurationError{Field: "roomMinSize", Value: c.RoomMinSize, Reason: "must be positive"}
	}
	if c.RoomMinSize > c.RoomMaxSize {
		return &ConfigurationError{Field: "roomMaxSize", Value: c.RoomMaxSize, Reason: "must not be less than roomMinSize"}
	}
	if c.RoomMaxSize > grid.Size {
		return &ConfigurationError{Field: "roomMaxSize", Value: c.RoomMaxSize, Reason: "must not exceed gridSize"}
	}
	return nil
}

// Placer lays out non-overlapping rooms by rejection sampling.
type Placer struct {
	grid     Grid
	cfg      PlacerConfig
	rng      Source
	rooms    []Room
	attempts int
	rejected int
}

var (
	placementAttempts   = telemetry.Counter("world", "rooms.attempts", "Room placement attempts")
	placementRejections = telemetry.Counter("world", "rooms.rejected", "Room candidates rejected for overlapping")
)

// NewPlacer creates a placer. A nil rng uses a time-seeded source.
func NewPlacer(grid Grid, cfg PlacerConfig, rng Source) (*Placer, error) {
	if err := cfg.Validate(grid); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Placer{
		grid:  grid,
		cfg:   cfg,
		rng:   rng,
		rooms: make([]Room, 0, cfg.RoomsAmount),
	}, nil
}

// Place runs RoomsAmount placement attempts and returns the accepted rooms
// in the order they were accepted. A candidate that overlaps or touches an
// earlier room is dropped and its attempt is not retried. Any rooms from a
// previous call are discarded first.
func (p *Placer) Place(ctx context.Context) []Room {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "rooms.place")
	defer span.End()

	startTime := time.Now()

	p.rooms = p.rooms[:0]
	p.attempts = 0
	p.rejected = 0

	for i := 0; i < p.cfg.RoomsAmount; i++ {
		p.attempts++
		if !p.add(p.randomRoom()) {
			p.rejected++
		}
	}

	placementAttempts.Add(ctx, int64(p.attempts))
	placementRejections.Add(ctx, int64(p.rejected))

	span.SetAttributes(
		attribute.Int("rooms.grid_size", p.grid.Size),
		attribute.Int("rooms.attempts", p.attempts),
		attribute.Int("rooms.accepted", len(p.rooms)),
		attribute.Int("rooms.rejected", p.rejected),
		attribute.Int64("rooms.placement_us", time.Since(startTime).Microseconds()),
	)

	return p.Rooms()
}

// Rooms returns a copy of the accepted rooms.
func (p *Placer) Rooms() []Room {
	out := make([]Room, len(p.rooms))
	copy(out, p.rooms)
	return out
}

// Attempts returns the number of candidates drawn by the last Place.
func (p *Placer) Attempts() int {
	return p.attempts
}

// Rejected returns the number of candidates dropped by the last Place.
func (p *Placer) Rejected() int {
	return p.rejected
}

// randomRoom draws a candidate: width, height, then x and y.
func (p *Placer) randomRoom() Room {
	width := p.between(p.cfg.RoomMinSize, p.cfg.RoomMaxSize)
	height := p.between(p.cfg.RoomMinSize, p.cfg.RoomMaxSize)

	return Room{
		X:      p.below(p.grid.Size - width),
		Y:      p.below(p.grid.Size - height),
		Width:  width,
		Height: height,
	}
}

// add accepts the room unless it overlaps an accepted one.
func (p *Placer) add(room Room) bool {
	for _, other := range p.rooms {
		if room.Overlaps(other) {
			return false
		}
	}
	p.rooms = append(p.rooms, room)
	return true
}

// between returns a value in [lo, hi].
func (p *Placer) between(lo, hi int) int {
	return lo + p.rng.Intn(hi-lo+1)
}

// below returns a value in [0, n), or 0 when the range is empty.
func (p *Placer) below(n int) int {
	if n <= 0 {
		return 0
	}
	return p.rng.Intn(n)
}
