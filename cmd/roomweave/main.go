// Package main is the entry point for roomweave.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roomweave/internal/export"
	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/telemetry"
	"github.com/samdwyer/roomweave/internal/viewer"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := layout.ConfigFromEnv(layout.DefaultConfig())
	if err != nil {
		log.Fatalf("Invalid environment configuration: %v", err)
	}

	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "side length of the square grid")
	flag.IntVar(&cfg.RoomsAmount, "rooms", cfg.RoomsAmount, "number of room placement attempts")
	flag.IntVar(&cfg.RoomMinSize, "min", cfg.RoomMinSize, "smallest room side")
	flag.IntVar(&cfg.RoomMaxSize, "max", cfg.RoomMaxSize, "largest room side")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time-based seed")
	svgPath := flag.String("svg", "", "write the layout as SVG to this file and exit")
	scale := flag.Int("scale", 10, "SVG pixels per grid unit")
	circles := flag.Bool("circles", false, "draw circumcircles in SVG output")
	hull := flag.Bool("hull", false, "draw the convex hull in SVG output")
	text := flag.Bool("text", false, "print the layout as text and exit")
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	gen, err := layout.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	switch {
	case *svgPath != "":
		err = writeSVG(ctx, gen, *svgPath, export.SVGOptions{Scale: *scale, Circumcircles: *circles, Hull: *hull})
	case *text:
		err = writeText(ctx, gen)
	default:
		err = runViewer(ctx, gen)
	}
	if err != nil {
		log.Fatalf("roomweave: %v", err)
	}
}

func writeSVG(ctx context.Context, gen *layout.Generator, path string, opts export.SVGOptions) error {
	l, err := gen.Generate(ctx, nil)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteSVG(f, l, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %s (seed %d, %d rooms, %d triangles)", path, l.Seed, len(l.GetAcceptedRooms()), len(l.GetTriangles()))
	return nil
}

func writeText(ctx context.Context, gen *layout.Generator) error {
	l, err := gen.Generate(ctx, nil)
	if err != nil {
		return err
	}
	return export.WriteText(os.Stdout, l)
}

func runViewer(ctx context.Context, gen *layout.Generator) error {
	v, err := viewer.New(gen)
	if err != nil {
		return fmt.Errorf("initialize viewer: %w", err)
	}
	return v.Run(ctx)
}

// setupOTelEnv maps ROOMWEAVE_OTLP_* variables onto the standard OTEL_*
// ones the exporter reads. Existing OTEL_* values win.
func setupOTelEnv() {
	mapping := map[string]string{
		"ROOMWEAVE_OTLP_ENDPOINT": "OTEL_EXPORTER_OTLP_ENDPOINT",
		"ROOMWEAVE_OTLP_HEADERS":  "OTEL_EXPORTER_OTLP_HEADERS",
	}
	for from, to := range mapping {
		value := os.Getenv(from)
		if value == "" || os.Getenv(to) != "" {
			continue
		}
		os.Setenv(to, value)
	}
}
