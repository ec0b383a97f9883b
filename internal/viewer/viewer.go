// Package viewer provides the interactive terminal layout viewer.
package viewer

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomweave/internal/layout"
	"github.com/samdwyer/roomweave/internal/telemetry"
	"github.com/samdwyer/roomweave/internal/theme"
	"github.com/samdwyer/roomweave/internal/ui"
)

// Viewer shows a layout in the terminal and rebuilds it on request.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	layers   ui.Layer
	running  bool
}

// New creates a viewer around the generator.
func New(gen *layout.Generator) (*Viewer, error) {
	palette, err := theme.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  NewSession(gen),
		layers:   ui.LayersAll,
		running:  true,
	}, nil
}

// Run executes the main viewer loop.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	tracer := telemetry.Tracer("viewer")
	ctx, initSpan := tracer.Start(ctx, "viewer.init")
	err := v.session.Regenerate(ctx, v.session.Seed())
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	initSpan.SetAttributes(attribute.Int64("layout.seed", v.session.Seed()))
	initSpan.End()

	for v.running {
		v.renderer.Render(v.session.Layout(), v.session.Points(), v.layers)

		if err := v.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRune:
		action, ok := keyActions[ev.Rune()]
		if !ok {
			return nil
		}
		switch action {
		case actionQuit:
			v.running = false
		case actionReseed:
			return v.session.Regenerate(ctx, v.session.Seed()+1)
		default:
			v.layers = action.apply(v.layers)
		}
	}
	return nil
}
