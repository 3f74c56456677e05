package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"creatures/internal/nn"
	"creatures/internal/render"
)

var newScreen = tcell.NewScreen

func runRender(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	brain := bindBrainFlags(fs)
	inputs := fs.String("inputs", "", "comma separated input values activated before drawing")
	target := fs.String("target", "brain", "what to draw: brain|creature")
	scale := fs.Float64("scale", 6, "world units per terminal cell")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(fs, common, brain)
	if err != nil {
		return err
	}

	var draw func(render.Graphics)
	switch *target {
	case "brain":
		network, err := buildNetwork(cfg.Brain)
		if err != nil {
			return err
		}
		if *inputs != "" {
			values, err := parseFloats(*inputs)
			if err != nil {
				return err
			}
			if _, err := network.Activate(values); err != nil {
				return err
			}
		}
		draw = func(g render.Graphics) {
			network.Render(g, render.Vector{}, nn.DefaultRenderOptions())
		}
	case "creature":
		seed := cfg.Brain.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c, _, err := buildCreature(cfg.Creature.Parts, cfg.Creature.RandomConnections, seed, cfg.Brain)
		if err != nil {
			return err
		}
		draw = c.Render
	default:
		return fmt.Errorf("unsupported render target: %s", *target)
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	drawScene(screen, *scale, draw)
	return waitForKey(ctx, screen, func() { drawScene(screen, *scale, draw) })
}

func drawScene(screen tcell.Screen, scale float64, draw func(render.Graphics)) {
	screen.Clear()
	terminal := render.NewTerminal(screen, scale)
	draw(terminal)
	terminal.Show()
}

// waitForKey redraws on resize and returns on the first key press, or when
// ctx is done.
func waitForKey(ctx context.Context, screen tcell.Screen, redraw func()) error {
	done := make(chan struct{})
	defer close(done)
	events, _ := pollEvents(screen, done, 16)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				screen.Sync()
				redraw()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. stopped is closed once the poller has exited.
func pollEvents(screen tcell.Screen, done <-chan struct{}, buffer int) (<-chan tcell.Event, <-chan struct{}) {
	events := make(chan tcell.Event, buffer)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events, stopped
}
