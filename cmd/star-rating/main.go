package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-rating/audio"
	"github.com/lixenwraith/star-rating/config"
	"github.com/lixenwraith/star-rating/events"
	"github.com/lixenwraith/star-rating/raster"
	"github.com/lixenwraith/star-rating/terminal"
	"github.com/lixenwraith/star-rating/widget"
)

var (
	configFlag   = flag.String("config", "star-rating.yaml", "Path to YAML config (optional)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/star-rating.log")
	valueFlag    = flag.Int("value", 0, "Initial rating 1-5 (overrides config)")
	snapshotFlag = flag.String("snapshot", "", "Render the selector to a PNG file and exit")
)

// screen is package level so the crash handler can restore the terminal
var screen tcell.Screen

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTAR-RATING CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.LoadOptional(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply environment: %v\n", err)
		os.Exit(1)
	}
	if *valueFlag != 0 {
		cfg.InitialValue = *valueFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -value: %v\n", err)
			os.Exit(2)
		}
	}
	cfg.Log.Debug = cfg.Log.Debug || *debugFlag

	if logger := setupLogging(cfg.Log); logger != nil {
		defer logger.Close()
	}

	w := widget.New(cfg.WidgetOptions()...)
	w.Register(events.HandlerFunc[*widget.Widget]{
		Types: cfg.LoggedEvents(),
		Fn:    logEvent,
	})

	if *snapshotFlag != "" {
		if err := writeSnapshot(*snapshotFlag, w); err != nil {
			fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, w); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, w *widget.Widget) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen = s
	defer s.Fini()

	host := terminal.NewHost(s, w, cfg.Layout())
	host.SetTitle(FormatTitle(w.Value()))

	var sounds *audio.SoundManager
	if cfg.Audio.Enabled {
		sounds = audio.NewSoundManager(cfg.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, the selector works without sound
			log.Printf("audio: init failed: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	w.On(events.EventValueChanged, func(_ *widget.Widget, ev events.Event) {
		host.SetTitle(FormatTitle(ev.Value))
		if sounds != nil {
			sounds.PlayChime(ev.Value)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("star-rating: started value=%d policy=%s", w.Value(), cfg.DragNotify)
	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("star-rating: exit value=%d", w.Value())
	return nil
}

func logEvent(_ *widget.Widget, ev events.Event) {
	if ev.HasPoint {
		log.Printf("event: %s value=%d symbol=%d point=(%.1f,%.1f)",
			events.TypeName(ev.Type), ev.Value, ev.Symbol, ev.Point.X, ev.Point.Y)
		return
	}
	log.Printf("event: %s value=%d", events.TypeName(ev.Type), ev.Value)
}

func writeSnapshot(path string, w *widget.Widget) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	opts := raster.DefaultOptions
	opts.Label = FormatTitle(w.Value())
	if err := raster.WritePNG(f, raster.Render(w, opts)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	log.Printf("star-rating: snapshot written to %s", path)
	return nil
}
