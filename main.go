package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"petpal/internal/brain"
	"petpal/internal/config"
	"petpal/internal/game"
	"petpal/internal/pet"
	"petpal/internal/render"
	ebitenfe "petpal/internal/render/ebiten"
	"petpal/internal/ui"
)

func main() {
	if err := run(); err != nil {
		slog.Error("petpal: exiting", "err", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	gen := newGenerator(brain.New(context.Background(), cfg.Brain()))
	app := game.New(petFactory(cfg, gen), game.NewLayout(cfg.UI.Width, cfg.UI.Height))
	defer app.Close()

	slog.Info("petpal: starting", "frontend", cfg.UI.Frontend, "tick_rate", cfg.UI.TickRate)

	switch cfg.UI.Frontend {
	case config.FrontendTerminal:
		return ui.Run(app, cfg.UI.TickRate)
	default:
		engine, err := ebitenfe.NewEngine(app, render.NewScene(ebitenfe.LoadAssets(cfg.UI.AssetsDir)))
		if err != nil {
			return err
		}
		return engine.Run(ebitenfe.Options{Title: cfg.UI.Title, TickRate: cfg.UI.TickRate})
	}
}

// setupLogging installs the default slog logger. The terminal frontend owns
// the screen, so it logs to a file instead of stderr.
func setupLogging(cfg *config.Config) (func(), error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if cfg.UI.Frontend == config.FrontendTerminal {
		f, err := tea.LogToFile(cfg.Log.File, "petpal")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	slog.SetDefault(newLogger(w, level))
	return closer, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newGenerator falls back to canned messages when no AI brain is configured.
// A nil *brain.Brain must not end up inside the interface.
func newGenerator(b *brain.Brain) pet.Generator {
	if b == nil {
		return pet.Silent{}
	}
	return b
}

// petFactory builds each new pet from the config.
func petFactory(cfg *config.Config, gen pet.Generator) game.Factory {
	return func() *pet.Pet {
		opts := []pet.VoiceOption{pet.WithTimeout(cfg.AI.Timeout)}
		if !cfg.AI.Async {
			opts = append(opts, pet.WithSyncReplies())
		}
		return pet.New(
			pet.WithName(cfg.Pet.Name),
			pet.WithTuning(cfg.Tuning()),
			pet.WithVoice(pet.NewVoice(gen, opts...)),
		)
	}
}
