package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/redis/go-redis/v9"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/logger"
	"snake-arcade/store"
	"snake-arcade/ui"
	"snake-arcade/ui/window"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	uiMode := flag.String("ui", cfg.UI, "Frontend to run: window or terminal")
	seed := flag.Uint64("seed", cfg.Seed, "Food placement seed (0 = from clock)")
	flag.Parse()
	cfg.UI = *uiMode
	cfg.Seed = *seed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := store.CheckBackend(cfg.Store); err != nil {
		return err
	}

	switch cfg.UI {
	case "window":
		appLogger, err := logger.New("SNAKE", logger.ColorGreen, os.Stdout)
		if err != nil {
			return err
		}
		return runWindow(ctx, cfg, appLogger)
	case "terminal":
		logFile, err := openLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()

		appLogger, err := logger.New("SNAKE", "", logFile)
		if err != nil {
			return err
		}
		return runTerminal(ctx, cfg, appLogger)
	default:
		return fmt.Errorf("unknown ui %q", cfg.UI)
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore builds the configured high score backend. The returned closer
// releases it.
func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (manager.Store, io.Closer, error) {
	switch cfg.Store {
	case "memory":
		log.Info("Using in-memory high score store")
		return store.NewMemory(), nopCloser{}, nil
	case "file":
		s, err := store.NewFile(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info(fmt.Sprintf("Using high score file %s", cfg.StorePath))
		return s, nopCloser{}, nil
	case "redis":
		s := store.NewRedis(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), cfg.RedisKeyPrefix)
		if err := s.Ping(ctx); err != nil {
			log.Warning(fmt.Sprintf("Redis at %s is not reachable: %v", cfg.RedisAddr, err))
		} else {
			log.Info(fmt.Sprintf("Connected to Redis at %s", cfg.RedisAddr))
		}
		return s, s, nil
	default:
		return nil, nil, store.CheckBackend(cfg.Store)
	}
}

func newGame(ctx context.Context, cfg config.Config, surface game.Surface, log *logger.Logger) (*game.Game, io.Closer, error) {
	kv, closer, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	g, err := game.NewGame(ctx, surface, kv, entity.NewRand(cfg.Seed), log)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return g, closer, nil
}

func runWindow(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	frame := ui.NewFrame()
	g, closer, err := newGame(ctx, cfg, frame, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	renderer := window.NewRenderer(frame)
	renderer.Open("Snake 2.0")
	defer renderer.Close()

	loop := game.NewLoop(types.TickInterval)
	for !renderer.ShouldClose() && ctx.Err() == nil {
		for _, key := range renderer.PollKeys() {
			g.HandleKey(ctx, key)
		}
		if loop.Due(time.Now()) {
			if err := g.Tick(ctx); err != nil {
				log.Error(fmt.Sprintf("Tick failed: %v", err))
				return err
			}
		}
		renderer.Draw()
	}
	return nil
}

func runTerminal(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term := ui.NewTerminal(screen)
	g, closer, err := newGame(ctx, cfg, term, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := term.Keys(ctx, cancel)
	if err := game.NewLoop(types.TickInterval).Run(ctx, g, keys, term.Show); err != nil {
		log.Error(fmt.Sprintf("Tick failed: %v", err))
		return err
	}
	return nil
}
