package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/wheel-of-fortune/internal/config"
	"github.com/iburimskiy/wheel-of-fortune/internal/game"
	"github.com/iburimskiy/wheel-of-fortune/internal/kvstore"
	"github.com/iburimskiy/wheel-of-fortune/internal/log"
	"github.com/iburimskiy/wheel-of-fortune/internal/sound"
	"github.com/iburimskiy/wheel-of-fortune/internal/wheel"
)

type cliArgs struct {
	configPath string
	dataDir    string
	logLevel   string
	seed       uint64
	mute       bool
}

func parseFlags() cliArgs {
	var args cliArgs
	flag.StringVar(&args.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	flag.StringVar(&args.dataDir, "data-dir", "", "Directory holding the saved segments")
	flag.StringVar(&args.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.Uint64Var(&args.seed, "seed", 0, "Fixed random seed for spins (0 = random)")
	flag.BoolVar(&args.mute, "mute", false, "Disable sound")
	flag.Parse()
	return args
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(s *config.Settings, args cliArgs) {
	if args.dataDir != "" {
		s.DataDir = args.dataDir
	}
	if args.logLevel != "" {
		s.LogLevel = args.logLevel
	}
	if args.seed != 0 {
		s.Seed = args.seed
	}
	if args.mute {
		s.Sound.Enabled = false
	}
}

func run() error {
	args := parseFlags()

	settings, err := config.Load(args.configPath)
	if err != nil {
		return err
	}
	applyFlags(&settings, args)

	logger, err := log.Setup(settings.LogLevel)
	if err != nil {
		logger.Warn("falling back to info logging", "err", err)
	}

	kv, err := kvstore.Open(settings.DataDir)
	if err != nil {
		return err
	}
	store := wheel.NewStore(kv, settings.StorageKey, settings.Palette, wheel.WithLogger(logger))
	if err := store.Load(); err != nil {
		return err
	}

	var rng *rand.Rand
	if settings.Seed != 0 {
		rng = wheel.NewSeededRand(settings.Seed)
	}

	g, err := game.NewGame(game.Options{
		Store:    store,
		Spinner:  wheel.NewSpinner(settings.SpinDuration, settings.MinTurns, rng),
		History:  wheel.NewHistory(settings.HistorySize),
		Prompter: game.ZenityPrompter{},
		Sound:    newSound(settings.Sound, logger),
		Logger:   logger,
		Radius:   settings.Radius,
	})
	if err != nil {
		return err
	}
	defer func() { _ = g.Close() }()

	logger.Info("starting", "data_dir", kv.Dir(), "segments", store.Len())

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Wheel of Fortune - A: add, E: edit, D: delete, Space: spin, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newSound(s config.Sound, logger *slog.Logger) sound.Player {
	if !s.Enabled {
		return sound.Nop{}
	}
	sp, err := sound.NewSpeaker(s.Volume, s.WinFile, logger)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return sound.Nop{}
	}
	return sp
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wheel-of-fortune:", err)
		os.Exit(1)
	}
}
