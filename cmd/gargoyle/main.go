// gargoyle is Flappy Gargoyle: a one-button arcade game for the terminal, a
// desktop window, or SSH, with a daily coin ledger.
//
// Usage:
//
//	gargoyle list                 - List game modes
//	gargoyle play [mode]          - Play in the terminal
//	gargoyle window               - Play in a desktop window
//	gargoyle serve                - Serve the game over SSH (and HTTP with --http)
//	gargoyle scores [mode]        - Show high scores
//	gargoyle progress [reset]     - Show or reset today's coins
//	gargoyle claim                - Claim today's unclaimed coins
//	gargoyle share <score>        - Print a share link for a score
//	gargoyle simulate             - Run a headless session
//	gargoyle snapshot             - Render one frame to PNG
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/gargoyle.db)
//	--wallet <address>  - Wallet the coins and scores belong to
//	--config <path>     - Custom config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gargoyle/internal/config"
	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
	"github.com/vovakirdan/flappy-gargoyle/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagWallet   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gargoyle",
	Short: "Flappy Gargoyle - flap through the pipes, collect coins",
	Long: `Flappy Gargoyle is a one-button arcade game. Tap to flap, fly through
the gaps between pipes, and pick up coins. Coins count towards a daily cap
per wallet and can be claimed once collected.

Available commands:
  list      - Show game modes
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start the SSH server (and HTTP API)
  scores    - View high scores
  progress  - Show or reset today's coins
  claim     - Claim unclaimed coins
  share     - Print a share link
  simulate  - Run a headless session
  snapshot  - Render one frame to PNG

Examples:
  gargoyle play
  gargoyle play practice
  gargoyle window --wallet 0xabc
  gargoyle serve --ssh :2222 --http :8080
  gargoyle simulate --seed 42 --autopilot`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/gargoyle.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagWallet, "wallet", rewards.GuestWallet, "Wallet that owns coins and scores")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger creates the process logger at the --log-level threshold.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the config and applies its tuning to new games.
func loadConfig() (config.GargoyleConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	gargoyle.SetParams(cfg.ToParams())
	return cfg, nil
}

// openLedger opens the database and a coin tracker on top of it.
func openLedger(cfg config.GargoyleConfig) (*storage.Store, *rewards.Tracker, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, rewards.NewTracker(store, rewards.WithDailyCap(cfg.Coins.DailyCap)), nil
}

// loadAssets starts loading sprites in the background and shares them with
// new games. Frames painted before a sprite is ready use fallback shapes.
func loadAssets(ctx context.Context, cfg config.GargoyleConfig, logger *log.Logger) *render.Assets {
	assets := render.NewAssets(cfg.Assets.AssetPaths)
	assets.Load(ctx, render.FileLoader{Root: cfg.AssetRoot()}, logger)
	gargoyle.SetAssets(assets)
	return assets
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
