package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/platform/tui"
	"github.com/vovakirdan/flappy-gargoyle/internal/share"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play Flappy Gargoyle in the terminal.

Without a mode the menu opens first. With a mode the session starts
right away: "standard" counts coins, "practice" does not.

Controls:
  Space/Up/W/Click - Flap
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back to menu (after game over or paused)
  Q/Ctrl+C         - Quit

Examples:
  gargoyle play
  gargoyle play practice
  gargoyle play standard --wallet 0xabc --seed 42`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"standard", "practice"},
	Run:       runPlay,
}

// modeGameID maps a play mode to its registered game ID.
func modeGameID(mode string) (string, error) {
	switch mode {
	case "", "standard", gargoyle.GameID:
		return gargoyle.GameID, nil
	case "practice", gargoyle.PracticeGameID:
		return gargoyle.PracticeGameID, nil
	}
	return "", fmt.Errorf("unknown mode %q (want standard or practice)", mode)
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := modeGameID(mode)
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger("gargoyle")
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loadAssets(ctx, cfg, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:    logger,
		Wallet:    flagWallet,
		EmbedURL:  share.DefaultEmbedURL,
		GameID:    gameID,
		AutoStart: mode != "",
	}

	// The game still works without storage
	store, tracker, err := openLedger(cfg)
	if err != nil {
		logger.Warn("could not open database, coins and scores will not be saved", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
		opts.Tracker = tracker
	}

	if err := tui.Run(opts); err != nil {
		exitf("running game: %v", err)
	}
}
