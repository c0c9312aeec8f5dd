package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gargoyle/internal/platform/desktop"
	"github.com/vovakirdan/flappy-gargoyle/internal/share"
)

var flagWindowHeight int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Flappy Gargoyle in a desktop window with sprites from the
configured assets directory. Missing sprites are drawn as simple shapes.

Controls:
  Space/Up/W/Click/Tap - Flap (and start from the menu)
  P                    - Pause
  C                    - Claim coins (menu)
  X                    - Reset today's coins (menu)
  S                    - Share last score (menu)
  Esc                  - Quit`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", desktop.DefaultHeight, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger("gargoyle")
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = flagFPS
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := desktop.Options{
		Config:   cfg,
		Assets:   loadAssets(ctx, cfg, logger),
		Logger:   logger,
		Wallet:   flagWallet,
		Seed:     flagSeed,
		Height:   flagWindowHeight,
		EmbedURL: share.DefaultEmbedURL,
	}

	store, tracker, err := openLedger(cfg)
	if err != nil {
		logger.Warn("could not open database, coins and scores will not be saved", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
		opts.Tracker = tracker
	}

	if err := desktop.Run(opts); err != nil {
		exitf("%v", err)
	}
}
