package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/flappy-gargoyle/internal/api"
	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/platform/tui"
	"github.com/vovakirdan/flappy-gargoyle/internal/share"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagEmbedURL    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and optional HTTP API",
	Long: `Start an SSH server that lets users connect and play. The SSH user
name is the wallet coins and scores are recorded under.

With --http the coin ledger, scores and share links are also served over
HTTP from the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  gargoyle serve                      # SSH on :23234
  gargoyle serve --ssh :2222          # SSH on port 2222
  gargoyle serve --http :8080         # SSH plus the HTTP API

Users can connect with:
  ssh 0xabc@localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (empty disables the API)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagEmbedURL, "embed-url", share.DefaultEmbedURL, "Link attached to share casts")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("gargoyle-serve")
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	loadAssets(ctx, cfg, logger)

	store, tracker, err := openLedger(cfg)
	if err != nil {
		exitf("opening database: %v", err)
	}
	defer store.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, tui.Options{
		Store:    store,
		Tracker:  tracker,
		Config:   cfg,
		Runtime:  core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Logger:   logger,
		EmbedURL: flagEmbedURL,
	})
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Flappy Gargoyle SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	if flagHTTPAddr != "" {
		srv := api.NewServer(tracker, store, api.WithLogger(logger), api.WithEmbedURL(flagEmbedURL))
		g.Go(func() error {
			return srv.ListenAndServe(ctx, flagHTTPAddr)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		exitf("server: %v", err)
	}
}
