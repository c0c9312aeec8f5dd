package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
)

var (
	flagSimTicks     int
	flagSimWidth     float64
	flagSimHeight    float64
	flagSimJumpEvery int
	flagSimAutopilot bool
	flagSimCap       int
	flagSimCollected int
	flagSimJSON      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session",
	Long: `Run one session without a display and print how it went. The same
seed and flags always produce the same result.

Examples:
  gargoyle simulate --seed 42
  gargoyle simulate --seed 42 --autopilot --ticks 5000
  gargoyle simulate --jump-every 30 --json`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum ticks to run")
	simulateCmd.Flags().Float64Var(&flagSimWidth, "width", 480, "Viewport width in pixels")
	simulateCmd.Flags().Float64Var(&flagSimHeight, "height", 800, "Viewport height in pixels")
	simulateCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Flap every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Steer through the gaps")
	simulateCmd.Flags().IntVar(&flagSimCap, "cap", 10, "Daily coin cap")
	simulateCmd.Flags().IntVar(&flagSimCollected, "collected", 0, "Coins already collected today")
	simulateCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print the result as JSON")
}

type simulateReport struct {
	Seed      int64   `json:"seed"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Ticks     uint64  `json:"ticks"`
	Score     int     `json:"score"`
	Collected int     `json:"collected"`
	Gained    int     `json:"coins_gained"`
	Flaps     int     `json:"flaps"`
	GameOver  bool    `json:"game_over"`
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	params := cfg.ToParams()
	e := gargoyle.NewEngine(
		gargoyle.WithSeed(seed),
		gargoyle.WithParams(params),
		gargoyle.WithDailyCap(flagSimCap),
	)

	gained := 0
	e.Start(flagSimWidth, flagSimHeight, flagSimCollected, gargoyle.Events{
		CoinCollected: func() { gained++ },
	})

	pilot := gargoyle.FlapEvery(flagSimJumpEvery)
	if flagSimAutopilot {
		pilot = gargoyle.Autopilot(params)
	}
	res := gargoyle.Run(e, flagSimTicks, pilot)

	snap := e.Snapshot()
	report := simulateReport{
		Seed:      seed,
		Width:     snap.Width,
		Height:    snap.Height,
		Ticks:     res.Ticks,
		Score:     res.Score,
		Collected: res.Collected,
		Gained:    gained,
		Flaps:     res.Flaps,
		GameOver:  res.Over,
	}

	if flagSimJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			exitf("%v", err)
		}
		return
	}

	fmt.Printf("Seed:       %d\n", report.Seed)
	fmt.Printf("Viewport:   %.0fx%.0f\n", report.Width, report.Height)
	fmt.Printf("Ticks:      %d\n", report.Ticks)
	fmt.Printf("Flaps:      %d\n", report.Flaps)
	fmt.Printf("Score:      %d\n", report.Score)
	fmt.Printf("Coins:      %d/%d (+%d)\n", report.Collected, e.DailyCap(), report.Gained)
	if report.GameOver {
		fmt.Println("Result:     game over")
	} else {
		fmt.Println("Result:     still flying")
	}
}
