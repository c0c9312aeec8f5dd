package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-gargoyle/internal/platform/tui"
	"github.com/vovakirdan/flappy-gargoyle/internal/registry"
)

var (
	flagScoresLimit int
	flagScoresTable bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode (standard by default).

With --table an interactive scoreboard opens instead.

Examples:
  gargoyle scores
  gargoyle scores practice --limit 20
  gargoyle scores --table`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := modeGameID(mode)
	if err != nil {
		exitf("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	store, tracker, err := openLedger(cfg)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err := tui.RunScoreboard(tui.ScoreboardOptions{
			Store:   store,
			Tracker: tracker,
			Wallet:  flagWallet,
			Width:   width,
			Height:  height,
		})
		if err != nil {
			exitf("%v", err)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("%v", err)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gargoyle play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-20s  %s\n", "Rank", "Score", "Wallet", "Date")
	fmt.Printf("  %-4s  %-8s  %-20s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-20s  %s\n", i+1, entry.Score, entry.Wallet, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
