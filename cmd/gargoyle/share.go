package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gargoyle/internal/share"
)

var flagShareEmbed string

var shareCmd = &cobra.Command{
	Use:   "share <score>",
	Short: "Print a share link for a score",
	Long: `Print a Warpcast compose link announcing the score.

Examples:
  gargoyle share 42
  gargoyle share 42 --embed https://example.com`,
	Args: cobra.ExactArgs(1),
	Run:  runShare,
}

func init() {
	shareCmd.Flags().StringVar(&flagShareEmbed, "embed", share.DefaultEmbedURL, "Link attached to the cast")
}

func runShare(cmd *cobra.Command, args []string) {
	score, err := strconv.Atoi(args[0])
	if err != nil || score < 0 {
		exitf("score must be a non-negative integer, got %q", args[0])
	}
	fmt.Println(share.Text(score))
	fmt.Println()
	fmt.Println(share.ComposeURL(score, flagShareEmbed))
}
