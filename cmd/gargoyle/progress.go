package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show today's coins for a wallet",
	Long: `Show how many coins the wallet collected today, how many are still
unclaimed, and how many more count before the daily cap.

Examples:
  gargoyle progress --wallet 0xabc
  gargoyle progress reset --wallet 0xabc`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset today's coins for a wallet",
	Long:  `Sets today's collected and unclaimed coins back to zero. Filed claims are kept.`,
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

var flagClaimsHistory int

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim today's unclaimed coins",
	Long: `File a claim for every unclaimed coin the wallet collected today.

With --history the wallet's recent claims are listed instead.`,
	Args: cobra.NoArgs,
	Run:  runClaim,
}

func init() {
	progressCmd.AddCommand(progressResetCmd)
	claimCmd.Flags().IntVar(&flagClaimsHistory, "history", 0, "List this many recent claims instead of filing one")
}

func openTracker() (*rewards.Tracker, func()) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	store, tracker, err := openLedger(cfg)
	if err != nil {
		exitf("opening database: %v", err)
	}
	return tracker, func() { store.Close() }
}

func printProgress(p rewards.Progress, limit int) {
	fmt.Printf("Wallet:     %s\n", p.Wallet)
	fmt.Printf("Day:        %s\n", p.Day)
	fmt.Printf("Collected:  %d/%d\n", p.Total, limit)
	fmt.Printf("Unclaimed:  %d\n", p.Claimable)
	fmt.Printf("Remaining:  %d\n", p.Remaining(limit))
}

func runProgress(cmd *cobra.Command, args []string) {
	tracker, closeStore := openTracker()
	defer closeStore()

	p, err := tracker.Today(context.Background(), flagWallet)
	if err != nil {
		exitf("%v", err)
	}
	printProgress(p, tracker.DailyCap())
}

func runProgressReset(cmd *cobra.Command, args []string) {
	tracker, closeStore := openTracker()
	defer closeStore()

	p, err := tracker.Reset(context.Background(), flagWallet)
	if err != nil {
		exitf("%v", err)
	}
	fmt.Println("Today's coins were reset.")
	fmt.Println()
	printProgress(p, tracker.DailyCap())
}

func runClaim(cmd *cobra.Command, args []string) {
	tracker, closeStore := openTracker()
	defer closeStore()
	ctx := context.Background()

	if flagClaimsHistory > 0 {
		claims, err := tracker.Claims(ctx, flagWallet, flagClaimsHistory)
		if err != nil {
			exitf("%v", err)
		}
		if len(claims) == 0 {
			fmt.Println("No claims filed yet.")
			return
		}
		fmt.Printf("  %-36s  %-5s  %-8s  %s\n", "ID", "Coins", "Status", "Filed")
		for _, c := range claims {
			fmt.Printf("  %-36s  %-5d  %-8s  %s\n", c.ID, c.Coins, c.Status, c.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	c, err := tracker.Claim(ctx, flagWallet)
	if errors.Is(err, rewards.ErrNothingToClaim) {
		fmt.Println("Nothing to claim yet. Collect some coins first!")
		return
	}
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Claimed %d coins for %s\n", c.Coins, c.Wallet)
	fmt.Printf("  Claim:  %s\n", c.ID)
	fmt.Printf("  Amount: %s base units\n", c.Amount.String())
	fmt.Printf("  Status: %s\n", c.Status)
}
