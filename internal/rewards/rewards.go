// Package rewards keeps the per-wallet daily coin ledger: how many coins a
// wallet picked up today, how many are still unclaimed, and the claims it
// has filed.
package rewards

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxCoinsPerDay is the default daily collection cap.
	MaxCoinsPerDay = 10
	// GuestWallet is used when no wallet is connected.
	GuestWallet = "guest"
	// DayLayout formats the calendar day a ledger row belongs to.
	DayLayout = "2006-01-02"
	// TokenDecimals is the precision of the reward token.
	TokenDecimals = 18
)

// ErrNothingToClaim is returned by Claim when no unclaimed coins remain.
var ErrNothingToClaim = errors.New("rewards: nothing to claim")

// ClaimStatus is the lifecycle state of a claim.
type ClaimStatus string

// ClaimPending marks a claim awaiting payout.
const ClaimPending ClaimStatus = "pending"

// Progress is one wallet's ledger row for one day.
type Progress struct {
	Wallet    string    `json:"wallet"`
	Day       string    `json:"day"`
	Total     int       `json:"total"`     // Coins counted today, claimed or not
	Claimable int       `json:"claimable"` // Coins not yet claimed
	UpdatedAt time.Time `json:"updated_at"`
}

// Remaining returns how many more coins can count today under limit.
func (p Progress) Remaining(limit int) int {
	if n := limit - p.Total; n > 0 {
		return n
	}
	return 0
}

// Claim converts unclaimed coins into a token amount for payout.
type Claim struct {
	ID        uuid.UUID       `json:"id"`
	Wallet    string          `json:"wallet"`
	Coins     int             `json:"coins"`
	Amount    decimal.Decimal `json:"amount"` // Base units, coins × 10^18
	Status    ClaimStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// AmountFor converts a coin count into token base units.
func AmountFor(coins int) decimal.Decimal {
	return decimal.NewFromInt(int64(coins)).Shift(TokenDecimals)
}

// NormalizeWallet trims and lowercases a wallet address. An empty wallet
// becomes GuestWallet.
func NormalizeWallet(wallet string) string {
	wallet = strings.ToLower(strings.TrimSpace(wallet))
	if wallet == "" {
		return GuestWallet
	}
	return wallet
}

// Store persists ledger rows and claims.
type Store interface {
	// LoadProgress returns the row for wallet and day, or a zero row with
	// Wallet and Day set when none exists.
	LoadProgress(ctx context.Context, wallet, day string) (Progress, error)
	SaveProgress(ctx context.Context, p Progress) error
	SaveClaim(ctx context.Context, c Claim) error
	// Claims returns the wallet's claims, newest first.
	Claims(ctx context.Context, wallet string, limit int) ([]Claim, error)
}
