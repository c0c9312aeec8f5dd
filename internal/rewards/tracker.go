package rewards

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithDailyCap overrides MaxCoinsPerDay.
func WithDailyCap(limit int) Option {
	return func(t *Tracker) {
		if limit >= 0 {
			t.limit = limit
		}
	}
}

// Tracker applies the daily cap on top of a Store. Days roll over at local
// midnight; a new day starts with an empty row.
type Tracker struct {
	store Store
	now   func() time.Time
	limit int

	mu sync.Mutex // Serializes read-modify-write cycles
}

// NewTracker creates a tracker backed by store.
func NewTracker(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		limit: MaxCoinsPerDay,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DailyCap returns the per-day coin limit.
func (t *Tracker) DailyCap() int {
	return t.limit
}

// Day returns today's ledger key.
func (t *Tracker) Day() string {
	return t.now().Format(DayLayout)
}

// Today returns the wallet's progress for the current day.
func (t *Tracker) Today(ctx context.Context, wallet string) (Progress, error) {
	p, err := t.store.LoadProgress(ctx, NormalizeWallet(wallet), t.Day())
	if err != nil {
		return Progress{}, fmt.Errorf("rewards: load progress: %w", err)
	}
	return p, nil
}

// RecordCoin counts one collected coin. At the cap the ledger is left
// unchanged and counted is false.
func (t *Tracker) RecordCoin(ctx context.Context, wallet string) (p Progress, counted bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err = t.Today(ctx, wallet)
	if err != nil {
		return Progress{}, false, err
	}
	if p.Total >= t.limit {
		return p, false, nil
	}

	p.Total++
	p.Claimable++
	p.UpdatedAt = t.now()
	if err := t.store.SaveProgress(ctx, p); err != nil {
		return Progress{}, false, fmt.Errorf("rewards: save progress: %w", err)
	}
	return p, true, nil
}

// Reset zeroes today's total and claimable balance for the wallet.
func (t *Tracker) Reset(ctx context.Context, wallet string) (Progress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := Progress{
		Wallet:    NormalizeWallet(wallet),
		Day:       t.Day(),
		UpdatedAt: t.now(),
	}
	if err := t.store.SaveProgress(ctx, p); err != nil {
		return Progress{}, fmt.Errorf("rewards: reset progress: %w", err)
	}
	return p, nil
}

// Claim files a pending claim for every unclaimed coin and zeroes the
// claimable balance. Today's total is kept, so claiming does not reopen the
// daily cap.
func (t *Tracker) Claim(ctx context.Context, wallet string) (Claim, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.Today(ctx, wallet)
	if err != nil {
		return Claim{}, err
	}
	if p.Claimable <= 0 {
		return Claim{}, ErrNothingToClaim
	}

	now := t.now()
	c := Claim{
		ID:        uuid.New(),
		Wallet:    p.Wallet,
		Coins:     p.Claimable,
		Amount:    AmountFor(p.Claimable),
		Status:    ClaimPending,
		CreatedAt: now,
	}
	if err := t.store.SaveClaim(ctx, c); err != nil {
		return Claim{}, fmt.Errorf("rewards: save claim: %w", err)
	}

	p.Claimable = 0
	p.UpdatedAt = now
	if err := t.store.SaveProgress(ctx, p); err != nil {
		return Claim{}, fmt.Errorf("rewards: save progress: %w", err)
	}
	return c, nil
}

// Claims lists the wallet's claims, newest first.
func (t *Tracker) Claims(ctx context.Context, wallet string, limit int) ([]Claim, error) {
	claims, err := t.store.Claims(ctx, NormalizeWallet(wallet), limit)
	if err != nil {
		return nil, fmt.Errorf("rewards: list claims: %w", err)
	}
	return claims, nil
}
