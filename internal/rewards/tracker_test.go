package rewards

import (
	"context"
	"errors"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestTracker() (*Tracker, *clock, *MemoryStore) {
	c := &clock{t: time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)}
	store := NewMemoryStore()
	return NewTracker(store, WithClock(c.now)), c, store
}

func TestTodayEmpty(t *testing.T) {
	tr, _, _ := newTestTracker()
	p, err := tr.Today(context.Background(), "")
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if p.Wallet != GuestWallet || p.Day != "2026-03-14" || p.Total != 0 || p.Claimable != 0 {
		t.Errorf("progress = %+v", p)
	}
}

func TestRecordCoinRespectsCap(t *testing.T) {
	tr, _, _ := newTestTracker()
	ctx := context.Background()

	for i := 1; i <= MaxCoinsPerDay; i++ {
		p, counted, err := tr.RecordCoin(ctx, "0xABC")
		if err != nil {
			t.Fatalf("RecordCoin: %v", err)
		}
		if !counted || p.Total != i || p.Claimable != i {
			t.Fatalf("coin %d: counted=%v progress=%+v", i, counted, p)
		}
	}

	p, counted, err := tr.RecordCoin(ctx, "0xabc")
	if err != nil {
		t.Fatalf("RecordCoin: %v", err)
	}
	if counted || p.Total != MaxCoinsPerDay {
		t.Errorf("coin past cap: counted=%v progress=%+v", counted, p)
	}
	if p.Remaining(tr.DailyCap()) != 0 {
		t.Errorf("remaining = %d, want 0", p.Remaining(tr.DailyCap()))
	}
}

func TestDayRollover(t *testing.T) {
	tr, c, _ := newTestTracker()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := tr.RecordCoin(ctx, "w"); err != nil {
			t.Fatal(err)
		}
	}
	c.t = c.t.Add(24 * time.Hour)

	p, err := tr.Today(ctx, "w")
	if err != nil {
		t.Fatal(err)
	}
	if p.Total != 0 || p.Claimable != 0 || p.Day != "2026-03-15" {
		t.Errorf("next day progress = %+v, want empty", p)
	}
}

func TestClaim(t *testing.T) {
	tr, _, _ := newTestTracker()
	ctx := context.Background()

	if _, err := tr.Claim(ctx, "w"); !errors.Is(err, ErrNothingToClaim) {
		t.Fatalf("err = %v, want ErrNothingToClaim", err)
	}

	for i := 0; i < 4; i++ {
		if _, _, err := tr.RecordCoin(ctx, "w"); err != nil {
			t.Fatal(err)
		}
	}
	c, err := tr.Claim(ctx, "w")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if c.Coins != 4 || c.Status != ClaimPending || c.Wallet != "w" {
		t.Errorf("claim = %+v", c)
	}
	if got := c.Amount.String(); got != "4000000000000000000" {
		t.Errorf("amount = %s, want 4e18", got)
	}

	p, _ := tr.Today(ctx, "w")
	if p.Claimable != 0 || p.Total != 4 {
		t.Errorf("progress after claim = %+v, want total 4 claimable 0", p)
	}

	if _, err := tr.Claim(ctx, "w"); !errors.Is(err, ErrNothingToClaim) {
		t.Errorf("second claim err = %v, want ErrNothingToClaim", err)
	}

	claims, err := tr.Claims(ctx, "W", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(claims) != 1 || claims[0].ID != c.ID {
		t.Errorf("claims = %+v", claims)
	}
}

func TestClaimKeepsCapClosed(t *testing.T) {
	tr, _, _ := newTestTracker()
	ctx := context.Background()
	for i := 0; i < MaxCoinsPerDay; i++ {
		tr.RecordCoin(ctx, "w")
	}
	if _, err := tr.Claim(ctx, "w"); err != nil {
		t.Fatal(err)
	}
	if _, counted, _ := tr.RecordCoin(ctx, "w"); counted {
		t.Error("claiming must not reopen the daily cap")
	}
}

func TestReset(t *testing.T) {
	tr, _, _ := newTestTracker()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		tr.RecordCoin(ctx, "w")
	}

	p, err := tr.Reset(ctx, "w")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if p.Total != 0 || p.Claimable != 0 {
		t.Errorf("after reset = %+v", p)
	}
	if _, counted, _ := tr.RecordCoin(ctx, "w"); !counted {
		t.Error("reset should reopen the cap")
	}
}

func TestCustomCap(t *testing.T) {
	tr := NewTracker(NewMemoryStore(), WithDailyCap(2))
	ctx := context.Background()
	tr.RecordCoin(ctx, "w")
	tr.RecordCoin(ctx, "w")
	if _, counted, _ := tr.RecordCoin(ctx, "w"); counted {
		t.Error("third coin should exceed a cap of 2")
	}
}

type failingStore struct{ *MemoryStore }

func (f *failingStore) SaveProgress(context.Context, Progress) error {
	return errors.New("disk full")
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	tr := NewTracker(&failingStore{MemoryStore: NewMemoryStore()})
	_, _, err := tr.RecordCoin(context.Background(), "w")
	if err == nil || err.Error() != "rewards: save progress: disk full" {
		t.Errorf("err = %v", err)
	}
}

func TestNormalizeWallet(t *testing.T) {
	tests := map[string]string{
		"":          GuestWallet,
		"  ":        GuestWallet,
		" 0xAbC ":   "0xabc",
		"gargoyle1": "gargoyle1",
	}
	for in, want := range tests {
		if got := NormalizeWallet(in); got != want {
			t.Errorf("NormalizeWallet(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAmountFor(t *testing.T) {
	if got := AmountFor(0).String(); got != "0" {
		t.Errorf("AmountFor(0) = %s", got)
	}
	if got := AmountFor(10).String(); got != "10000000000000000000" {
		t.Errorf("AmountFor(10) = %s", got)
	}
}
