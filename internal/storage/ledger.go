package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
)

// Ensure Store implements rewards.Store
var _ rewards.Store = (*Store)(nil)

// LoadProgress implements rewards.Store.
func (s *Store) LoadProgress(ctx context.Context, wallet, day string) (rewards.Progress, error) {
	p := rewards.Progress{Wallet: wallet, Day: day}
	var updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT total, claimable, updated_at
		 FROM daily_progress
		 WHERE wallet = ? AND day = ?`,
		wallet, day,
	).Scan(&p.Total, &p.Claimable, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return rewards.Progress{}, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	p.UpdatedAt = scanTime(updatedAt)
	return p, nil
}

// SaveProgress implements rewards.Store.
func (s *Store) SaveProgress(ctx context.Context, p rewards.Progress) error {
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_progress (wallet, day, total, claimable, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(wallet, day) DO UPDATE SET
		   total = excluded.total,
		   claimable = excluded.claimable,
		   updated_at = excluded.updated_at`,
		p.Wallet, p.Day, p.Total, p.Claimable, updated.UTC().Format(storedTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// SaveClaim implements rewards.Store.
func (s *Store) SaveClaim(ctx context.Context, c rewards.Claim) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO claims (id, wallet, coins, amount, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.Wallet, c.Coins, c.Amount.String(), string(c.Status),
		c.CreatedAt.UTC().Format(storedTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save claim: %w", err)
	}
	return nil
}

// Claims implements rewards.Store.
func (s *Store) Claims(ctx context.Context, wallet string, limit int) ([]rewards.Claim, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, wallet, coins, amount, status, created_at
		 FROM claims
		 WHERE wallet = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		wallet, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query claims: %w", err)
	}
	defer rows.Close()

	var claims []rewards.Claim
	for rows.Next() {
		var (
			c                   rewards.Claim
			id, amount, created string
			status              string
		)
		if err := rows.Scan(&id, &c.Wallet, &c.Coins, &amount, &status, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan claim: %w", err)
		}
		if c.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad claim id %q: %w", id, err)
		}
		if c.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("storage: bad claim amount %q: %w", amount, err)
		}
		c.Status = rewards.ClaimStatus(status)
		c.CreatedAt = scanTime(created)
		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return claims, nil
}
