package rewards

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store for hosts running without a database.
type MemoryStore struct {
	mu       sync.Mutex
	progress map[[2]string]Progress
	claims   []Claim
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{progress: make(map[[2]string]Progress)}
}

// LoadProgress implements Store.
func (m *MemoryStore) LoadProgress(_ context.Context, wallet, day string) (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.progress[[2]string{wallet, day}]; ok {
		return p, nil
	}
	return Progress{Wallet: wallet, Day: day}, nil
}

// SaveProgress implements Store.
func (m *MemoryStore) SaveProgress(_ context.Context, p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress[[2]string{p.Wallet, p.Day}] = p
	return nil
}

// SaveClaim implements Store.
func (m *MemoryStore) SaveClaim(_ context.Context, c Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claims = append(m.claims, c)
	return nil
}

// Claims implements Store.
func (m *MemoryStore) Claims(_ context.Context, wallet string, limit int) ([]Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Claim
	for _, c := range m.claims {
		if c.Wallet == wallet {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
