package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ArowuTest/engage-crm/internal/repositories"
)

var _ repositories.TokenBlacklist = (*TokenBlacklist)(nil)

// TokenBlacklist keeps revoked token ids in memory until they expire
type TokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenBlacklist creates an empty TokenBlacklist
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke marks the token id as revoked for ttl
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[tokenID] = b.now().Add(ttl)
	return nil
}

// IsRevoked reports whether the token id is revoked and not yet expired
func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	until, ok := b.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if b.now().After(until) {
		delete(b.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
