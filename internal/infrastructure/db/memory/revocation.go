package memory

import (
	"context"
	"sync"
	"time"
)

// RevocationList remembers revoked session ids until their expiry.
// Expired entries are pruned lazily on Revoke.
type RevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]time.Time), now: time.Now}
}

func (l *RevocationList) Revoke(_ context.Context, sessionID string, until time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, exp := range l.revoked {
		if !exp.After(now) {
			delete(l.revoked, id)
		}
	}
	if until.After(now) {
		l.revoked[sessionID] = until
	}
	return nil
}

func (l *RevocationList) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	exp, ok := l.revoked[sessionID]
	return ok && exp.After(l.now()), nil
}
