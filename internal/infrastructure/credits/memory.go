package credits

import (
	"context"
	"sync"

	"github.com/roomlens/backend/internal/domain"
)

// MemoryLedger is a thread-safe in-memory credit ledger. Users without an
// entry start at the configured initial balance, so a fresh user can try
// the service without an explicit grant.
type MemoryLedger struct {
	balances       map[string]int
	initialBalance int
	mutex          sync.RWMutex
}

// NewMemoryLedger creates an in-memory ledger with the given starting
// balance for unknown users.
func NewMemoryLedger(initialBalance int) *MemoryLedger {
	if initialBalance < 0 {
		initialBalance = 0
	}
	return &MemoryLedger{
		balances:       make(map[string]int),
		initialBalance: initialBalance,
	}
}

// Get returns the remaining credits for a user.
func (l *MemoryLedger) Get(ctx context.Context, userID string) (int, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if balance, exists := l.balances[userID]; exists {
		return balance, nil
	}
	return l.initialBalance, nil
}

// Decrement consumes one credit, failing with ErrNoCredits at zero.
func (l *MemoryLedger) Decrement(ctx context.Context, userID string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	balance, exists := l.balances[userID]
	if !exists {
		balance = l.initialBalance
	}
	if balance <= 0 {
		return domain.ErrNoCredits
	}

	l.balances[userID] = balance - 1
	return nil
}

// Grant adds credits to a user's balance.
func (l *MemoryLedger) Grant(ctx context.Context, userID string, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidRequest
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	balance, exists := l.balances[userID]
	if !exists {
		balance = l.initialBalance
	}
	l.balances[userID] = balance + amount
	return nil
}
