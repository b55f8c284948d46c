// Package payments provides the value-transfer rails the contract engine
// settles through: an in-memory rail for development and tests, and a
// custodial Solana rail for real settlement.
package payments

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRail is an in-process value ledger. Accounts must be funded
// explicitly; a transfer exceeding the payer balance is rejected, which the
// engine surfaces as a transfer failure.
type MemoryRail struct {
	mu       sync.Mutex
	balances map[string]uint64
}

func NewMemoryRail() *MemoryRail {
	return &MemoryRail{balances: make(map[string]uint64)}
}

// Fund credits an account out of thin air.
func (r *MemoryRail) Fund(account string, amount uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[account] += amount
}

// Balance returns the current balance of an account.
func (r *MemoryRail) Balance(account string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[account]
}

// Transfer moves amount between accounts atomically.
func (r *MemoryRail) Transfer(_ context.Context, from, to string, amount uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.balances[from] < amount {
		return fmt.Errorf("account %s holds %d, cannot transfer %d", from, r.balances[from], amount)
	}
	r.balances[from] -= amount
	r.balances[to] += amount
	return nil
}
