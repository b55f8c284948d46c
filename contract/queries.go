package contract

import "github.com/ferreirogomes/terrinha/models"

// Read-only query surface. No pause check, no side effects; everything is
// returned by value so callers can never reach the live state.

// Property returns the record for id.
func (c *Contract) Property(id uint64) (models.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.properties[id]
	if !ok {
		return models.Property{}, false
	}
	return *p, true
}

// PropertyTokens returns a snapshot of the share ledger for a tokenized
// property, including holder balances.
func (c *Contract) PropertyTokens(propertyID uint64) (models.PropertyTokens, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.ledgers[propertyID]
	if !ok {
		return models.PropertyTokens{}, false
	}
	snap := *l
	snap.Balances = make(map[string]uint64, len(l.Balances))
	for holder, bal := range l.Balances {
		snap.Balances[holder] = bal
	}
	return snap, true
}

// TokenBalance returns holder's spendable share count, 0 for unknown
// holders or untokenized properties. Escrowed tokens are not included.
func (c *Contract) TokenBalance(propertyID uint64, holder string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.ledgers[propertyID]
	if !ok {
		return 0
	}
	return l.Balances[holder]
}

// Listing returns the listing record for id.
func (c *Contract) Listing(id uint64) (models.Listing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.listings[id]
	if !ok {
		return models.Listing{}, false
	}
	return *l, true
}

// Transaction returns the audit log entry for id.
func (c *Contract) Transaction(id uint64) (models.Transaction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tx, ok := c.transactions[id]
	if !ok {
		return models.Transaction{}, false
	}
	return *tx, true
}

// UserProperties returns the ids of properties currently owned by user, in
// acquisition order.
func (c *Contract) UserProperties(user string) []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	owned := c.ownedIndex[user]
	out := make([]uint64, len(owned))
	copy(out, owned)
	return out
}

// Stats returns the cached aggregate counters. Each counter is incremented
// exactly once per successful creation, never on failure.
func (c *Contract) Stats() models.ContractStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.ContractStats{
		TotalProperties:   c.nextPropertyID,
		TotalListings:     c.nextListingID,
		TotalTransactions: c.nextTxID,
		PlatformRevenue:   c.platformRevenue,
		ContractPaused:    c.paused,
	}
}
