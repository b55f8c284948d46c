package contract

import "github.com/ferreirogomes/terrinha/models"

// Snapshot is the full persisted contract state, as loaded from the journal
// at boot.
type Snapshot struct {
	Paused          bool
	PlatformRevenue uint64
	Properties      []models.Property
	Ledgers         []models.PropertyTokens
	Listings        []models.Listing
	Transactions    []models.Transaction
}

// Restore replaces the engine state with a snapshot. Meant to be called
// once, between New and serving traffic; counters resume after the highest
// restored id.
func (c *Contract) Restore(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused = snap.Paused
	c.platformRevenue = snap.PlatformRevenue

	c.properties = make(map[uint64]*models.Property, len(snap.Properties))
	c.ownedIndex = make(map[string][]uint64)
	c.nextPropertyID = 0
	for _, p := range snap.Properties {
		p := p
		c.properties[p.ID] = &p
		c.ownedIndex[p.Owner] = append(c.ownedIndex[p.Owner], p.ID)
		if p.ID >= c.nextPropertyID {
			c.nextPropertyID = p.ID + 1
		}
	}

	c.ledgers = make(map[uint64]*models.PropertyTokens, len(snap.Ledgers))
	for _, l := range snap.Ledgers {
		l := l
		if l.Balances == nil {
			l.Balances = make(map[string]uint64)
		}
		c.ledgers[l.PropertyID] = &l
	}

	c.listings = make(map[uint64]*models.Listing, len(snap.Listings))
	c.nextListingID = 0
	for _, l := range snap.Listings {
		l := l
		c.listings[l.ID] = &l
		if l.ID >= c.nextListingID {
			c.nextListingID = l.ID + 1
		}
	}

	c.transactions = make(map[uint64]*models.Transaction, len(snap.Transactions))
	c.nextTxID = 0
	for _, tx := range snap.Transactions {
		tx := tx
		c.transactions[tx.ID] = &tx
		if tx.ID >= c.nextTxID {
			c.nextTxID = tx.ID + 1
		}
	}
}
