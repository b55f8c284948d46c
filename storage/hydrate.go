package storage

import (
	"fmt"

	"github.com/ferreirogomes/terrinha/contract"
	"github.com/ferreirogomes/terrinha/models"
)

// LoadState reads the full journalled contract state, ordered by id so the
// engine's restored indices match the original creation order.
func (d *DB) LoadState() (contract.Snapshot, error) {
	var snap contract.Snapshot

	var state struct {
		Paused          bool   `db:"paused"`
		PlatformRevenue uint64 `db:"platform_revenue"`
	}
	if err := d.Get(&state, `SELECT paused, platform_revenue FROM contract_state WHERE id = 1`); err != nil {
		return snap, fmt.Errorf("loading contract state: %w", err)
	}
	snap.Paused = state.Paused
	snap.PlatformRevenue = state.PlatformRevenue

	if err := d.Select(&snap.Properties, `
		SELECT id, owner, price, location, category, area, description, tokenized, for_sale, created_at
		FROM properties ORDER BY id`); err != nil {
		return snap, fmt.Errorf("loading properties: %w", err)
	}

	if err := d.Select(&snap.Ledgers, `
		SELECT property_id, total_supply, tokens_remaining, token_price
		FROM property_tokens ORDER BY property_id`); err != nil {
		return snap, fmt.Errorf("loading ledgers: %w", err)
	}
	ledgerByID := make(map[uint64]*models.PropertyTokens, len(snap.Ledgers))
	for i := range snap.Ledgers {
		snap.Ledgers[i].Balances = make(map[string]uint64)
		ledgerByID[snap.Ledgers[i].PropertyID] = &snap.Ledgers[i]
	}

	var balances []struct {
		PropertyID uint64 `db:"property_id"`
		Holder     string `db:"holder"`
		Balance    uint64 `db:"balance"`
	}
	if err := d.Select(&balances, `SELECT property_id, holder, balance FROM token_balances`); err != nil {
		return snap, fmt.Errorf("loading balances: %w", err)
	}
	for _, b := range balances {
		if ledger, ok := ledgerByID[b.PropertyID]; ok {
			ledger.Balances[b.Holder] = b.Balance
		}
	}

	if err := d.Select(&snap.Listings, `
		SELECT id, seller, property_id, token_amount, price_per_token, active, created_at
		FROM listings ORDER BY id`); err != nil {
		return snap, fmt.Errorf("loading listings: %w", err)
	}

	if err := d.Select(&snap.Transactions, `
		SELECT id, property_id, buyer, tokens, tx_type, created_at
		FROM transactions ORDER BY id`); err != nil {
		return snap, fmt.Errorf("loading transactions: %w", err)
	}

	return snap, nil
}
