package storage

import (
	"fmt"

	"github.com/ferreirogomes/terrinha/models"
)

// The engine journals every committed mutation here; rows are upserts keyed
// by the engine's own sequential ids, so replaying a record is harmless.

func (d *DB) RecordProperty(p models.Property) error {
	query := `
		INSERT INTO properties (id, owner, price, location, category, area, description, tokenized, for_sale, created_at)
		VALUES (:id, :owner, :price, :location, :category, :area, :description, :tokenized, :for_sale, :created_at)
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			tokenized = EXCLUDED.tokenized,
			for_sale = EXCLUDED.for_sale`
	if _, err := d.NamedExec(query, p); err != nil {
		return fmt.Errorf("recording property %d: %w", p.ID, err)
	}
	return nil
}

func (d *DB) RecordLedger(l models.PropertyTokens) error {
	query := `
		INSERT INTO property_tokens (property_id, total_supply, tokens_remaining, token_price)
		VALUES (:property_id, :total_supply, :tokens_remaining, :token_price)
		ON CONFLICT (property_id) DO UPDATE SET tokens_remaining = EXCLUDED.tokens_remaining`
	if _, err := d.NamedExec(query, l); err != nil {
		return fmt.Errorf("recording ledger for property %d: %w", l.PropertyID, err)
	}
	return nil
}

func (d *DB) RecordBalance(propertyID uint64, holder string, balance uint64) error {
	query := `
		INSERT INTO token_balances (property_id, holder, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (property_id, holder) DO UPDATE SET balance = EXCLUDED.balance`
	if _, err := d.Exec(query, propertyID, holder, balance); err != nil {
		return fmt.Errorf("recording balance for property %d holder %s: %w", propertyID, holder, err)
	}
	return nil
}

func (d *DB) RecordListing(l models.Listing) error {
	query := `
		INSERT INTO listings (id, seller, property_id, token_amount, price_per_token, active, created_at)
		VALUES (:id, :seller, :property_id, :token_amount, :price_per_token, :active, :created_at)
		ON CONFLICT (id) DO UPDATE SET active = EXCLUDED.active`
	if _, err := d.NamedExec(query, l); err != nil {
		return fmt.Errorf("recording listing %d: %w", l.ID, err)
	}
	return nil
}

func (d *DB) RecordTransaction(tx models.Transaction) error {
	// Append-only: an id collision means the engine and journal disagree,
	// and the insert fails rather than overwriting history.
	query := `
		INSERT INTO transactions (id, property_id, buyer, tokens, tx_type, created_at)
		VALUES (:id, :property_id, :buyer, :tokens, :tx_type, :created_at)`
	if _, err := d.NamedExec(query, tx); err != nil {
		return fmt.Errorf("recording transaction %d: %w", tx.ID, err)
	}
	return nil
}

func (d *DB) RecordContractState(paused bool, platformRevenue uint64) error {
	query := `UPDATE contract_state SET paused = $1, platform_revenue = $2 WHERE id = 1`
	if _, err := d.Exec(query, paused, platformRevenue); err != nil {
		return fmt.Errorf("recording contract state: %w", err)
	}
	return nil
}

// RecordSettlement stores one rail movement for later confirmation.
func (d *DB) RecordSettlement(s models.Settlement) error {
	query := `
		INSERT INTO settlements (ref, from_acct, to_acct, amount, signature, confirmed)
		VALUES (:ref, :from_acct, :to_acct, :amount, :signature, :confirmed)`
	if _, err := d.NamedExec(query, s); err != nil {
		return fmt.Errorf("recording settlement %s: %w", s.Ref, err)
	}
	return nil
}

// UnconfirmedSettlements returns rail movements not yet seen finalized,
// oldest first.
func (d *DB) UnconfirmedSettlements(limit int) ([]models.Settlement, error) {
	var out []models.Settlement
	query := `
		SELECT ref, from_acct, to_acct, amount, signature, confirmed, created_at
		FROM settlements WHERE NOT confirmed ORDER BY created_at LIMIT $1`
	if err := d.Select(&out, query, limit); err != nil {
		return nil, fmt.Errorf("loading unconfirmed settlements: %w", err)
	}
	return out, nil
}

// MarkSettlementConfirmed flips the confirmed flag for ref.
func (d *DB) MarkSettlementConfirmed(ref string) error {
	if _, err := d.Exec(`UPDATE settlements SET confirmed = TRUE WHERE ref = $1`, ref); err != nil {
		return fmt.Errorf("confirming settlement %s: %w", ref, err)
	}
	return nil
}
