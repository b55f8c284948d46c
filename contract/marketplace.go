package contract

import (
	"context"

	"github.com/ferreirogomes/terrinha/models"
)

// CreateTokenListing puts amount of the caller's shares up for sale at a
// fixed per-token price and returns the listing id. The seller's balance is
// debited immediately: the escrowed tokens are owned by the listing until
// it is bought or cancelled, so the same shares cannot be listed twice.
func (c *Contract) CreateTokenListing(caller string, propertyID, amount, pricePerToken uint64) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return 0, err
	}
	if _, ok := c.properties[propertyID]; !ok {
		return 0, ErrNotFound
	}
	ledger, ok := c.ledgers[propertyID]
	if !ok {
		return 0, ErrNotFound
	}
	if amount == 0 {
		return 0, ErrInvalidTokenAmount
	}
	if ledger.Balances[caller] < amount {
		return 0, ErrInsufficientTokens
	}
	if pricePerToken == 0 {
		return 0, ErrInvalidPrice
	}
	if _, ok := mulCost(amount, pricePerToken); !ok {
		return 0, ErrInvalidPrice
	}

	ledger.Balances[caller] -= amount
	l := models.Listing{
		ID:            c.nextListingID,
		Seller:        caller,
		PropertyID:    propertyID,
		TokenAmount:   amount,
		PricePerToken: pricePerToken,
		Active:        true,
		CreatedAt:     c.now(),
	}
	c.listings[l.ID] = &l
	c.nextListingID++

	c.log.Info("token listing created",
		"listing_id", l.ID, "property_id", propertyID, "amount", amount, "price_per_token", pricePerToken)
	c.journalBalance(propertyID, caller, ledger.Balances[caller])
	c.journalListing(l)
	c.appendTransaction(propertyID, caller, amount, models.TxListing)
	return l.ID, nil
}

// BuyListedTokens fills a listing whole: the caller pays the seller plus
// the platform fee and receives the escrowed tokens. No partial fills. A
// failed payment leaves the listing active and the escrow untouched.
func (c *Contract) BuyListedTokens(ctx context.Context, caller string, listingID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	l, ok := c.listings[listingID]
	if !ok {
		return ErrNotFound
	}
	if !l.Active {
		return ErrListingInactive
	}
	ledger := c.ledgers[l.PropertyID]

	cost, ok := mulCost(l.TokenAmount, l.PricePerToken)
	if !ok {
		return ErrInvalidPrice
	}
	if err := c.collectPayment(ctx, caller, l.Seller, cost); err != nil {
		return err
	}

	l.Active = false
	ledger.Balances[caller] += l.TokenAmount

	c.journalListing(*l)
	c.journalBalance(l.PropertyID, caller, ledger.Balances[caller])
	c.appendTransaction(l.PropertyID, caller, l.TokenAmount, models.TxSale)
	return nil
}

// CancelTokenListing deactivates the caller's own listing and returns the
// escrowed tokens. No fee; logged as a CANCEL entry for auditability.
func (c *Contract) CancelTokenListing(caller string, listingID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	l, ok := c.listings[listingID]
	if !ok {
		return ErrNotFound
	}
	if caller != l.Seller {
		return ErrUnauthorized
	}
	if !l.Active {
		return ErrListingInactive
	}
	ledger := c.ledgers[l.PropertyID]

	l.Active = false
	ledger.Balances[l.Seller] += l.TokenAmount

	c.journalListing(*l)
	c.journalBalance(l.PropertyID, l.Seller, ledger.Balances[l.Seller])
	c.appendTransaction(l.PropertyID, caller, l.TokenAmount, models.TxCancel)
	return nil
}

// BuyProperty executes a whole-property sale at the listed price. Ownership
// moves to the caller, the sale flag resets, and both parties' owned
// indices are updated. Tokenized properties keep their share ledger; only
// the record's title changes hands.
func (c *Contract) BuyProperty(ctx context.Context, caller string, propertyID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	p, ok := c.properties[propertyID]
	if !ok {
		return ErrNotFound
	}
	if !p.ForSale {
		return ErrPropertyNotForSale
	}

	if err := c.collectPayment(ctx, caller, p.Owner, p.Price); err != nil {
		return err
	}

	c.transferOwnership(p, caller)
	p.ForSale = false

	c.log.Info("property sold", "property_id", propertyID, "buyer", caller, "price", p.Price)
	c.journalProperty(*p)
	c.appendTransaction(propertyID, caller, 0, models.TxPropertySale)
	return nil
}
