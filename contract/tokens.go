package contract

import (
	"context"

	"github.com/ferreirogomes/terrinha/models"
)

// TokenizeProperty converts a property into a fixed pool of fungible
// shares. One-way: a second call fails with ErrAlreadyTokenized and supply
// and per-token price are immutable afterwards. The issuance itself is
// logged as a MINT entry with tokens=0.
func (c *Contract) TokenizeProperty(caller string, propertyID, totalSupply, tokenPrice uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	p, ok := c.properties[propertyID]
	if !ok {
		return ErrNotFound
	}
	if caller != p.Owner {
		return ErrUnauthorized
	}
	if p.Tokenized {
		return ErrAlreadyTokenized
	}
	if totalSupply == 0 {
		return ErrInvalidTokenAmount
	}
	if tokenPrice == 0 {
		return ErrInvalidPrice
	}
	if _, ok := mulCost(totalSupply, tokenPrice); !ok {
		return ErrInvalidPrice
	}

	p.Tokenized = true
	ledger := &models.PropertyTokens{
		PropertyID:      propertyID,
		TotalSupply:     totalSupply,
		TokensRemaining: totalSupply,
		TokenPrice:      tokenPrice,
		Balances:        make(map[string]uint64),
	}
	c.ledgers[propertyID] = ledger

	c.log.Info("property tokenized",
		"property_id", propertyID, "supply", totalSupply, "token_price", tokenPrice)
	c.journalProperty(*p)
	c.journalLedger(*ledger)
	c.appendTransaction(propertyID, caller, 0, models.TxMint)
	return nil
}

// BuyTokens mints amount shares from the remaining pool to the caller. The
// caller pays cost to the property owner and the platform fee to the
// treasury before any ledger state changes; a failed payment leaves the
// pool and all balances untouched.
func (c *Contract) BuyTokens(ctx context.Context, caller string, propertyID, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	p, ok := c.properties[propertyID]
	if !ok {
		return ErrNotFound
	}
	ledger, ok := c.ledgers[propertyID]
	if !ok {
		return ErrNotFound
	}
	if amount == 0 {
		return ErrInvalidTokenAmount
	}
	if amount > ledger.TokensRemaining {
		return ErrInsufficientTokens
	}

	cost, ok := mulCost(amount, ledger.TokenPrice)
	if !ok {
		return ErrInvalidPrice
	}
	if err := c.collectPayment(ctx, caller, p.Owner, cost); err != nil {
		return err
	}

	ledger.TokensRemaining -= amount
	ledger.Balances[caller] += amount

	c.journalLedger(*ledger)
	c.journalBalance(propertyID, caller, ledger.Balances[caller])
	c.appendTransaction(propertyID, caller, amount, models.TxMint)
	return nil
}

// TransferTokens moves shares between holders. No value, no fee, no mint:
// the conservation sum is unchanged by construction.
func (c *Contract) TransferTokens(caller string, propertyID, amount uint64, recipient string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	if _, ok := c.properties[propertyID]; !ok {
		return ErrNotFound
	}
	ledger, ok := c.ledgers[propertyID]
	if !ok {
		return ErrNotFound
	}
	if amount == 0 {
		return ErrInvalidTokenAmount
	}
	if ledger.Balances[caller] < amount {
		return ErrInsufficientTokens
	}

	ledger.Balances[caller] -= amount
	ledger.Balances[recipient] += amount

	c.journalBalance(propertyID, caller, ledger.Balances[caller])
	c.journalBalance(propertyID, recipient, ledger.Balances[recipient])
	c.appendTransaction(propertyID, recipient, amount, models.TxTransfer)
	return nil
}
