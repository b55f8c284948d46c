package contract

import (
	"context"
	"math/bits"
)

// Fee computes the platform fee for a cost, floored to the nearest unit.
// The intermediate product is taken at 128 bits so the fee is exact for
// any representable cost.
func Fee(cost uint64) uint64 {
	hi, lo := bits.Mul64(cost, FeeRateBps)
	// FeeRateBps < 10,000, so hi < 10,000 and the quotient fits in uint64.
	fee, _ := bits.Div64(hi, lo, 10_000)
	return fee
}

// mulCost returns amount*price and whether the product fits in uint64.
// The original execution environment traps on arithmetic overflow; a cost
// that cannot be represented must be rejected, never wrapped.
func mulCost(amount, price uint64) (uint64, bool) {
	hi, lo := bits.Mul64(amount, price)
	return lo, hi == 0
}

// collectPayment routes a paid flow: principal from payer to payee, fee
// from payer to the treasury, and the fee accrued as platform revenue.
// Exactly two rail calls. If the fee leg fails after the principal settled,
// a compensating reverse transfer undoes the principal so the operation
// fails with no value moved; contract state has not been touched yet at any
// call site. Caller holds mu.
func (c *Contract) collectPayment(ctx context.Context, payer, payee string, cost uint64) error {
	fee := Fee(cost)

	if err := c.rail.Transfer(ctx, payer, payee, cost); err != nil {
		c.log.Warn("principal transfer rejected", "from", payer, "to", payee, "amount", cost, "err", err)
		return ErrTransferFailed
	}
	if fee > 0 {
		if err := c.rail.Transfer(ctx, payer, c.treasury, fee); err != nil {
			c.log.Warn("fee transfer rejected, compensating principal",
				"from", payer, "amount", fee, "err", err)
			if rerr := c.rail.Transfer(ctx, payee, payer, cost); rerr != nil {
				// The reconciler picks up the stuck settlement pair.
				c.log.Error("compensating transfer failed", "from", payee, "to", payer, "amount", cost, "err", rerr)
			}
			return ErrTransferFailed
		}
	}

	c.platformRevenue += fee
	c.journalState()
	return nil
}

// PlatformRevenue reports the accrued, not yet withdrawn fee total.
func (c *Contract) PlatformRevenue() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.platformRevenue
}

// WithdrawPlatformFees pays out accrued fees from the treasury account to
// the contract owner. The accrual is only debited once the rail accepts
// the payout.
func (c *Contract) WithdrawPlatformFees(ctx context.Context, caller string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	if caller != c.owner {
		return ErrUnauthorized
	}
	if amount > c.platformRevenue {
		return ErrInsufficientFunds
	}
	if err := c.rail.Transfer(ctx, c.treasury, caller, amount); err != nil {
		c.log.Warn("fee withdrawal rejected by rail", "amount", amount, "err", err)
		return ErrTransferFailed
	}

	c.platformRevenue -= amount
	c.log.Info("platform fees withdrawn", "amount", amount, "remaining", c.platformRevenue)
	c.journalState()
	return nil
}
