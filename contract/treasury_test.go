package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreirogomes/terrinha/contract"
)

func TestFeeFloorsToNearestUnit(t *testing.T) {
	// 2.5% in basis points, integer division.
	assert.Equal(t, uint64(1_250_000), contract.Fee(50_000_000))
	assert.Equal(t, uint64(25), contract.Fee(1_010)) // 25.25 floors
	assert.Equal(t, uint64(0), contract.Fee(39))     // below one unit of fee
	assert.Equal(t, uint64(0), contract.Fee(0))
}

func TestFeeExactForLargeCosts(t *testing.T) {
	// cost * 250 exceeds uint64 here; the 128-bit intermediate keeps the
	// fee exact instead of wrapping.
	assert.Equal(t, uint64(115_292_150_460_684_697), contract.Fee(1<<62))
	assert.Equal(t, uint64(461_168_601_842_738_790), contract.Fee(1<<64-1))
}

func TestFeeAccrualSumsAcrossPaidFlows(t *testing.T) {
	c, _ := newTestContract(t)
	id := seedSellerTokens(t, c) // buy of 50 accrues Fee(250,000,000)

	listingID, err := c.CreateTokenListing(alice, id, 20, 6_000_000)
	require.NoError(t, err)
	require.NoError(t, c.BuyListedTokens(context.Background(), bob, listingID))

	id2, err := c.AddProperty(platform, 1_000_000_000, "456 Oak Ave", "House", 2500, "Family house")
	require.NoError(t, err)
	require.NoError(t, c.UpdateProperty(platform, id2, 1_000_000_000, true, "for sale"))
	require.NoError(t, c.BuyProperty(context.Background(), carol, id2))

	want := contract.Fee(250_000_000) + contract.Fee(120_000_000) + contract.Fee(1_000_000_000)
	assert.Equal(t, want, c.PlatformRevenue())
	assert.Equal(t, want, c.Stats().PlatformRevenue)
}

func TestWithdrawPlatformFees(t *testing.T) {
	c, rail := newTestContract(t)
	id := addTestProperty(t, c)
	tokenizeTestProperty(t, c, id)
	require.NoError(t, c.BuyTokens(context.Background(), alice, id, 10))

	accrued := c.PlatformRevenue()
	require.Equal(t, uint64(1_250_000), accrued)
	ownerBefore := rail.Balance(platform)

	require.NoError(t, c.WithdrawPlatformFees(context.Background(), platform, accrued))

	assert.Zero(t, c.PlatformRevenue())
	assert.Equal(t, ownerBefore+accrued, rail.Balance(platform))
	assert.Zero(t, rail.Balance(treasury))

	// Nothing left to withdraw until new fees accrue.
	err := c.WithdrawPlatformFees(context.Background(), platform, accrued)
	assert.ErrorIs(t, err, contract.ErrInsufficientFunds)
}

func TestWithdrawPlatformFeesNonOwner(t *testing.T) {
	c, _ := newTestContract(t)
	id := addTestProperty(t, c)
	tokenizeTestProperty(t, c, id)
	require.NoError(t, c.BuyTokens(context.Background(), alice, id, 10))

	err := c.WithdrawPlatformFees(context.Background(), alice, 1)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
	assert.Equal(t, uint64(1_250_000), c.PlatformRevenue())
}

func TestWithdrawPlatformFeesTransferFailure(t *testing.T) {
	rail := new(mockRail)
	c := contract.New(platform, treasury, rail)
	id := addTestProperty(t, c)
	tokenizeTestProperty(t, c, id)
	rail.On("Transfer", mock.Anything, alice, platform, uint64(50_000_000)).Return(nil).Once()
	rail.On("Transfer", mock.Anything, alice, treasury, uint64(1_250_000)).Return(nil).Once()
	require.NoError(t, c.BuyTokens(context.Background(), alice, id, 10))

	rail.On("Transfer", mock.Anything, treasury, platform, uint64(1_250_000)).Return(assert.AnError).Once()

	err := c.WithdrawPlatformFees(context.Background(), platform, 1_250_000)
	assert.ErrorIs(t, err, contract.ErrTransferFailed)

	// No partial debit after a rejected payout.
	assert.Equal(t, uint64(1_250_000), c.PlatformRevenue())
	rail.AssertExpectations(t)
}
