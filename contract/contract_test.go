package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreirogomes/terrinha/contract"
	"github.com/ferreirogomes/terrinha/payments"
)

const (
	platform = "platform"
	treasury = "treasury"
	alice    = "alice"
	bob      = "bob"
	carol    = "carol"
)

// newTestContract returns an engine wired to a funded in-memory rail.
func newTestContract(t *testing.T) (*contract.Contract, *payments.MemoryRail) {
	t.Helper()
	rail := payments.NewMemoryRail()
	for _, acct := range []string{platform, alice, bob, carol} {
		rail.Fund(acct, 100_000_000_000) // 100k units of 10^6
	}
	return contract.New(platform, treasury, rail), rail
}

// addTestProperty registers the standard fixture property and returns its id.
func addTestProperty(t *testing.T, c *contract.Contract) uint64 {
	t.Helper()
	id, err := c.AddProperty(platform, 5_000_000_000, "123 Main St, NYC", "Apartment", 1200,
		"Luxury 2-bedroom apartment in downtown Manhattan")
	require.NoError(t, err)
	return id
}

// tokenizeTestProperty tokenizes with the standard 1000-share fixture.
func tokenizeTestProperty(t *testing.T, c *contract.Contract, id uint64) {
	t.Helper()
	require.NoError(t, c.TokenizeProperty(platform, id, 1000, 5_000_000))
}

// requireConservation asserts the share conservation law: minted-but-unsold
// plus all holder balances equals total supply. escrowed is the token count
// currently held by active listings.
func requireConservation(t *testing.T, c *contract.Contract, propertyID, escrowed uint64) {
	t.Helper()
	ledger, ok := c.PropertyTokens(propertyID)
	require.True(t, ok)
	var held uint64
	for _, bal := range ledger.Balances {
		held += bal
	}
	require.Equal(t, ledger.TotalSupply, ledger.TokensRemaining+held+escrowed,
		"share conservation violated")
}

// mockRail is a testify mock of the value-transfer collaborator, for tests
// that assert on the exact rail calls or inject failures.
type mockRail struct {
	mock.Mock
}

func (m *mockRail) Transfer(ctx context.Context, from, to string, amount uint64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}
