package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreirogomes/terrinha/contract"
	"github.com/ferreirogomes/terrinha/handlers"
	"github.com/ferreirogomes/terrinha/payments"
)

const (
	platform = "platform"
	treasury = "treasury"
	alice    = "alice"
	bob      = "bob"
)

func newTestServer(t *testing.T) (*httptest.Server, *payments.MemoryRail) {
	t.Helper()
	rail := payments.NewMemoryRail()
	for _, acct := range []string{platform, alice, bob} {
		rail.Fund(acct, 100_000_000_000)
	}
	engine := contract.New(platform, treasury, rail)
	srv := httptest.NewServer(handlers.NewRouter(engine))
	t.Cleanup(srv.Close)
	return srv, rail
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestPropertyLifecycleOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/properties", handlers.AddPropertyRequest{
		Caller:      platform,
		Price:       5_000_000_000,
		Location:    "123 Main St, NYC",
		Category:    "Apartment",
		Area:        1200,
		Description: "Luxury apartment",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created handlers.AddPropertyResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, uint64(0), created.PropertyID)

	resp = doJSON(t, http.MethodPost, srv.URL+"/properties/0/tokenize", handlers.TokenizeRequest{
		Caller: platform, TotalSupply: 1000, TokenPrice: 5_000_000,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/properties/0/tokens/buy", handlers.BuyTokensRequest{
		Caller: alice, Amount: 10,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/properties/0/tokens/balance/"+alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var balance map[string]uint64
	decodeBody(t, resp, &balance)
	assert.Equal(t, uint64(10), balance["token_count"])

	resp = doJSON(t, http.MethodGet, srv.URL+"/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		TotalProperties   uint64 `json:"total_properties"`
		TotalTransactions uint64 `json:"total_transactions"`
		PlatformRevenue   uint64 `json:"platform_revenue"`
	}
	decodeBody(t, resp, &stats)
	assert.Equal(t, uint64(1), stats.TotalProperties)
	assert.Equal(t, uint64(2), stats.TotalTransactions)
	assert.Equal(t, uint64(1_250_000), stats.PlatformRevenue)
}

func TestListingFlowOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/properties", handlers.AddPropertyRequest{
		Caller: platform, Price: 5_000_000_000, Location: "123 Main St, NYC",
		Category: "Apartment", Area: 1200,
	}).Body.Close()
	doJSON(t, http.MethodPost, srv.URL+"/properties/0/tokenize", handlers.TokenizeRequest{
		Caller: platform, TotalSupply: 1000, TokenPrice: 5_000_000,
	}).Body.Close()
	doJSON(t, http.MethodPost, srv.URL+"/properties/0/tokens/buy", handlers.BuyTokensRequest{
		Caller: alice, Amount: 50,
	}).Body.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/listings", handlers.CreateListingRequest{
		Caller: alice, PropertyID: 0, Amount: 20, PricePerToken: 6_000_000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var listing handlers.CreateListingResponse
	decodeBody(t, resp, &listing)

	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/listings/%d/buy", srv.URL, listing.ListingID),
		handlers.BuyListingRequest{Caller: bob})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/listings/%d", srv.URL, listing.ListingID), nil)
	var l struct {
		Active bool `json:"active"`
	}
	decodeBody(t, resp, &l)
	assert.False(t, l.Active)
}

func TestErrorMappingOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	// Unknown property id → 404 with the stable numeric code.
	resp := doJSON(t, http.MethodGet, srv.URL+"/properties/42", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var apiErr struct {
		Code int `json:"code"`
	}
	decodeBody(t, resp, &apiErr)
	assert.Equal(t, 101, apiErr.Code)

	// Non-owner registration → 403, code 100.
	resp = doJSON(t, http.MethodPost, srv.URL+"/properties", handlers.AddPropertyRequest{
		Caller: alice, Price: 1, Location: "x", Category: "y", Area: 1,
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	decodeBody(t, resp, &apiErr)
	assert.Equal(t, 100, apiErr.Code)

	// Zero price → 400, code 109.
	resp = doJSON(t, http.MethodPost, srv.URL+"/properties", handlers.AddPropertyRequest{
		Caller: platform, Price: 0, Location: "x", Category: "y", Area: 1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &apiErr)
	assert.Equal(t, 109, apiErr.Code)

	// Missing caller fails validation before the engine is reached.
	resp = doJSON(t, http.MethodPost, srv.URL+"/properties", handlers.AddPropertyRequest{
		Price: 1, Location: "x", Category: "y", Area: 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPauseOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/pause", handlers.SetPauseRequest{
		Caller: platform, Paused: true,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/properties", handlers.AddPropertyRequest{
		Caller: platform, Price: 1, Location: "x", Category: "y", Area: 1,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var apiErr struct {
		Code int `json:"code"`
	}
	decodeBody(t, resp, &apiErr)
	assert.Equal(t, 110, apiErr.Code)
}
