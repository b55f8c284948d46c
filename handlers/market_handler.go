package handlers

import (
	"net/http"

	"github.com/ferreirogomes/terrinha/contract"
)

type MarketHandler struct {
	Contract *contract.Contract
}

func NewMarketHandler(c *contract.Contract) *MarketHandler {
	return &MarketHandler{Contract: c}
}

type CreateListingRequest struct {
	Caller        string `json:"caller" validate:"required"`
	PropertyID    uint64 `json:"property_id"`
	Amount        uint64 `json:"amount"`
	PricePerToken uint64 `json:"price_per_token"`
}

type CreateListingResponse struct {
	ListingID uint64 `json:"listing_id"`
}

// CreateListing escrows the caller's shares into a new listing.
// POST /listings
func (h *MarketHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Contract.CreateTokenListing(req.Caller, req.PropertyID, req.Amount, req.PricePerToken)
	if err != nil {
		writeContractError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateListingResponse{ListingID: id})
}

// GetListing returns one listing record.
// GET /listings/{id}
func (h *MarketHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	l, ok := h.Contract.Listing(id)
	if !ok {
		writeContractError(w, contract.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

type BuyListingRequest struct {
	Caller string `json:"caller" validate:"required"`
}

// BuyListing fills a listing whole for the caller.
// POST /listings/{id}/buy
func (h *MarketHandler) BuyListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req BuyListingRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.BuyListedTokens(r.Context(), req.Caller, id); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type CancelListingRequest struct {
	Caller string `json:"caller" validate:"required"`
}

// CancelListing returns the escrowed shares to the seller.
// POST /listings/{id}/cancel
func (h *MarketHandler) CancelListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req CancelListingRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.CancelTokenListing(req.Caller, id); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
