package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ferreirogomes/terrinha/contract"
)

type TokenHandler struct {
	Contract *contract.Contract
}

func NewTokenHandler(c *contract.Contract) *TokenHandler {
	return &TokenHandler{Contract: c}
}

type TokenizeRequest struct {
	Caller      string `json:"caller" validate:"required"`
	TotalSupply uint64 `json:"total_supply"`
	TokenPrice  uint64 `json:"token_price"`
}

// Tokenize converts a property into a fixed pool of fungible shares.
// POST /properties/{id}/tokenize
func (h *TokenHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req TokenizeRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.TokenizeProperty(req.Caller, id, req.TotalSupply, req.TokenPrice); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type BuyTokensRequest struct {
	Caller string `json:"caller" validate:"required"`
	Amount uint64 `json:"amount"`
}

// BuyTokens sells shares from the remaining pool to the caller.
// POST /properties/{id}/tokens/buy
func (h *TokenHandler) BuyTokens(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req BuyTokensRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.BuyTokens(r.Context(), req.Caller, id, req.Amount); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type TransferTokensRequest struct {
	Caller    string `json:"caller" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Amount    uint64 `json:"amount"`
}

// TransferTokens moves shares between holders, no value movement.
// POST /properties/{id}/tokens/transfer
func (h *TokenHandler) TransferTokens(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req TransferTokensRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.TransferTokens(req.Caller, id, req.Amount, req.Recipient); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPropertyTokens returns the share ledger snapshot of a property.
// GET /properties/{id}/tokens
func (h *TokenHandler) GetPropertyTokens(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ledger, ok := h.Contract.PropertyTokens(id)
	if !ok {
		writeContractError(w, contract.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

// GetTokenBalance returns one holder's spendable balance.
// GET /properties/{id}/tokens/balance/{holder}
func (h *TokenHandler) GetTokenBalance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	holder := chi.URLParam(r, "holder")
	writeJSON(w, http.StatusOK, map[string]uint64{
		"token_count": h.Contract.TokenBalance(id, holder),
	})
}
