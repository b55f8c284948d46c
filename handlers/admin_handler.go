package handlers

import (
	"net/http"

	"github.com/ferreirogomes/terrinha/contract"
)

type AdminHandler struct {
	Contract *contract.Contract
}

func NewAdminHandler(c *contract.Contract) *AdminHandler {
	return &AdminHandler{Contract: c}
}

type SetPauseRequest struct {
	Caller string `json:"caller" validate:"required"`
	Paused bool   `json:"paused"`
}

// SetPause flips the global pause switch.
// POST /admin/pause
func (h *AdminHandler) SetPause(w http.ResponseWriter, r *http.Request) {
	var req SetPauseRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.SetPause(req.Caller, req.Paused); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type WithdrawRequest struct {
	Caller string `json:"caller" validate:"required"`
	Amount uint64 `json:"amount"`
}

// WithdrawFees pays accrued platform fees out to the contract owner.
// POST /admin/withdraw
func (h *AdminHandler) WithdrawFees(w http.ResponseWriter, r *http.Request) {
	var req WithdrawRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.WithdrawPlatformFees(r.Context(), req.Caller, req.Amount); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStats returns the aggregate contract counters.
// GET /stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Contract.Stats())
}

// GetTransaction returns one audit log entry.
// GET /transactions/{id}
func (h *AdminHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, ok := h.Contract.Transaction(id)
	if !ok {
		writeContractError(w, contract.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}
