package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ferreirogomes/terrinha/contract"
)

type PropertyHandler struct {
	Contract *contract.Contract
}

func NewPropertyHandler(c *contract.Contract) *PropertyHandler {
	return &PropertyHandler{Contract: c}
}

type AddPropertyRequest struct {
	Caller      string `json:"caller" validate:"required"`
	Price       uint64 `json:"price"`
	Location    string `json:"location" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Area        uint64 `json:"area"`
	Description string `json:"description" validate:"max=500"`
}

type AddPropertyResponse struct {
	PropertyID uint64 `json:"property_id"`
}

// AddProperty registers a new property record.
// POST /properties
func (h *PropertyHandler) AddProperty(w http.ResponseWriter, r *http.Request) {
	var req AddPropertyRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Contract.AddProperty(req.Caller, req.Price, req.Location, req.Category, req.Area, req.Description)
	if err != nil {
		writeContractError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AddPropertyResponse{PropertyID: id})
}

type UpdatePropertyRequest struct {
	Caller      string `json:"caller" validate:"required"`
	Price       uint64 `json:"price"`
	ForSale     bool   `json:"for_sale"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateProperty lets the current owner change price, sale flag and
// description.
// PUT /properties/{id}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req UpdatePropertyRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.UpdateProperty(req.Caller, id, req.Price, req.ForSale, req.Description); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProperty returns one property record.
// GET /properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, ok := h.Contract.Property(id)
	if !ok {
		writeContractError(w, contract.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type BuyPropertyRequest struct {
	Caller string `json:"caller" validate:"required"`
}

// BuyProperty executes a whole-property sale to the caller.
// POST /properties/{id}/buy
func (h *PropertyHandler) BuyProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req BuyPropertyRequest
	if err := decodeValid(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contract.BuyProperty(r.Context(), req.Caller, id); err != nil {
		writeContractError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetUserProperties returns the property ids owned by a user.
// GET /users/{user}/properties
func (h *PropertyHandler) GetUserProperties(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	writeJSON(w, http.StatusOK, map[string][]uint64{
		"property_ids": h.Contract.UserProperties(user),
	})
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, name), 10, 64)
}
