package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ferreirogomes/terrinha/contract"
)

// validate is shared by every handler; field rules live on the request
// structs. Text bounds mirror the contract's original ascii widths.
var validate = validator.New()

type errorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeContractError maps the stable numeric error table onto HTTP
// statuses, exposing the code so API clients can test compatibility.
func writeContractError(w http.ResponseWriter, err error) {
	var cerr *contract.Error
	if !errors.As(err, &cerr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	status := http.StatusConflict
	switch cerr {
	case contract.ErrNotOwner, contract.ErrUnauthorized:
		status = http.StatusForbidden
	case contract.ErrNotFound:
		status = http.StatusNotFound
	case contract.ErrInvalidPrice, contract.ErrInvalidTokenAmount:
		status = http.StatusBadRequest
	case contract.ErrTransferFailed:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Code: cerr.Code, Error: cerr.Kind})
}

// decodeValid decodes a JSON body into req and runs the validator.
func decodeValid(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return err
	}
	return validate.Struct(req)
}
