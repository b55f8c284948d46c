package contract

import "fmt"

// Error is a contract failure with a stable numeric code. The 100-109 range
// matches the original on-chain error table; 110 and 111 extend it for the
// pause gate and rail failures, which the original folded into other codes.
type Error struct {
	Code int
	Kind string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (err %d)", e.Kind, e.Code)
}

// Error table. Callers must correct input or state and resubmit; no kind is
// retryable as-is.
var (
	ErrNotOwner           = &Error{100, "caller is not the contract owner"}
	ErrNotFound           = &Error{101, "record not found"}
	ErrUnauthorized       = &Error{102, "caller not authorized"}
	ErrAlreadyTokenized   = &Error{103, "property already tokenized"}
	ErrInsufficientTokens = &Error{104, "insufficient tokens"}
	ErrListingInactive    = &Error{105, "listing is no longer active"}
	ErrInsufficientFunds  = &Error{106, "insufficient platform funds"}
	ErrInvalidTokenAmount = &Error{107, "token amount must be positive"}
	ErrPropertyNotForSale = &Error{108, "property is not for sale"}
	ErrInvalidPrice       = &Error{109, "price must be positive"}
	ErrContractPaused     = &Error{110, "contract is paused"}
	ErrTransferFailed     = &Error{111, "value transfer failed"}
)
