package models

import "time"

// Settlement tracks one value movement pushed through the payment rail.
// Ref is assigned by the rail; Signature is the on-chain transaction id
// when the Solana rail is in use. Confirmed flips once the reconciler sees
// the signature finalized.
type Settlement struct {
	Ref       string    `json:"ref" db:"ref"`
	FromAcct  string    `json:"from_acct" db:"from_acct"`
	ToAcct    string    `json:"to_acct" db:"to_acct"`
	Amount    uint64    `json:"amount" db:"amount"`
	Signature string    `json:"signature" db:"signature"`
	Confirmed bool      `json:"confirmed" db:"confirmed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
