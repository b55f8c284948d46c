package models

import "time"

// Listing is an escrowed offer to sell tokens of one property at a fixed
// per-token price. The listed tokens belong to the listing itself between
// creation and resolution: the seller's balance is debited on creation and
// the escrow is released by exactly one of a sale or a cancellation.
type Listing struct {
	ID            uint64    `json:"id" db:"id"`
	Seller        string    `json:"seller" db:"seller"`
	PropertyID    uint64    `json:"property_id" db:"property_id"`
	TokenAmount   uint64    `json:"token_amount" db:"token_amount"`
	PricePerToken uint64    `json:"price_per_token" db:"price_per_token"`
	Active        bool      `json:"active" db:"active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
