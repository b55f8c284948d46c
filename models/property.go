package models

import "time"

// Property is the canonical record for a registered real-estate asset.
// IDs are sequential starting at 0; the owner changes only through a
// whole-property sale.
type Property struct {
	ID          uint64    `json:"id" db:"id"`
	Owner       string    `json:"owner" db:"owner"`
	Price       uint64    `json:"price" db:"price"` // smallest currency unit
	Location    string    `json:"location" db:"location"`
	Category    string    `json:"category" db:"category"`
	Area        uint64    `json:"area" db:"area"` // square feet
	Description string    `json:"description" db:"description"`
	Tokenized   bool      `json:"tokenized" db:"tokenized"`
	ForSale     bool      `json:"for_sale" db:"for_sale"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// PropertyTokens is the share ledger of a tokenized property. Supply and
// per-token price are fixed at tokenization; TokensRemaining only ever
// decreases, on primary purchases.
type PropertyTokens struct {
	PropertyID      uint64            `json:"property_id" db:"property_id"`
	TotalSupply     uint64            `json:"total_supply" db:"total_supply"`
	TokensRemaining uint64            `json:"tokens_remaining" db:"tokens_remaining"`
	TokenPrice      uint64            `json:"token_price" db:"token_price"`
	Balances        map[string]uint64 `json:"balances" db:"-"`
}
