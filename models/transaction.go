package models

import "time"

// Transaction types recorded in the audit log.
const (
	TxMint         = "MINT"
	TxTransfer     = "TRANSFER"
	TxListing      = "LISTING"
	TxSale         = "SALE"
	TxCancel       = "CANCEL"
	TxPropertySale = "PROPERTY_SALE"
)

// Transaction is one append-only audit log entry. Tokens is 0 for
// whole-property sales and for the issuance entry written at tokenization.
type Transaction struct {
	ID         uint64    `json:"id" db:"id"`
	PropertyID uint64    `json:"property_id" db:"property_id"`
	Buyer      string    `json:"buyer" db:"buyer"`
	Tokens     uint64    `json:"tokens" db:"tokens"`
	Type       string    `json:"type" db:"tx_type"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ContractStats mirrors the read-only stats tuple of the contract.
type ContractStats struct {
	TotalProperties   uint64 `json:"total_properties"`
	TotalListings     uint64 `json:"total_listings"`
	TotalTransactions uint64 `json:"total_transactions"`
	PlatformRevenue   uint64 `json:"platform_revenue"`
	ContractPaused    bool   `json:"contract_paused"`
}
