package contract

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ferreirogomes/terrinha/models"
)

// FeeRateBps is the platform fee skimmed from every paid flow, in basis
// points. Fees are floored to the nearest currency unit (documented policy:
// integer division, the platform never rounds in its own favour).
const FeeRateBps = 250

// ValueTransfer moves native value between accounts. It must resolve
// synchronously: a returned error means no value moved and the calling
// operation fails without touching contract state.
type ValueTransfer interface {
	Transfer(ctx context.Context, from, to string, amount uint64) error
}

// Journal receives committed state changes for durable tracking. The engine
// is the in-process source of truth; journal errors are logged and do not
// fail the already-committed operation.
type Journal interface {
	RecordProperty(models.Property) error
	RecordLedger(models.PropertyTokens) error
	RecordBalance(propertyID uint64, holder string, balance uint64) error
	RecordListing(models.Listing) error
	RecordTransaction(models.Transaction) error
	RecordContractState(paused bool, platformRevenue uint64) error
}

// Contract is the serialized market state machine. Every mutating operation
// runs to completion under mu: it either commits in full or returns an
// *Error having changed nothing, matching the all-or-nothing execution of
// the original environment.
type Contract struct {
	mu sync.Mutex

	owner    string
	treasury string
	paused   bool

	platformRevenue uint64

	nextPropertyID uint64
	nextListingID  uint64
	nextTxID       uint64

	properties   map[uint64]*models.Property
	ledgers      map[uint64]*models.PropertyTokens
	listings     map[uint64]*models.Listing
	transactions map[uint64]*models.Transaction
	ownedIndex   map[string][]uint64

	rail    ValueTransfer
	journal Journal
	log     *slog.Logger
	now     func() time.Time
}

// Option configures a Contract at construction.
type Option func(*Contract)

// WithJournal attaches a durable journal for committed state.
func WithJournal(j Journal) Option {
	return func(c *Contract) { c.journal = j }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Contract) { c.log = l }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Contract) { c.now = now }
}

// New creates an empty contract. owner is the platform principal allowed to
// register properties, pause the contract and withdraw fees; treasury is
// the rail account fees settle into.
func New(owner, treasury string, rail ValueTransfer, opts ...Option) *Contract {
	c := &Contract{
		owner:        owner,
		treasury:     treasury,
		rail:         rail,
		properties:   make(map[uint64]*models.Property),
		ledgers:      make(map[uint64]*models.PropertyTokens),
		listings:     make(map[uint64]*models.Listing),
		transactions: make(map[uint64]*models.Transaction),
		ownedIndex:   make(map[string][]uint64),
		log:          slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Paused reports the pause flag.
func (c *Contract) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// SetPause flips the global pause switch. Owner only. The pause gate itself
// is exempt from the pause check, otherwise the contract could never be
// resumed.
func (c *Contract) SetPause(caller string, paused bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.owner {
		return ErrUnauthorized
	}
	c.paused = paused
	c.log.Info("contract pause flag set", "paused", paused)
	c.journalState()
	return nil
}

// requireNotPaused gates every mutating operation except SetPause.
// Read-only queries bypass it.
func (c *Contract) requireNotPaused() error {
	if c.paused {
		return ErrContractPaused
	}
	return nil
}

// appendTransaction assigns the next sequential id and stores the entry.
// Called only after an operation is certain to commit.
func (c *Contract) appendTransaction(propertyID uint64, buyer string, tokens uint64, txType string) models.Transaction {
	tx := models.Transaction{
		ID:         c.nextTxID,
		PropertyID: propertyID,
		Buyer:      buyer,
		Tokens:     tokens,
		Type:       txType,
		CreatedAt:  c.now(),
	}
	c.transactions[tx.ID] = &tx
	c.nextTxID++
	if c.journal != nil {
		if err := c.journal.RecordTransaction(tx); err != nil {
			c.log.Error("journal: transaction not recorded", "tx_id", tx.ID, "err", err)
		}
	}
	return tx
}

func (c *Contract) journalProperty(p models.Property) {
	if c.journal == nil {
		return
	}
	if err := c.journal.RecordProperty(p); err != nil {
		c.log.Error("journal: property not recorded", "property_id", p.ID, "err", err)
	}
}

func (c *Contract) journalLedger(l models.PropertyTokens) {
	if c.journal == nil {
		return
	}
	if err := c.journal.RecordLedger(l); err != nil {
		c.log.Error("journal: ledger not recorded", "property_id", l.PropertyID, "err", err)
	}
}

func (c *Contract) journalBalance(propertyID uint64, holder string, balance uint64) {
	if c.journal == nil {
		return
	}
	if err := c.journal.RecordBalance(propertyID, holder, balance); err != nil {
		c.log.Error("journal: balance not recorded", "property_id", propertyID, "holder", holder, "err", err)
	}
}

func (c *Contract) journalListing(l models.Listing) {
	if c.journal == nil {
		return
	}
	if err := c.journal.RecordListing(l); err != nil {
		c.log.Error("journal: listing not recorded", "listing_id", l.ID, "err", err)
	}
}

func (c *Contract) journalState() {
	if c.journal == nil {
		return
	}
	if err := c.journal.RecordContractState(c.paused, c.platformRevenue); err != nil {
		c.log.Error("journal: contract state not recorded", "err", err)
	}
}
