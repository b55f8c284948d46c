package payments

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/google/uuid"

	"github.com/ferreirogomes/terrinha/models"
)

// SettlementStore persists one row per rail movement so the reconciler can
// later confirm the signatures on chain.
type SettlementStore interface {
	RecordSettlement(models.Settlement) error
}

// SolanaRail settles value as native lamport transfers, custodial model:
// the platform holds the signing keys for the accounts it moves value
// between, and a fee payer key covers network fees. Accounts are base58
// public keys.
type SolanaRail struct {
	client   *rpc.Client
	feePayer solana.PrivateKey
	keys     map[string]solana.PrivateKey
	store    SettlementStore
	log      *slog.Logger
}

func NewSolanaRail(rpcEndpoint, feePayerKeyBase58 string, store SettlementStore, log *slog.Logger) (*SolanaRail, error) {
	feePayer, err := solana.PrivateKeyFromBase58(feePayerKeyBase58)
	if err != nil {
		return nil, fmt.Errorf("loading fee payer key: %w", err)
	}
	r := &SolanaRail{
		client:   rpc.New(rpcEndpoint),
		feePayer: feePayer,
		keys:     make(map[string]solana.PrivateKey),
		store:    store,
		log:      log,
	}
	r.RegisterKey(feePayer)
	return r, nil
}

// RegisterKey adds a custodied signing key. Transfers from accounts without
// a registered key are rejected.
func (r *SolanaRail) RegisterKey(key solana.PrivateKey) {
	r.keys[key.PublicKey().String()] = key
}

// Transfer builds, signs and submits a system-program transfer of amount
// lamports and records the settlement. The send is synchronous: an error
// means nothing was submitted, so the calling operation can fail cleanly.
func (r *SolanaRail) Transfer(ctx context.Context, from, to string, amount uint64) error {
	fromKey, ok := r.keys[from]
	if !ok {
		return fmt.Errorf("no custodied key for account %s", from)
	}
	toPub, err := solana.PublicKeyFromBase58(to)
	if err != nil {
		return fmt.Errorf("invalid destination account %s: %w", to, err)
	}

	recent, err := r.client.GetRecentBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("fetching blockhash: %w", err)
	}

	ix := system.NewTransferInstruction(amount, fromKey.PublicKey(), toPub).Build()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{ix},
		recent.Value.Blockhash,
		solana.TransactionPayer(r.feePayer.PublicKey()),
	)
	if err != nil {
		return fmt.Errorf("building transfer transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(r.feePayer.PublicKey()) {
			return &r.feePayer
		}
		if key.Equals(fromKey.PublicKey()) {
			return &fromKey
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("signing transfer transaction: %w", err)
	}

	sig, err := r.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return fmt.Errorf("sending transfer transaction: %w", err)
	}

	settlement := models.Settlement{
		Ref:       uuid.New().String(),
		FromAcct:  from,
		ToAcct:    to,
		Amount:    amount,
		Signature: sig.String(),
	}
	r.log.Info("settlement submitted",
		"ref", settlement.Ref, "signature", settlement.Signature, "amount", amount)
	if r.store != nil {
		if err := r.store.RecordSettlement(settlement); err != nil {
			// The transfer is on chain; the reconciler cannot track it, but
			// the contract state is still correct. Log loudly.
			r.log.Error("settlement not recorded", "ref", settlement.Ref, "err", err)
		}
	}
	return nil
}
