// Package listener watches the settlement rail so the journal converges
// with what actually finalized on chain.
package listener

import (
	"context"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/ferreirogomes/terrinha/models"
)

// SettlementSource is the journal view the reconciler works against.
type SettlementSource interface {
	UnconfirmedSettlements(limit int) ([]models.Settlement, error)
	MarkSettlementConfirmed(ref string) error
}

// StatusClient is the slice of the Solana RPC surface the reconciler needs.
type StatusClient interface {
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// Reconciler polls the statuses of submitted settlement signatures and
// marks them confirmed once finalized. It never mutates contract state:
// the engine committed before the settlement row was written, and a
// signature that fails on chain is an operator problem, not something the
// serialized engine can unwind after the fact.
type Reconciler struct {
	client   StatusClient
	source   SettlementSource
	log      *slog.Logger
	interval time.Duration
	batch    int
}

func NewReconciler(rpcEndpoint string, source SettlementSource, log *slog.Logger) *Reconciler {
	return newReconciler(rpc.New(rpcEndpoint), source, log)
}

func newReconciler(client StatusClient, source SettlementSource, log *slog.Logger) *Reconciler {
	return &Reconciler{
		client:   client,
		source:   source,
		log:      log,
		interval: 15 * time.Second,
		batch:    64,
	}
}

// Run polls until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	r.log.Info("settlement reconciler started", "interval", r.interval)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("settlement reconciler stopped")
			return
		case <-ticker.C:
			if err := r.sweep(ctx); err != nil {
				r.log.Error("reconciler sweep failed", "err", err)
			}
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) error {
	pending, err := r.source.UnconfirmedSettlements(r.batch)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	sigs := make([]solana.Signature, 0, len(pending))
	tracked := make([]models.Settlement, 0, len(pending))
	for _, s := range pending {
		sig, err := solana.SignatureFromBase58(s.Signature)
		if err != nil {
			r.log.Error("settlement has malformed signature", "ref", s.Ref, "err", err)
			continue
		}
		sigs = append(sigs, sig)
		tracked = append(tracked, s)
	}
	if len(sigs) == 0 {
		return nil
	}

	statuses, err := r.client.GetSignatureStatuses(ctx, true, sigs...)
	if err != nil {
		return err
	}

	for i, status := range statuses.Value {
		if status == nil {
			continue
		}
		s := tracked[i]
		if status.Err != nil {
			// Needs an operator: value the engine believes settled did not.
			r.log.Error("settlement failed on chain", "ref", s.Ref, "signature", s.Signature, "err", status.Err)
			continue
		}
		if status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
			if err := r.source.MarkSettlementConfirmed(s.Ref); err != nil {
				r.log.Error("settlement not marked confirmed", "ref", s.Ref, "err", err)
				continue
			}
			r.log.Info("settlement finalized", "ref", s.Ref, "signature", s.Signature)
		}
	}
	return nil
}
