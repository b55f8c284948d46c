package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferreirogomes/terrinha/config"
	"github.com/ferreirogomes/terrinha/contract"
	"github.com/ferreirogomes/terrinha/handlers"
	"github.com/ferreirogomes/terrinha/listener"
	"github.com/ferreirogomes/terrinha/payments"
	"github.com/ferreirogomes/terrinha/storage"
)

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Error("database setup failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	var rail contract.ValueTransfer
	switch cfg.Rail {
	case "solana":
		solanaRail, err := payments.NewSolanaRail(cfg.SolanaRPCURL, cfg.FeePayerKey, db, log)
		if err != nil {
			log.Error("solana rail setup failed", "err", err)
			os.Exit(1)
		}
		rail = solanaRail
		go listener.NewReconciler(cfg.SolanaRPCURL, db, log).Run(context.Background())
	default:
		memRail := payments.NewMemoryRail()
		rail = memRail
		log.Warn("using in-memory value rail, no real settlement")
	}

	engine := contract.New(cfg.PlatformOwner, cfg.Treasury, rail,
		contract.WithJournal(db),
		contract.WithLogger(log),
	)

	snap, err := db.LoadState()
	if err != nil {
		log.Error("state hydration failed", "err", err)
		os.Exit(1)
	}
	engine.Restore(snap)
	log.Info("contract state restored",
		"properties", len(snap.Properties), "listings", len(snap.Listings), "transactions", len(snap.Transactions))

	r := handlers.NewRouter(engine)

	addr := ":" + cfg.Port
	log.Info("terrinha listening", "addr", addr, "rail", cfg.Rail)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
