// Command seed creates a store login.
//
//	go run ./cmd/seed -username loja01 -identifier loja01 -name "Loja Centro" -password 's3cret-pass'
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"loyalty-ledger/internal/domain/store"
	"loyalty-ledger/internal/infra/db"
	"loyalty-ledger/internal/infra/repository"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/password"
)

type options struct {
	username   string
	identifier string
	name       string
	password   string
}

func main() {
	var opts options
	flag.StringVar(&opts.username, "username", "", "login name of the store (required)")
	flag.StringVar(&opts.identifier, "identifier", "", "identifier stamped on purchases, lowercase [a-z0-9_-] (required)")
	flag.StringVar(&opts.name, "name", "", "display name of the store")
	flag.StringVar(&opts.password, "password", "", "initial password, at least 8 characters (required)")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	hash, err := password.HashPassword(opts.password)
	if err != nil {
		return errs.Wrapf(err, "password must have at least %d characters", password.MinLength)
	}
	s, err := store.NewStore(opts.username, opts.identifier, opts.name, hash)
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := repository.NewStoreRepository(sqlc.New(), pool)
	if err := repo.Create(ctx, s); err != nil {
		return err
	}

	slog.Info("store created", "username", s.Username(), "identifier", s.Identifier())
	return nil
}
