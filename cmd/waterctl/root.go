package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"waterbill.app/billing/store"
)

var dsn string

var rootCmd = &cobra.Command{
	Use:   "waterctl",
	Short: "Operate the water billing database",
	Long: `waterctl runs maintenance tasks against the water billing database:
seeding accounts and the price, sweeping overdue bills and managing the price per unit.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (default is $DATABASE_URL)")
}

// getDSN returns the connection string from the flag or the environment
func getDSN() (string, error) {
	if dsn != "" {
		return dsn, nil
	}
	if env := os.Getenv("DATABASE_URL"); env != "" {
		return env, nil
	}
	return "", errors.New("no database configured: pass --dsn or set DATABASE_URL")
}

// openStore connects to the database and returns the pool with a store over it
func openStore(ctx context.Context) (*pgxpool.Pool, *store.Store, error) {
	conn, err := getDSN()
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.New(ctx, conn)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	return pool, store.NewStore(pool), nil
}
