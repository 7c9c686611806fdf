package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/announcements"
	"waterbill.app/billing/store/bills"
	"waterbill.app/billing/store/readings"
	"waterbill.app/billing/store/settings"
)

// Store combines all domain-specific repositories
type Store struct {
	Accounts      accounts.Querier
	Readings      readings.Querier
	Bills         bills.Querier
	Settings      settings.Querier
	Announcements announcements.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Accounts:      accounts.New(db),
		Readings:      readings.New(db),
		Bills:         bills.New(db),
		Settings:      settings.New(db),
		Announcements: announcements.New(db),
	}
}

// WithTx returns a Store whose queriers all run inside tx
func WithTx(tx pgx.Tx) *Store {
	return &Store{
		Accounts:      accounts.New(tx),
		Readings:      readings.New(tx),
		Bills:         bills.New(tx),
		Settings:      settings.New(tx),
		Announcements: announcements.New(tx),
	}
}
