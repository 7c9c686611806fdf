package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"waterbill.app/billing/credential"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/settings"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert accounts and the water price from a YAML file",
	Long: `Reads a seed file and upserts every account by phone number, hashing its
password, then stores the price per unit when one is given. Everything is
written in one transaction.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "seed file to load")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	seed, err := LoadSeedFile(seedFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := applySeed(cmd, store.WithTx(tx), seed); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

func applySeed(cmd *cobra.Command, repo *store.Store, seed *SeedFile) error {
	ctx := cmd.Context()

	if seed.Price != nil {
		setting, err := repo.Settings.UpsertSetting(ctx, settings.UpsertSettingParams{
			Key:   model.PriceSettingKey,
			Value: seed.Price.String(),
		})
		if err != nil {
			return fmt.Errorf("saving price: %w", err)
		}
		cmd.Printf("price per unit set to %s (version %d)\n", seed.Price, setting.Version)
	}

	for _, a := range seed.Accounts {
		hash, err := credential.Hash(a.Password)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", a.PhoneNumber, err)
		}
		row, err := repo.Accounts.UpsertAccount(ctx, accounts.UpsertAccountParams{
			Name:         a.Name,
			Address:      a.Address,
			PhoneNumber:  a.PhoneNumber,
			MeterID:      a.MeterID,
			Role:         string(a.Role),
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("upserting account %s: %w", a.PhoneNumber, err)
		}
		cmd.Printf("%-12s %-8s %-12s %s\n", row.PhoneNumber, row.MeterID, row.Role, row.ID)
	}

	cmd.Printf("seeded %d accounts\n", len(seed.Accounts))
	return nil
}
