package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"waterbill.app/billing/store"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mark every unpaid bill past its due date as overdue",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pool, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := repo.Bills.SweepOverdueBills(ctx, store.Timestamptz(time.Now()))
	if err != nil {
		return fmt.Errorf("sweeping overdue bills: %w", err)
	}

	cmd.Printf("%d bills marked overdue\n", n)
	return nil
}
