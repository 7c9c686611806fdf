package main

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/settings"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show or change the water price per unit",
}

var priceGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the price applied to new bills",
	Args:  cobra.NoArgs,
	RunE:  runPriceGet,
}

var priceSetCmd = &cobra.Command{
	Use:   "set PRICE",
	Short: "Change the price for bills issued from now on",
	Args:  cobra.ExactArgs(1),
	RunE:  runPriceSet,
}

func init() {
	priceCmd.AddCommand(priceGetCmd, priceSetCmd)
	rootCmd.AddCommand(priceCmd)
}

func runPriceGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pool, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	setting, err := repo.Settings.GetSetting(ctx, model.PriceSettingKey)
	if errors.Is(err, pgx.ErrNoRows) {
		cmd.Printf("%s (default, not set)\n", model.DefaultPricePerUnit)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading price: %w", err)
	}

	cmd.Printf("%s (version %d)\n", setting.Value, setting.Version)
	return nil
}

func runPriceSet(cmd *cobra.Command, args []string) error {
	price, err := parsePrice(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	setting, err := repo.Settings.UpsertSetting(ctx, settings.UpsertSettingParams{
		Key:   model.PriceSettingKey,
		Value: price.String(),
	})
	if err != nil {
		return fmt.Errorf("saving price: %w", err)
	}

	cmd.Printf("price per unit set to %s (version %d)\n", price, setting.Version)
	return nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", s)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, errors.New("price must be a non-negative number")
	}
	return price, nil
}
