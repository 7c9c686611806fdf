package model

import (
	"github.com/shopspring/decimal"
)

// PriceSettingKey names the settings row holding the price per consumption unit
const PriceSettingKey = "water_price_per_unit"

// DefaultPricePerUnit applies until a price has been set
var DefaultPricePerUnit = decimal.RequireFromString("1.5")

func init() {
	// Amounts and quantities travel as JSON numbers, as clients expect.
	decimal.MarshalJSONWithoutQuotes = true
}

type PriceSetting struct {
	Value   decimal.Decimal `json:"price"`
	Version int32           `json:"version"`
	IsSet   bool            `json:"isSet"`
}
