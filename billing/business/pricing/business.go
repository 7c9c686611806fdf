package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/settings"
)

// Business holds the single price-per-unit setting that new bills snapshot
type Business interface {
	GetPrice(ctx context.Context) (*model.PriceSetting, error)
	SetPrice(ctx context.Context, price decimal.Decimal) (*model.PriceSetting, error)
}

type business struct {
	settingRepo settings.Querier
}

func NewPricingBusiness(settingRepo settings.Querier) Business {
	return &business{
		settingRepo: settingRepo,
	}
}
