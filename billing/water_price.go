package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"waterbill.app/billing/model"
)

type SetWaterPriceRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required"`
}

func (r *SetWaterPriceRequest) Validate() error { return validateStruct(r) }

func (s *Service) GetWaterPrice(ctx context.Context, _ *EmptyRequest) (*model.PriceSetting, error) {
	return s.services.Pricing.GetPrice(ctx)
}

// SetWaterPrice changes the price for bills issued from now on
func (s *Service) SetWaterPrice(ctx context.Context, req *SetWaterPriceRequest) (*model.PriceSetting, error) {
	return s.services.Pricing.SetPrice(ctx, *req.Price)
}
