package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/settings"
)

// SetPrice upserts the price. Bills already issued keep their own snapshot.
func (b *business) SetPrice(ctx context.Context, price decimal.Decimal) (*model.PriceSetting, error) {
	if price.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "price must be a non-negative number"}
	}

	setting, err := b.settingRepo.UpsertSetting(ctx, settings.UpsertSettingParams{
		Key:   model.PriceSettingKey,
		Value: price.String(),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to save water price"}
	}

	return &model.PriceSetting{Value: price, Version: setting.Version, IsSet: true}, nil
}
