package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"waterbill.app/billing/model"
)

// GetPrice returns the stored price, or the default when none was ever set
func (b *business) GetPrice(ctx context.Context) (*model.PriceSetting, error) {
	setting, err := b.settingRepo.GetSetting(ctx, model.PriceSettingKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.PriceSetting{Value: model.DefaultPricePerUnit}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to read water price"}
	}

	value, err := decimal.NewFromString(setting.Value)
	if err != nil {
		rlog.Warn("stored water price is not a number, using default", "value", setting.Value)
		return &model.PriceSetting{Value: model.DefaultPricePerUnit, Version: setting.Version}, nil
	}

	return &model.PriceSetting{Value: value, Version: setting.Version, IsSet: true}, nil
}
