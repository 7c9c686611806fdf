package bill

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/readings"
)

func (b *business) ListReadings(ctx context.Context, accountID uuid.UUID) ([]model.MeterReading, error) {
	rows, err := b.readingRepo.ListReadingsByAccount(ctx, accountID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list readings"}
	}
	return lo.Map(rows, func(row readings.MeterReading, _ int) model.MeterReading {
		return model.ReadingFromRow(row)
	}), nil
}
