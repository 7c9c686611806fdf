package bill

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"waterbill.app/billing/domain"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/bills"
	"waterbill.app/billing/store/readings"
)

// readingScale matches the NUMERIC(14, 3) reading columns
const readingScale = 3

// RecordReading stores a new meter value and issues its bill in one
// transaction, holding the account row lock so submissions for the same
// account serialize.
func (b *business) RecordReading(ctx context.Context, accountID uuid.UUID, value decimal.Decimal, meterImage *string) (*model.IssuedBill, error) {
	price, err := b.pricing.GetPrice(ctx)
	if err != nil {
		return nil, err
	}
	value = value.Round(readingScale)

	var issued model.IssuedBill
	err = b.stateMachine.GetAccountWithLock(ctx, accountID, func(tx domain.Tx, account accounts.Account) error {
		previous := decimal.Zero
		last, err := tx.Readings().GetLatestReading(ctx, account.ID)
		switch {
		case err == nil:
			previous = store.Decimal(last.Reading)
		case errors.Is(err, pgx.ErrNoRows):
		default:
			return &errs.Error{Code: errs.Internal, Message: "failed to read previous reading"}
		}

		consumption, err := domain.Consumption(previous, value)
		if err != nil {
			return err
		}
		charge := domain.IssueBill(consumption, price.Value, b.now())

		reading, err := tx.Readings().CreateReading(ctx, readings.CreateReadingParams{
			AccountID:       account.ID,
			Reading:         store.Numeric(value),
			PreviousReading: store.Numeric(previous),
			Consumption:     store.Numeric(consumption),
			ProofImage:      store.TextPtr(meterImage),
			Date:            store.Timestamptz(charge.IssueDate),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to save reading"}
		}

		bill, err := tx.Bills().CreateBill(ctx, bills.CreateBillParams{
			AccountID:    account.ID,
			ReadingID:    reading.ID,
			Amount:       store.Numeric(charge.Amount),
			PricePerUnit: store.Numeric(charge.PricePerUnit),
			Consumption:  store.Numeric(charge.Consumption),
			IssueDate:    store.Timestamptz(charge.IssueDate),
			DueDate:      store.Timestamptz(charge.DueDate),
			Status:       string(charge.Status),
			ProofImage:   store.TextPtr(meterImage),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to issue bill"}
		}

		issued = model.IssuedBill{
			Reading: model.ReadingFromRow(reading),
			Bill:    model.BillFromRow(bill),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &issued, nil
}
