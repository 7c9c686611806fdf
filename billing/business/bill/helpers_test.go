package bill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"waterbill.app/billing/domain"
	"waterbill.app/billing/mocks/domain/state_machine"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/bills"
)

var fixedNow = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func billRow(status model.BillStatus, due time.Time) bills.Bill {
	return bills.Bill{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		ReadingID:    uuid.New(),
		Amount:       store.Numeric(decimal.NewFromInt(150)),
		PricePerUnit: store.Numeric(decimal.RequireFromString("1.5")),
		Consumption:  store.Numeric(decimal.NewFromInt(100)),
		IssueDate:    store.Timestamptz(due.AddDate(0, 0, -model.BillingCycleDays)),
		DueDate:      store.Timestamptz(due),
		Status:       string(status),
	}
}

// expectBillLock makes the state machine hand row to the callback through tx
func expectBillLock(sm *state_machine.MockStateMachine, tx domain.Tx, row bills.Bill) {
	sm.EXPECT().
		GetBillWithLock(gomock.Any(), row.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, fn func(domain.Tx, bills.Bill) error) error {
			return fn(tx, row)
		})
}

func expectAccountLock(sm *state_machine.MockStateMachine, tx domain.Tx, row accounts.Account) {
	sm.EXPECT().
		GetAccountWithLock(gomock.Any(), row.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, fn func(domain.Tx, accounts.Account) error) error {
			return fn(tx, row)
		})
}

func withStatus(row bills.Bill, status model.BillStatus) bills.Bill {
	row.Status = string(status)
	return row
}
