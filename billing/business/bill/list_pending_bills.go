package bill

import (
	"context"

	"github.com/samber/lo"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/bills"
)

// ListPendingBills returns bills awaiting review, oldest first
func (b *business) ListPendingBills(ctx context.Context) ([]model.PendingBill, error) {
	rows, err := b.billRepo.ListPendingBillsWithAccount(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list pending bills"}
	}
	return lo.Map(rows, func(row bills.ListPendingBillsWithAccountRow, _ int) model.PendingBill {
		return model.PendingBill{
			Bill: model.BillFromRow(row.Bill),
			User: model.AccountFromBillJoin(row.Account),
		}
	}), nil
}
