package bill

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"encore.dev/beta/errs"

	"waterbill.app/billing/domain"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/bills"
)

// ListBillsForAccount returns the account's bills newest first with the overdue rule applied
func (b *business) ListBillsForAccount(ctx context.Context, accountID uuid.UUID) ([]model.Bill, error) {
	rows, err := b.billRepo.ListBillsByAccount(ctx, accountID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}
	return b.applyOverdue(ctx, rows)
}

// GetLatestBill returns the most recently issued bill, or nil when the account has none
func (b *business) GetLatestBill(ctx context.Context, accountID uuid.UUID) (*model.Bill, error) {
	list, err := b.ListBillsForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// applyOverdue derives each bill's effective status and persists the ones
// that turned overdue with a single conditional update.
func (b *business) applyOverdue(ctx context.Context, rows []bills.Bill) ([]model.Bill, error) {
	now := b.now()

	stale := lo.FilterMap(rows, func(row bills.Bill, _ int) (uuid.UUID, bool) {
		status := model.BillStatus(row.Status)
		return row.ID, domain.DeriveEffectiveStatus(status, row.DueDate.Time, now) != status
	})

	if len(stale) > 0 {
		updated, err := b.billRepo.MarkBillsOverdue(ctx, bills.MarkBillsOverdueParams{
			Ids: stale,
			Now: store.Timestamptz(now),
		})
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to update overdue bills"}
		}
		byID := lo.KeyBy(updated, func(row bills.Bill) uuid.UUID { return row.ID })
		for _, id := range stale {
			if _, ok := byID[id]; ok {
				continue
			}
			// changed between the read and the update, take what is stored now
			current, err := b.billRepo.GetBill(ctx, id)
			if err != nil {
				return nil, &errs.Error{Code: errs.Internal, Message: "failed to reload bill"}
			}
			byID[id] = current
		}
		for i, row := range rows {
			if fresh, ok := byID[row.ID]; ok {
				rows[i] = fresh
			}
		}
	}

	return lo.Map(rows, func(row bills.Bill, _ int) model.Bill {
		bill := model.BillFromRow(row)
		bill.Status = domain.DeriveEffectiveStatus(bill.Status, bill.DueDate, now)
		return bill
	}), nil
}
