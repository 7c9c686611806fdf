package report

import (
	"context"

	"encore.dev/beta/errs"

	"waterbill.app/billing/store"
)

// SweepOverdue moves every unpaid bill past its due date to overdue in one statement
func (b *business) SweepOverdue(ctx context.Context) (int64, error) {
	n, err := b.billRepo.SweepOverdueBills(ctx, store.Timestamptz(b.now()))
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to sweep overdue bills"}
	}
	return n, nil
}
