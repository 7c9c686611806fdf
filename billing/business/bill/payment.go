package bill

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"waterbill.app/billing/domain"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store/bills"
)

var (
	errNotPayable = &errs.Error{Code: errs.NotFound, Message: "bill not found or not payable"}
	errNotPending = &errs.Error{Code: errs.NotFound, Message: "bill not found or not pending review"}
)

// PayBill records a submitted payment for review. Only unpaid or overdue bills accept payment.
func (b *business) PayBill(ctx context.Context, billID uuid.UUID) (*model.Bill, error) {
	var result model.Bill
	err := b.stateMachine.GetBillWithLock(ctx, billID, func(tx domain.Tx, current bills.Bill) error {
		if !domain.IsPayable(model.BillStatus(current.Status)) {
			return errNotPayable
		}
		updated, err := tx.TransitionToPendingApproval(ctx, current)
		if err != nil {
			return err
		}
		result = model.BillFromRow(updated)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errNotPayable)
	}
	return &result, nil
}

// ApprovePayment confirms a pending payment and stamps the payment date
func (b *business) ApprovePayment(ctx context.Context, billID uuid.UUID) (*model.Bill, error) {
	var result model.Bill
	err := b.stateMachine.GetBillWithLock(ctx, billID, func(tx domain.Tx, current bills.Bill) error {
		if model.BillStatus(current.Status) != model.BillStatusPendingApproval {
			return errNotPending
		}
		updated, err := tx.TransitionToPaid(ctx, current, b.now().UTC())
		if err != nil {
			return err
		}
		result = model.BillFromRow(updated)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errNotPending)
	}
	return &result, nil
}

// RejectPayment returns a pending bill to unpaid, then re-applies the overdue
// rule inside the same transaction.
func (b *business) RejectPayment(ctx context.Context, billID uuid.UUID) (*model.Bill, error) {
	var result model.Bill
	err := b.stateMachine.GetBillWithLock(ctx, billID, func(tx domain.Tx, current bills.Bill) error {
		if model.BillStatus(current.Status) != model.BillStatusPendingApproval {
			return errNotPending
		}
		updated, err := tx.TransitionToUnpaid(ctx, current)
		if err != nil {
			return err
		}

		now := b.now()
		if domain.DeriveEffectiveStatus(model.BillStatusUnpaid, updated.DueDate.Time, now) == model.BillStatusOverdue {
			updated, err = tx.TransitionToOverdue(ctx, updated, now)
			if err != nil {
				return err
			}
		}
		result = model.BillFromRow(updated)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errNotPending)
	}
	return &result, nil
}

// MarkOverdue moves a single bill to overdue when it is still unpaid past its
// due date. Any other state is returned unchanged.
func (b *business) MarkOverdue(ctx context.Context, billID uuid.UUID) (*model.Bill, error) {
	var result model.Bill
	err := b.stateMachine.GetBillWithLock(ctx, billID, func(tx domain.Tx, current bills.Bill) error {
		now := b.now()
		status := model.BillStatus(current.Status)
		if domain.DeriveEffectiveStatus(status, current.DueDate.Time, now) == status {
			result = model.BillFromRow(current)
			return nil
		}
		updated, err := tx.TransitionToOverdue(ctx, current, now)
		if err != nil {
			return err
		}
		result = model.BillFromRow(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// notFoundAs rewrites the lock's generic not-found into the operation's message
func notFoundAs(err error, replacement *errs.Error) error {
	if errs.Code(err) == errs.NotFound {
		return replacement
	}
	return err
}
