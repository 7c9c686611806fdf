package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/bills"
	"waterbill.app/billing/store/readings"
)

// Tx is the transaction handle passed to locked callbacks. Every query and
// transition made through it commits or rolls back together.
type Tx interface {
	Accounts() accounts.Querier
	Readings() readings.Querier
	Bills() bills.Querier

	TransitionToPendingApproval(ctx context.Context, bill bills.Bill) (bills.Bill, error)
	TransitionToPaid(ctx context.Context, bill bills.Bill, paidAt time.Time) (bills.Bill, error)
	TransitionToUnpaid(ctx context.Context, bill bills.Bill) (bills.Bill, error)
	TransitionToOverdue(ctx context.Context, bill bills.Bill, now time.Time) (bills.Bill, error)
}

// StateMachine owns transaction boundaries and row locks for bill and account mutations
type StateMachine interface {
	// GetBillWithLock runs fn with the bill row locked FOR UPDATE
	GetBillWithLock(ctx context.Context, billID uuid.UUID, fn func(tx Tx, bill bills.Bill) error) error

	// GetAccountWithLock runs fn with the account row locked FOR UPDATE
	GetAccountWithLock(ctx context.Context, accountID uuid.UUID, fn func(tx Tx, account accounts.Account) error) error
}

// Beginner is satisfied by *pgxpool.Pool
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BillStateMachine handles all bill state transitions inside database transactions
type BillStateMachine struct {
	db Beginner
}

func NewBillStateMachine(db Beginner) *BillStateMachine {
	return &BillStateMachine{db: db}
}

var _ StateMachine = (*BillStateMachine)(nil)

// withTx begins a transaction and hands a fresh handle to fn. The handle is
// scoped to this call so concurrent requests never share a transaction.
func (sm *BillStateMachine) withTx(ctx context.Context, fn func(h *txHandle) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(newTxHandle(store.WithTx(tx))); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}

func (sm *BillStateMachine) GetBillWithLock(ctx context.Context, billID uuid.UUID, fn func(tx Tx, bill bills.Bill) error) error {
	return sm.withTx(ctx, func(h *txHandle) error {
		current, err := h.bills.GetBillForUpdate(ctx, billID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock bill for state transition"}
		}
		return fn(h, current)
	})
}

func (sm *BillStateMachine) GetAccountWithLock(ctx context.Context, accountID uuid.UUID, fn func(tx Tx, account accounts.Account) error) error {
	return sm.withTx(ctx, func(h *txHandle) error {
		current, err := h.accounts.GetAccountForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "user not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock user"}
		}
		return fn(h, current)
	})
}

type txHandle struct {
	accounts accounts.Querier
	readings readings.Querier
	bills    bills.Querier
}

func newTxHandle(s *store.Store) *txHandle {
	return &txHandle{
		accounts: s.Accounts,
		readings: s.Readings,
		bills:    s.Bills,
	}
}

func (h *txHandle) Accounts() accounts.Querier { return h.accounts }
func (h *txHandle) Readings() readings.Querier { return h.readings }
func (h *txHandle) Bills() bills.Querier       { return h.bills }

// transition validates the edge and persists the new status
func (h *txHandle) transition(ctx context.Context, bill bills.Bill, to model.BillStatus, paidAt *time.Time) (bills.Bill, error) {
	from := model.BillStatus(bill.Status)
	if !CanTransition(from, to) {
		return bills.Bill{}, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("bill cannot move from %s to %s", from, to),
		}
	}

	updated, err := h.bills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
		ID:          bill.ID,
		Status:      string(to),
		PaymentDate: store.NullableTimestamptz(paidAt),
	})
	if err != nil {
		return bills.Bill{}, &errs.Error{Code: errs.Internal, Message: "failed to update bill status"}
	}
	return updated, nil
}

// TransitionToPendingApproval records a submitted payment and clears any payment date
func (h *txHandle) TransitionToPendingApproval(ctx context.Context, bill bills.Bill) (bills.Bill, error) {
	return h.transition(ctx, bill, model.BillStatusPendingApproval, nil)
}

// TransitionToPaid confirms a pending payment
func (h *txHandle) TransitionToPaid(ctx context.Context, bill bills.Bill, paidAt time.Time) (bills.Bill, error) {
	return h.transition(ctx, bill, model.BillStatusPaid, &paidAt)
}

// TransitionToUnpaid rejects a pending payment
func (h *txHandle) TransitionToUnpaid(ctx context.Context, bill bills.Bill) (bills.Bill, error) {
	return h.transition(ctx, bill, model.BillStatusUnpaid, nil)
}

// TransitionToOverdue marks an unpaid bill overdue once its due date has passed
func (h *txHandle) TransitionToOverdue(ctx context.Context, bill bills.Bill, now time.Time) (bills.Bill, error) {
	if !bill.DueDate.Time.Before(now) {
		return bills.Bill{}, &errs.Error{Code: errs.FailedPrecondition, Message: "bill is not past due"}
	}
	return h.transition(ctx, bill, model.BillStatusOverdue, nil)
}
