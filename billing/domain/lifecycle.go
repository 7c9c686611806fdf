package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
)

// transitions lists the legal edges of the bill status machine. Paid is terminal.
var transitions = map[model.BillStatus][]model.BillStatus{
	model.BillStatusUnpaid:          {model.BillStatusOverdue, model.BillStatusPendingApproval},
	model.BillStatusOverdue:         {model.BillStatusPendingApproval},
	model.BillStatusPendingApproval: {model.BillStatusPaid, model.BillStatusUnpaid},
	model.BillStatusPaid:            nil,
}

// CanTransition reports whether a bill may move from one status to another
func CanTransition(from, to model.BillStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DeriveEffectiveStatus applies the lazy overdue rule: an unpaid bill whose
// due date has passed reads as overdue. Every other status is returned as is.
func DeriveEffectiveStatus(status model.BillStatus, dueDate, now time.Time) model.BillStatus {
	if status == model.BillStatusUnpaid && dueDate.Before(now) {
		return model.BillStatusOverdue
	}
	return status
}

// IsPayable reports whether the account holder may submit a payment
func IsPayable(status model.BillStatus) bool {
	return status == model.BillStatusUnpaid || status == model.BillStatusOverdue
}

// Charge is a bill computed from a reading before it is persisted
type Charge struct {
	Consumption  decimal.Decimal
	PricePerUnit decimal.Decimal
	Amount       decimal.Decimal
	IssueDate    time.Time
	DueDate      time.Time
	Status       model.BillStatus
}

// Consumption derives the consumed quantity between two meter values.
// Meters are monotonic, so a value below the previous one is rejected.
func Consumption(previous, current decimal.Decimal) (decimal.Decimal, error) {
	if current.IsNegative() {
		return decimal.Zero, &errs.Error{Code: errs.InvalidArgument, Message: "reading value must not be negative"}
	}
	if current.LessThan(previous) {
		return decimal.Zero, &errs.Error{Code: errs.InvalidArgument, Message: "new reading cannot be lower than the previous reading"}
	}
	return current.Sub(previous), nil
}

// IssueBill prices a consumption with the given price snapshot. The amount
// is fixed here and never recomputed.
func IssueBill(consumption, pricePerUnit decimal.Decimal, now time.Time) Charge {
	issued := now.UTC()
	return Charge{
		Consumption:  consumption,
		PricePerUnit: pricePerUnit,
		Amount:       consumption.Mul(pricePerUnit),
		IssueDate:    issued,
		DueDate:      model.DueDateFor(issued),
		Status:       model.BillStatusUnpaid,
	}
}
