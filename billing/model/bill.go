package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingCycleDays is the fixed window between a bill's issue and due dates
const BillingCycleDays = 30

type Bill struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	ReadingID    uuid.UUID       `json:"readingId"`
	Amount       decimal.Decimal `json:"amount"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	IssueDate    time.Time       `json:"issueDate"`
	DueDate      time.Time       `json:"dueDate"`
	Status       BillStatus      `json:"status"`
	Consumption  decimal.Decimal `json:"consumption"`
	MeterImage   *string         `json:"meterImage,omitempty"`
	PaymentDate  *time.Time      `json:"paymentDate,omitempty"`
}

type BillStatus string

const (
	BillStatusUnpaid          BillStatus = "unpaid"
	BillStatusOverdue         BillStatus = "overdue"
	BillStatusPendingApproval BillStatus = "pending_approval"
	BillStatusPaid            BillStatus = "paid"
)

// BillStatuses lists every status in reporting order
var BillStatuses = []BillStatus{
	BillStatusUnpaid,
	BillStatusOverdue,
	BillStatusPendingApproval,
	BillStatusPaid,
}

func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusUnpaid, BillStatusOverdue, BillStatusPendingApproval, BillStatusPaid:
		return true
	}
	return false
}

// DueDateFor returns the due date of a bill issued at issuedAt
func DueDateFor(issuedAt time.Time) time.Time {
	return issuedAt.AddDate(0, 0, BillingCycleDays)
}

// PendingBill pairs a bill awaiting review with its account
type PendingBill struct {
	Bill Bill    `json:"bill"`
	User Account `json:"user"`
}

// IssuedBill is the result of recording a reading
type IssuedBill struct {
	Reading MeterReading `json:"reading"`
	Bill    Bill         `json:"bill"`
}
