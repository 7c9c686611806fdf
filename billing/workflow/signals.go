package workflow

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// Signal names
	BillSettledSignalName = "bill-settled"
)

// BillSettledSignal tells a billing cycle its bill was paid before the due date
type BillSettledSignal struct {
	BillID uuid.UUID `json:"bill_id"`
}

// BillingCycleWorkflowID is the workflow id for a bill, one cycle per bill
func BillingCycleWorkflowID(billID uuid.UUID) string {
	return fmt.Sprintf("bill-cycle-%s", billID)
}
