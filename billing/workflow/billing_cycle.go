package workflow

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// BillingCycleWorkflowParams contains parameters for starting a bill's cycle
type BillingCycleWorkflowParams struct {
	BillID  uuid.UUID `json:"bill_id"`
	DueDate time.Time `json:"due_date"`
}

// BillingCycle waits until the bill's due date and then marks it overdue,
// unless a settled signal arrives first.
func BillingCycle(ctx workflow.Context, params BillingCycleWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting billing cycle workflow", "billID", params.BillID, "dueDate", params.DueDate)

	settledCh := workflow.GetSignalChannel(ctx, BillSettledSignalName)

	wait := params.DueDate.Sub(workflow.Now(ctx))
	if wait > 0 {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, wait)

		settled := false
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(settledCh, func(c workflow.ReceiveChannel, more bool) {
			var signal BillSettledSignal
			c.Receive(ctx, &signal)
			logger.Info("Bill settled before due date", "billID", params.BillID)
			settled = true
			cancelTimer()
		})
		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Due date reached", "billID", params.BillID)
		})
		selector.Select(ctx)

		if settled {
			logger.Info("Billing cycle workflow completed", "billID", params.BillID)
			return nil
		}
	}

	if err := markOverdue(ctx, params.BillID); err != nil {
		logger.Error("Failed to mark bill overdue", "billID", params.BillID, "error", err)
		return err
	}

	logger.Info("Billing cycle workflow completed", "billID", params.BillID)
	return nil
}

// markOverdue executes the MarkBillOverdue activity
func markOverdue(ctx workflow.Context, billID uuid.UUID) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkBillOverdueActivity, billID).Get(ctx, nil)
}
