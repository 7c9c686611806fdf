package workflow

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"waterbill.app/billing/business/bill"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness bill.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business) {
	activityDeps = &ActivityDependencies{
		BillBusiness: billBusiness,
	}
}

// MarkBillOverdueActivity applies the overdue rule to one bill. Bills that are
// no longer unpaid are left as they are.
func MarkBillOverdueActivity(ctx context.Context, billID uuid.UUID) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark overdue activity", "billID", billID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	bill, err := activityDeps.BillBusiness.MarkOverdue(ctx, billID)
	if err != nil {
		logger.Error("Failed to mark bill overdue", "billID", billID, "error", err)
		if errs.Code(err) == errs.NotFound {
			return temporal.NewNonRetryableApplicationError("bill not found", "BILL_NOT_FOUND", err)
		}
		return err
	}

	logger.Info("Applied overdue rule", "billID", billID, "status", bill.Status)
	return nil
}
