package report

import (
	"context"
	"time"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/bills"
)

// Business computes read-only views over all bills. Every view runs the
// overdue sweep first so no stale unpaid bill is reported.
type Business interface {
	InvoiceSummary(ctx context.Context) (*model.InvoiceSummary, error)
	SystemReport(ctx context.Context) (*model.SystemReport, error)
	SweepOverdue(ctx context.Context) (int64, error)
}

type business struct {
	billRepo bills.Querier
	now      func() time.Time
}

func NewReportBusiness(billRepo bills.Querier) Business {
	return &business{
		billRepo: billRepo,
		now:      time.Now,
	}
}
