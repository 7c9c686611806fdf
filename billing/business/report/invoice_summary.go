package report

import (
	"context"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/bills"
)

func (b *business) InvoiceSummary(ctx context.Context) (*model.InvoiceSummary, error) {
	if _, err := b.SweepOverdue(ctx); err != nil {
		return nil, err
	}

	rows, err := b.billRepo.SummarizeBillsByStatus(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to summarize bills"}
	}

	summary := BuildInvoiceSummary(rows)
	return &summary, nil
}

// BuildInvoiceSummary partitions per-status totals into the paid, unpaid and
// pending buckets. Overdue bills count as unpaid.
func BuildInvoiceSummary(rows []bills.SummarizeBillsByStatusRow) model.InvoiceSummary {
	var summary model.InvoiceSummary
	for _, row := range rows {
		var bucket *model.Bucket
		switch model.BillStatus(row.Status) {
		case model.BillStatusPaid:
			bucket = &summary.Paid
		case model.BillStatusUnpaid, model.BillStatusOverdue:
			bucket = &summary.Unpaid
		case model.BillStatusPendingApproval:
			bucket = &summary.Pending
		default:
			continue
		}
		bucket.Total = bucket.Total.Add(store.Decimal(row.TotalAmount))
		bucket.Count += int(row.BillCount)
	}
	return summary
}
