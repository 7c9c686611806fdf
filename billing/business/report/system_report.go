package report

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/bills"
)

// trendMonths is the length of the monthly revenue series
const trendMonths = 12

const monthKeyLayout = "2006-01"

func (b *business) SystemReport(ctx context.Context) (*model.SystemReport, error) {
	if _, err := b.SweepOverdue(ctx); err != nil {
		return nil, err
	}
	now := b.now().UTC()

	statusRows, err := b.billRepo.SummarizeBillsByStatus(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to summarize bills"}
	}

	revenueRows, err := b.billRepo.MonthlyRevenueSince(ctx, store.Timestamptz(trendStart(now)))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load monthly revenue"}
	}

	billRows, err := b.billRepo.ListBillsWithAccountName(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	return &model.SystemReport{
		Summary:            BuildReportSummary(statusRows),
		MonthlyRevenue:     BuildMonthlyRevenue(revenueRows, now),
		StatusDistribution: BuildStatusDistribution(statusRows),
		AllBills: lo.Map(billRows, func(row bills.ListBillsWithAccountNameRow, _ int) model.BillWithUser {
			return model.BillWithUser{
				Bill: model.BillFromRow(row.Bill),
				User: model.AccountRef{ID: row.Bill.AccountID, Name: row.AccountName},
			}
		}),
		GeneratedAt: now,
	}, nil
}

// BuildReportSummary totals revenue (paid), outstanding (unpaid and overdue)
// and consumption (all bills). The average divides revenue plus outstanding
// by the number of bills, rounded to cents.
func BuildReportSummary(rows []bills.SummarizeBillsByStatusRow) model.ReportSummary {
	var summary model.ReportSummary
	count := 0
	for _, row := range rows {
		amount := store.Decimal(row.TotalAmount)
		switch model.BillStatus(row.Status) {
		case model.BillStatusPaid:
			summary.TotalRevenue = summary.TotalRevenue.Add(amount)
		case model.BillStatusUnpaid, model.BillStatusOverdue:
			summary.TotalOutstanding = summary.TotalOutstanding.Add(amount)
		}
		summary.TotalConsumption = summary.TotalConsumption.Add(store.Decimal(row.TotalConsumption))
		count += int(row.BillCount)
	}

	if count > 0 {
		total := summary.TotalRevenue.Add(summary.TotalOutstanding)
		summary.AverageBill = total.DivRound(decimal.NewFromInt(int64(count)), 2)
	}
	return summary
}

// BuildMonthlyRevenue returns one entry per month for the trailing months
// ending at now's month, oldest first. Months without payments report zero.
func BuildMonthlyRevenue(rows []bills.MonthlyRevenueSinceRow, now time.Time) []model.MonthlyRevenue {
	byMonth := lo.SliceToMap(rows, func(row bills.MonthlyRevenueSinceRow) (string, decimal.Decimal) {
		return row.Month, store.Decimal(row.Revenue)
	})

	start := trendStart(now)
	return lo.Times(trendMonths, func(i int) model.MonthlyRevenue {
		key := start.AddDate(0, i, 0).Format(monthKeyLayout)
		return model.MonthlyRevenue{Month: key, Revenue: byMonth[key]}
	})
}

// BuildStatusDistribution lists the bill count for every status in a fixed order
func BuildStatusDistribution(rows []bills.SummarizeBillsByStatusRow) []model.StatusCount {
	counts := lo.SliceToMap(rows, func(row bills.SummarizeBillsByStatusRow) (model.BillStatus, int) {
		return model.BillStatus(row.Status), int(row.BillCount)
	})
	return lo.Map(model.BillStatuses, func(status model.BillStatus, _ int) model.StatusCount {
		return model.StatusCount{Status: status, Count: counts[status]}
	})
}

// trendStart is the first instant of the oldest month in the series
func trendStart(now time.Time) time.Time {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(trendMonths - 1), 0)
}
