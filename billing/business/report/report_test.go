package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"waterbill.app/billing/mocks/store/bill_repo"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/bills"
)

var fixedNow = time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)

func statusRow(status model.BillStatus, count int32, amount, consumption string) bills.SummarizeBillsByStatusRow {
	return bills.SummarizeBillsByStatusRow{
		Status:           string(status),
		BillCount:        count,
		TotalAmount:      store.Numeric(decimal.RequireFromString(amount)),
		TotalConsumption: store.Numeric(decimal.RequireFromString(consumption)),
	}
}

func TestBuildInvoiceSummary(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []bills.SummarizeBillsByStatusRow
		expected [3]string
		counts   [3]int
	}{
		{
			name:     "no_bills",
			expected: [3]string{"0", "0", "0"},
		},
		{
			name: "overdue_counts_as_unpaid",
			rows: []bills.SummarizeBillsByStatusRow{
				statusRow(model.BillStatusPaid, 2, "300", "200"),
				statusRow(model.BillStatusUnpaid, 1, "45.5", "30"),
				statusRow(model.BillStatusOverdue, 3, "100", "80"),
				statusRow(model.BillStatusPendingApproval, 1, "12.25", "10"),
			},
			expected: [3]string{"300", "145.5", "12.25"},
			counts:   [3]int{2, 4, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := BuildInvoiceSummary(tc.rows)
			assert.Equal(t, tc.expected[0], summary.Paid.Total.String())
			assert.Equal(t, tc.expected[1], summary.Unpaid.Total.String())
			assert.Equal(t, tc.expected[2], summary.Pending.Total.String())
			assert.Equal(t, tc.counts[0], summary.Paid.Count)
			assert.Equal(t, tc.counts[1], summary.Unpaid.Count)
			assert.Equal(t, tc.counts[2], summary.Pending.Count)
		})
	}
}

func TestBuildReportSummary(t *testing.T) {
	testCases := []struct {
		name        string
		rows        []bills.SummarizeBillsByStatusRow
		revenue     string
		outstanding string
		consumption string
		average     string
	}{
		{
			name:        "no_bills_average_zero",
			revenue:     "0",
			outstanding: "0",
			consumption: "0",
			average:     "0",
		},
		{
			name: "pending_counts_toward_divisor_only",
			rows: []bills.SummarizeBillsByStatusRow{
				statusRow(model.BillStatusPaid, 1, "100", "50"),
				statusRow(model.BillStatusOverdue, 1, "50", "25"),
				statusRow(model.BillStatusPendingApproval, 1, "75", "40"),
			},
			revenue:     "100",
			outstanding: "50",
			consumption: "115",
			average:     "50",
		},
		{
			name: "average_rounded_to_cents",
			rows: []bills.SummarizeBillsByStatusRow{
				statusRow(model.BillStatusPaid, 2, "10", "5"),
				statusRow(model.BillStatusUnpaid, 1, "0", "0"),
			},
			revenue:     "10",
			outstanding: "0",
			consumption: "5",
			average:     "3.33",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := BuildReportSummary(tc.rows)
			assert.Equal(t, tc.revenue, summary.TotalRevenue.String())
			assert.Equal(t, tc.outstanding, summary.TotalOutstanding.String())
			assert.Equal(t, tc.consumption, summary.TotalConsumption.String())
			assert.Equal(t, tc.average, summary.AverageBill.String())
		})
	}
}

func TestBuildMonthlyRevenue(t *testing.T) {
	rows := []bills.MonthlyRevenueSinceRow{
		{Month: "2025-04", Revenue: store.Numeric(decimal.NewFromInt(20))},
		{Month: "2026-03", Revenue: store.Numeric(decimal.RequireFromString("99.5"))},
	}

	series := BuildMonthlyRevenue(rows, fixedNow)

	require.Len(t, series, 12)
	assert.Equal(t, "2025-04", series[0].Month)
	assert.Equal(t, "20", series[0].Revenue.String())
	assert.Equal(t, "2025-05", series[1].Month)
	assert.True(t, series[1].Revenue.IsZero())
	assert.Equal(t, "2026-03", series[11].Month)
	assert.Equal(t, "99.5", series[11].Revenue.String())
}

func TestBuildStatusDistribution(t *testing.T) {
	rows := []bills.SummarizeBillsByStatusRow{
		statusRow(model.BillStatusPaid, 4, "1", "1"),
		statusRow(model.BillStatusUnpaid, 2, "1", "1"),
	}

	assert.Equal(t, []model.StatusCount{
		{Status: model.BillStatusUnpaid, Count: 2},
		{Status: model.BillStatusOverdue, Count: 0},
		{Status: model.BillStatusPendingApproval, Count: 0},
		{Status: model.BillStatusPaid, Count: 4},
	}, BuildStatusDistribution(rows))
}

func TestTrendStart(t *testing.T) {
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), trendStart(fixedNow))
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), trendStart(time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC)))
}

func TestInvoiceSummary(t *testing.T) {
	testCases := []struct {
		name          string
		sweepError    error
		summaryError  error
		expectedError string
	}{
		{name: "success"},
		{
			name:          "sweep_fails",
			sweepError:    errors.New("conn reset"),
			expectedError: "failed to sweep overdue bills",
		},
		{
			name:          "summary_fails",
			summaryError:  errors.New("conn reset"),
			expectedError: "failed to summarize bills",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := bill_repo.NewMockQuerier(ctrl)
			b := &business{billRepo: repo, now: func() time.Time { return fixedNow }}

			repo.EXPECT().SweepOverdueBills(gomock.Any(), store.Timestamptz(fixedNow)).Return(int64(1), tc.sweepError)
			if tc.sweepError == nil {
				repo.EXPECT().SummarizeBillsByStatus(gomock.Any()).Return([]bills.SummarizeBillsByStatusRow{
					statusRow(model.BillStatusOverdue, 1, "30", "20"),
				}, tc.summaryError)
			}

			summary, err := b.InvoiceSummary(context.Background())
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, errs.Internal, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, summary.Unpaid.Count)
			assert.Equal(t, "30", summary.Unpaid.Total.String())
		})
	}
}

func TestSystemReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bill_repo.NewMockQuerier(ctrl)
	b := &business{billRepo: repo, now: func() time.Time { return fixedNow }}

	accountID := uuid.New()
	billRow := bills.Bill{
		ID:           uuid.New(),
		AccountID:    accountID,
		ReadingID:    uuid.New(),
		Amount:       store.Numeric(decimal.NewFromInt(15)),
		PricePerUnit: store.Numeric(decimal.RequireFromString("1.5")),
		Consumption:  store.Numeric(decimal.NewFromInt(10)),
		IssueDate:    store.Timestamptz(fixedNow.AddDate(0, 0, -5)),
		DueDate:      store.Timestamptz(fixedNow.AddDate(0, 0, 25)),
		Status:       string(model.BillStatusUnpaid),
	}

	repo.EXPECT().SweepOverdueBills(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().SummarizeBillsByStatus(gomock.Any()).Return([]bills.SummarizeBillsByStatusRow{
		statusRow(model.BillStatusUnpaid, 1, "15", "10"),
	}, nil)
	repo.EXPECT().
		MonthlyRevenueSince(gomock.Any(), store.Timestamptz(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))).
		Return(nil, nil)
	repo.EXPECT().ListBillsWithAccountName(gomock.Any()).Return([]bills.ListBillsWithAccountNameRow{
		{Bill: billRow, AccountName: "Jane"},
	}, nil)

	report, err := b.SystemReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fixedNow, report.GeneratedAt)
	assert.Equal(t, "15", report.Summary.TotalOutstanding.String())
	assert.Equal(t, "15", report.Summary.AverageBill.String())
	assert.Len(t, report.MonthlyRevenue, 12)
	assert.Len(t, report.StatusDistribution, 4)
	require.Len(t, report.AllBills, 1)
	assert.Equal(t, model.AccountRef{ID: accountID, Name: "Jane"}, report.AllBills[0].User)
	assert.Equal(t, billRow.ID, report.AllBills[0].ID)
}
