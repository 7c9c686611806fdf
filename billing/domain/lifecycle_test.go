package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name     string
		from     model.BillStatus
		to       model.BillStatus
		expected bool
	}{
		{name: "unpaid_to_overdue", from: model.BillStatusUnpaid, to: model.BillStatusOverdue, expected: true},
		{name: "unpaid_to_pending", from: model.BillStatusUnpaid, to: model.BillStatusPendingApproval, expected: true},
		{name: "overdue_to_pending", from: model.BillStatusOverdue, to: model.BillStatusPendingApproval, expected: true},
		{name: "pending_to_paid", from: model.BillStatusPendingApproval, to: model.BillStatusPaid, expected: true},
		{name: "pending_to_unpaid", from: model.BillStatusPendingApproval, to: model.BillStatusUnpaid, expected: true},
		{name: "unpaid_to_paid", from: model.BillStatusUnpaid, to: model.BillStatusPaid, expected: false},
		{name: "overdue_to_unpaid", from: model.BillStatusOverdue, to: model.BillStatusUnpaid, expected: false},
		{name: "pending_to_overdue", from: model.BillStatusPendingApproval, to: model.BillStatusOverdue, expected: false},
		{name: "paid_to_overdue", from: model.BillStatusPaid, to: model.BillStatusOverdue, expected: false},
		{name: "paid_to_pending", from: model.BillStatusPaid, to: model.BillStatusPendingApproval, expected: false},
		{name: "paid_to_unpaid", from: model.BillStatusPaid, to: model.BillStatusUnpaid, expected: false},
		{name: "unknown_status", from: model.BillStatus("void"), to: model.BillStatusPaid, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanTransition(tc.from, tc.to))
		})
	}
}

func TestDeriveEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	testCases := []struct {
		name     string
		status   model.BillStatus
		dueDate  time.Time
		expected model.BillStatus
	}{
		{name: "unpaid_past_due", status: model.BillStatusUnpaid, dueDate: past, expected: model.BillStatusOverdue},
		{name: "unpaid_not_due", status: model.BillStatusUnpaid, dueDate: future, expected: model.BillStatusUnpaid},
		{name: "unpaid_due_exactly_now", status: model.BillStatusUnpaid, dueDate: now, expected: model.BillStatusUnpaid},
		{name: "paid_past_due_stays_paid", status: model.BillStatusPaid, dueDate: past, expected: model.BillStatusPaid},
		{name: "pending_past_due_stays_pending", status: model.BillStatusPendingApproval, dueDate: past, expected: model.BillStatusPendingApproval},
		{name: "overdue_stays_overdue", status: model.BillStatusOverdue, dueDate: past, expected: model.BillStatusOverdue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveEffectiveStatus(tc.status, tc.dueDate, now))
		})
	}
}

func TestIsPayable(t *testing.T) {
	assert.True(t, IsPayable(model.BillStatusUnpaid))
	assert.True(t, IsPayable(model.BillStatusOverdue))
	assert.False(t, IsPayable(model.BillStatusPendingApproval))
	assert.False(t, IsPayable(model.BillStatusPaid))
}

func TestConsumption(t *testing.T) {
	testCases := []struct {
		name          string
		previous      string
		current       string
		expected      string
		expectedError string
	}{
		{name: "first_reading", previous: "0", current: "100", expected: "100"},
		{name: "increase", previous: "100", current: "142.5", expected: "42.5"},
		{name: "unchanged", previous: "100", current: "100", expected: "0"},
		{name: "decrease_rejected", previous: "100", current: "50", expectedError: "lower than the previous reading"},
		{name: "negative_rejected", previous: "0", current: "-1", expectedError: "must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Consumption(decimal.RequireFromString(tc.previous), decimal.RequireFromString(tc.current))

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(result), "got %s", result)
		})
	}
}

func TestIssueBill(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	charge := IssueBill(decimal.NewFromInt(100), decimal.RequireFromString("1.5"), now)

	assert.Equal(t, "150", charge.Amount.String())
	assert.Equal(t, "1.5", charge.PricePerUnit.String())
	assert.Equal(t, model.BillStatusUnpaid, charge.Status)
	assert.Equal(t, time.UTC, charge.IssueDate.Location())
	assert.True(t, charge.IssueDate.Equal(now))
	assert.Equal(t, charge.IssueDate.AddDate(0, 0, 30), charge.DueDate)
}

func TestIssueBillAmountIsProduct(t *testing.T) {
	testCases := []struct {
		consumption string
		price       string
		expected    string
	}{
		{consumption: "0", price: "1.5", expected: "0"},
		{consumption: "12.345", price: "2", expected: "24.69"},
		{consumption: "7", price: "0", expected: "0"},
		{consumption: "33.3", price: "0.3", expected: "9.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.consumption+"x"+tc.price, func(t *testing.T) {
			charge := IssueBill(decimal.RequireFromString(tc.consumption), decimal.RequireFromString(tc.price), time.Now())
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(charge.Amount), "got %s", charge.Amount)
		})
	}
}
