package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bucket struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type InvoiceSummary struct {
	Paid    Bucket `json:"paid"`
	Unpaid  Bucket `json:"unpaid"`
	Pending Bucket `json:"pending"`
}

type ReportSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalConsumption decimal.Decimal `json:"totalConsumption"`
	AverageBill      decimal.Decimal `json:"averageBill"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type StatusCount struct {
	Status BillStatus `json:"status"`
	Count  int        `json:"count"`
}

// BillWithUser flattens a bill and attaches the owning account
type BillWithUser struct {
	Bill
	User AccountRef `json:"user"`
}

type SystemReport struct {
	Summary            ReportSummary    `json:"summary"`
	MonthlyRevenue     []MonthlyRevenue `json:"monthlyRevenue"`
	StatusDistribution []StatusCount    `json:"statusDistribution"`
	AllBills           []BillWithUser   `json:"allBills"`
	GeneratedAt        time.Time        `json:"generatedAt"`
}

type Announcement struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
