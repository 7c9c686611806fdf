package bill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"waterbill.app/billing/business/pricing"
	"waterbill.app/billing/domain"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store/bills"
	"waterbill.app/billing/store/readings"
)

type Business interface {
	RecordReading(ctx context.Context, accountID uuid.UUID, value decimal.Decimal, meterImage *string) (*model.IssuedBill, error)
	ListReadings(ctx context.Context, accountID uuid.UUID) ([]model.MeterReading, error)

	ListBillsForAccount(ctx context.Context, accountID uuid.UUID) ([]model.Bill, error)
	GetLatestBill(ctx context.Context, accountID uuid.UUID) (*model.Bill, error)
	ListPendingBills(ctx context.Context) ([]model.PendingBill, error)

	PayBill(ctx context.Context, billID uuid.UUID) (*model.Bill, error)
	ApprovePayment(ctx context.Context, billID uuid.UUID) (*model.Bill, error)
	RejectPayment(ctx context.Context, billID uuid.UUID) (*model.Bill, error)
	MarkOverdue(ctx context.Context, billID uuid.UUID) (*model.Bill, error)
}

// business handles readings, bill issuance and the payment review workflow
type business struct {
	billRepo     bills.Querier
	readingRepo  readings.Querier
	pricing      pricing.Business
	stateMachine domain.StateMachine
	now          func() time.Time
}

func NewBillBusiness(
	billRepo bills.Querier,
	readingRepo readings.Querier,
	pricingBusiness pricing.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		billRepo:     billRepo,
		readingRepo:  readingRepo,
		pricing:      pricingBusiness,
		stateMachine: stateMachine,
		now:          time.Now,
	}
}
