package billing

import (
	"context"

	"github.com/google/uuid"

	"waterbill.app/billing/model"
	"waterbill.app/billing/workflow"
)

type BillRequest struct {
	BillID uuid.UUID `json:"billId" validate:"required"`
}

func (r *BillRequest) Validate() error { return validateStruct(r) }

func (s *Service) PayBill(ctx context.Context, req *BillRequest) (*model.Bill, error) {
	return s.services.Bill.PayBill(ctx, req.BillID)
}

func (s *Service) GetAllPendingBills(ctx context.Context, _ *EmptyRequest) ([]model.PendingBill, error) {
	return s.services.Bill.ListPendingBills(ctx)
}

// ApprovePayment settles the bill and stops its billing-cycle timer
func (s *Service) ApprovePayment(ctx context.Context, req *BillRequest) (*model.Bill, error) {
	bill, err := s.services.Bill.ApprovePayment(ctx, req.BillID)
	if err != nil {
		return nil, err
	}

	if s.temporal != nil {
		billID := bill.ID
		runAsync("signal-bill-settled", func(ctx context.Context) error {
			return s.temporal.SignalWorkflow(ctx, workflow.BillingCycleWorkflowID(billID), "", workflow.BillSettledSignalName, workflow.BillSettledSignal{BillID: billID})
		})
	}

	return bill, nil
}

func (s *Service) RejectPayment(ctx context.Context, req *BillRequest) (*model.Bill, error) {
	return s.services.Bill.RejectPayment(ctx, req.BillID)
}
