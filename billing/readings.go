package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/rlog"

	"waterbill.app/billing/model"
	"waterbill.app/billing/workflow"
)

// UserRequest is the payload of the per-account read actions
type UserRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

func (r *UserRequest) Validate() error { return validateStruct(r) }

type AddMeterReadingRequest struct {
	UserID          uuid.UUID        `json:"userId" validate:"required"`
	NewReadingValue *decimal.Decimal `json:"newReadingValue" validate:"required"`
	MeterImage      *string          `json:"meterImage"`
}

func (r *AddMeterReadingRequest) Validate() error { return validateStruct(r) }

func (s *Service) GetReadingsForUser(ctx context.Context, req *UserRequest) ([]model.MeterReading, error) {
	return s.services.Bill.ListReadings(ctx, req.UserID)
}

func (s *Service) GetBillsForUser(ctx context.Context, req *UserRequest) ([]model.Bill, error) {
	return s.services.Bill.ListBillsForAccount(ctx, req.UserID)
}

// GetLatestBillForUser returns null data when the account has no bills
func (s *Service) GetLatestBillForUser(ctx context.Context, req *UserRequest) (*model.Bill, error) {
	return s.services.Bill.GetLatestBill(ctx, req.UserID)
}

func (s *Service) AddMeterReading(ctx context.Context, req *AddMeterReadingRequest) (*model.IssuedBill, error) {
	meterImage := req.MeterImage
	if meterImage != nil && *meterImage == "" {
		meterImage = nil
	}

	result, err := s.services.Bill.RecordReading(ctx, req.UserID, *req.NewReadingValue, meterImage)
	if err != nil {
		return nil, err
	}

	// The overdue rule is also applied on read, so a failed start only loses the timer
	if wfErr := s.startBillingCycle(ctx, result.Bill); wfErr != nil {
		rlog.Error("workflow start issue", "bill_id", result.Bill.ID, "workflow_id", workflow.BillingCycleWorkflowID(result.Bill.ID), "error", wfErr)
	}

	return result, nil
}

// startBillingCycle starts the workflow that marks the bill overdue at its due date
func (s *Service) startBillingCycle(ctx context.Context, bill model.Bill) error {
	if s.temporal == nil {
		return nil
	}
	workflowID := workflow.BillingCycleWorkflowID(bill.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}

	params := workflow.BillingCycleWorkflowParams{
		BillID:  bill.ID,
		DueDate: bill.DueDate,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillingCycle, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "bill_id", bill.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
