package billing

import (
	"context"

	"waterbill.app/billing/model"
)

func (s *Service) GetInvoiceSummary(ctx context.Context, _ *EmptyRequest) (*model.InvoiceSummary, error) {
	return s.services.Report.InvoiceSummary(ctx)
}

func (s *Service) GetSystemReportData(ctx context.Context, _ *EmptyRequest) (*model.SystemReport, error) {
	return s.services.Report.SystemReport(ctx)
}
