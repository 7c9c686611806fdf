package service

import (
	"waterbill.app/billing/business/account"
	"waterbill.app/billing/business/announcement"
	"waterbill.app/billing/business/bill"
	"waterbill.app/billing/business/pricing"
	"waterbill.app/billing/business/report"
	"waterbill.app/billing/domain"
	"waterbill.app/billing/store"
)

// Services holds all business components
type Services struct {
	Account      account.Business
	Bill         bill.Business
	Pricing      pricing.Business
	Report       report.Business
	Announcement announcement.Business
}

// NewServices wires every business component over one store. The state
// machine owns the transactions for operations that lock rows.
func NewServices(repo *store.Store, stateMachine domain.StateMachine, accountOpts account.Options) Services {
	pricingBusiness := pricing.NewPricingBusiness(repo.Settings)

	return Services{
		Account:      account.NewAccountBusiness(repo.Accounts, accountOpts),
		Bill:         bill.NewBillBusiness(repo.Bills, repo.Readings, pricingBusiness, stateMachine),
		Pricing:      pricingBusiness,
		Report:       report.NewReportBusiness(repo.Bills),
		Announcement: announcement.NewAnnouncementBusiness(repo.Announcements),
	}
}
