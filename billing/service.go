package billing

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"waterbill.app/billing/business/account"
	"waterbill.app/billing/domain"
	"waterbill.app/billing/middleware/idempotency"
	"waterbill.app/billing/service"
	"waterbill.app/billing/store"
	"waterbill.app/billing/workflow"
)

var waterBillingDB = sqldb.NewDatabase("water_billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	services service.Services
	guard    *idempotency.Guard

	// temporal is nil when the billing-cycle workflow is disabled
	temporal  client.Client
	worker    worker.Worker
	taskQueue string
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(waterBillingDB)

	rlog.Info("Initializing Store")
	repo := store.NewStore(pgxdb)
	stateMachine := domain.NewBillStateMachine(pgxdb)

	services := service.NewServices(repo, stateMachine, account.Options{
		TempPasswordLength: cfg.TempPasswordLength,
		Throttle:           account.NewPhoneLimiter(cfg.CredentialAttemptsPerMinute, cfg.CredentialAttemptBurst),
	})

	s := &Service{
		services:  services,
		guard:     idempotency.NewGuard(idempotency.IdempotencyCache),
		taskQueue: cfg.Temporal.TaskQueue,
	}

	if !cfg.Temporal.Enabled {
		rlog.Info("Temporal disabled, overdue bills are derived on read only")
		return s, nil
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(services.Bill)
	w := worker.New(c, s.taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillingCycle)
	w.RegisterActivity(workflow.MarkBillOverdueActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	s.temporal = c
	s.worker = w
	return s, nil
}

// Shutdown stops the worker before the client it polls with
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
