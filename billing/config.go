package billing

import (
	"encore.dev/config"
)

type TemporalConfig struct {
	// Enabled starts the billing-cycle worker and workflows. When off, the
	// overdue rule is still applied lazily on every read.
	Enabled   bool
	HostPort  string
	Namespace string
	TaskQueue string
}

type Config struct {
	Temporal TemporalConfig

	TempPasswordLength int

	// Per phone number limits for login and forgot-password
	CredentialAttemptsPerMinute int
	CredentialAttemptBurst      int
}

var cfg = config.Load[*Config]()
