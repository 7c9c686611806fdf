package account

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"waterbill.app/billing/credential"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store/accounts"
)

// meterIDAttempts bounds retries when the sequence hands out a meter id that was seeded by hand
const meterIDAttempts = 3

// Register creates a user account with the next sequential meter id
func (b *business) Register(ctx context.Context, reg model.Registration) (*model.Account, error) {
	hash, err := credential.Hash(reg.Password)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to hash password"}
	}

	for attempt := 1; attempt <= meterIDAttempts; attempt++ {
		row, err := b.accountRepo.CreateAccount(ctx, accounts.CreateAccountParams{
			Name:         reg.Name,
			Address:      reg.Address,
			PhoneNumber:  reg.PhoneNumber,
			PasswordHash: hash,
		})
		if err == nil {
			account := model.AccountFromRow(row)
			return &account, nil
		}

		switch uniqueViolation(err) {
		case phoneConstraint:
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "phone number is already registered"}
		case meterConstraint:
			rlog.Warn("meter id already taken, retrying", "attempt", attempt)
			continue
		default:
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to create user"}
		}
	}

	return nil, &errs.Error{Code: errs.Internal, Message: "failed to assign a meter id"}
}
