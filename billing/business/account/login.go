package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"waterbill.app/billing/credential"
	"waterbill.app/billing/model"
)

var (
	errInvalidCredentials = &errs.Error{Code: errs.Unauthenticated, Message: "invalid phone number or password"}
	errThrottled          = &errs.Error{Code: errs.ResourceExhausted, Message: "too many attempts, try again later"}
)

// Login verifies a phone number and password. Unknown phones and wrong
// passwords fail identically.
func (b *business) Login(ctx context.Context, phoneNumber, password string) (*model.Account, error) {
	if !b.throttle.Allow(phoneNumber) {
		return nil, errThrottled
	}

	row, err := b.accountRepo.GetAccountByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errInvalidCredentials
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up user"}
	}

	if err := credential.Verify(row.PasswordHash, password); err != nil {
		if !errors.Is(err, credential.ErrMismatch) {
			rlog.Warn("stored credential is unreadable", "user_id", row.ID, "error", err)
		}
		return nil, errInvalidCredentials
	}

	account := model.AccountFromRow(row)
	return &account, nil
}
