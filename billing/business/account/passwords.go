package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"waterbill.app/billing/credential"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store/accounts"
)

// ChangePassword swaps the stored hash only if it still matches the one the
// current password was verified against.
func (b *business) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (*model.Account, error) {
	row, err := b.accountRepo.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "user not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get user"}
	}

	if err := credential.Verify(row.PasswordHash, currentPassword); err != nil {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "current password is incorrect"}
	}

	hash, err := credential.Hash(newPassword)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to hash password"}
	}

	updated, err := b.accountRepo.SwapAccountPassword(ctx, accounts.SwapAccountPasswordParams{
		NewHash:     hash,
		ID:          id,
		CurrentHash: row.PasswordHash,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.Aborted, Message: "password was changed concurrently, try again"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to change password"}
	}

	account := model.AccountFromRow(updated)
	return &account, nil
}

// ForgotPasswordReset replaces the password with a temporary token returned once to the caller
func (b *business) ForgotPasswordReset(ctx context.Context, phoneNumber string) (*model.PasswordReset, error) {
	if !b.throttle.Allow(phoneNumber) {
		return nil, errThrottled
	}

	row, err := b.accountRepo.GetAccountByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "no user found with this phone number"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up user"}
	}

	temp, err := credential.TempPassword(b.tempPasswordLength)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to generate temporary password"}
	}
	hash, err := credential.Hash(temp)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to hash password"}
	}

	updated, err := b.accountRepo.SetAccountPassword(ctx, accounts.SetAccountPasswordParams{
		ID:           row.ID,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to reset password"}
	}

	return &model.PasswordReset{User: model.AccountFromRow(updated), TempPassword: temp}, nil
}

// ResetPasswordByAdmin sets a new password on any account except a super admin
func (b *business) ResetPasswordByAdmin(ctx context.Context, id uuid.UUID, newPassword string) (*model.Account, error) {
	hash, err := credential.Hash(newPassword)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to hash password"}
	}

	updated, err := b.accountRepo.SetUnprotectedAccountPassword(ctx, accounts.SetUnprotectedAccountPasswordParams{
		ID:           id,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, b.protectedOrMissing(ctx, id, "cannot reset the password of a super admin")
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to reset password"}
	}

	account := model.AccountFromRow(updated)
	return &account, nil
}

// protectedOrMissing explains why a conditional update on a protected account matched no row
func (b *business) protectedOrMissing(ctx context.Context, id uuid.UUID, protectedMsg string) error {
	if _, err := b.accountRepo.GetAccount(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "user not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to get user"}
	}
	return &errs.Error{Code: errs.PermissionDenied, Message: protectedMsg}
}
