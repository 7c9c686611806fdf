package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
)

// UpdateProfile merges the provided fields onto the stored account in one statement
func (b *business) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.Account, error) {
	row, err := b.accountRepo.UpdateAccountProfile(ctx, accounts.UpdateAccountProfileParams{
		Name:        store.TextPtr(update.Name),
		Address:     store.TextPtr(update.Address),
		PhoneNumber: store.TextPtr(update.PhoneNumber),
		MeterID:     store.TextPtr(update.MeterID),
		ID:          update.ID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "user not found"}
		}
		switch uniqueViolation(err) {
		case phoneConstraint:
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "phone number is already used by another user"}
		case meterConstraint:
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "meter id is already assigned to another user"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update user"}
	}

	account := model.AccountFromRow(row)
	return &account, nil
}

// UpdateRole grants user or admin. The super admin role can be neither granted nor revoked.
func (b *business) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.Account, error) {
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "role must be user or admin"}
	}

	row, err := b.accountRepo.SetUnprotectedAccountRole(ctx, accounts.SetUnprotectedAccountRoleParams{
		ID:   id,
		Role: string(role),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, b.protectedOrMissing(ctx, id, "cannot change the role of a super admin")
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update role"}
	}

	account := model.AccountFromRow(row)
	return &account, nil
}
