package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/accounts"
)

func (b *business) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := b.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list users"}
	}
	return lo.Map(rows, func(row accounts.Account, _ int) model.Account {
		return model.AccountFromRow(row)
	}), nil
}

func (b *business) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	row, err := b.accountRepo.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "user not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get user"}
	}
	account := model.AccountFromRow(row)
	return &account, nil
}
