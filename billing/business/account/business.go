package account

import (
	"context"

	"github.com/google/uuid"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store/accounts"
)

type Business interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
	Register(ctx context.Context, reg model.Registration) (*model.Account, error)
	Login(ctx context.Context, phoneNumber, password string) (*model.Account, error)
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (*model.Account, error)
	ForgotPasswordReset(ctx context.Context, phoneNumber string) (*model.PasswordReset, error)
	ResetPasswordByAdmin(ctx context.Context, id uuid.UUID, newPassword string) (*model.Account, error)
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.Account, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.Account, error)
}

// Options tunes credential handling
type Options struct {
	TempPasswordLength int
	Throttle           Limiter
}

type business struct {
	accountRepo        accounts.Querier
	throttle           Limiter
	tempPasswordLength int
}

func NewAccountBusiness(accountRepo accounts.Querier, opts Options) Business {
	throttle := opts.Throttle
	if throttle == nil {
		throttle = unlimited{}
	}
	return &business{
		accountRepo:        accountRepo,
		throttle:           throttle,
		tempPasswordLength: opts.TempPasswordLength,
	}
}
