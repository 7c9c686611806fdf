package billing

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"waterbill.app/billing/model"
)

// EmptyRequest is the payload of actions that take no arguments
type EmptyRequest struct{}

type GetUserByIDRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

func (r *GetUserByIDRequest) Validate() error { return validateStruct(r) }

type RegisterUserData struct {
	Name        string `json:"name" validate:"required,max=255"`
	Address     string `json:"address" validate:"required,max=500"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=32"`
	Password    string `json:"password" validate:"required,max=72"`
}

type RegisterUserRequest struct {
	UserData *RegisterUserData `json:"userData" validate:"required"`
}

func (r *RegisterUserRequest) Validate() error { return validateStruct(r) }

type LoginUserRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

func (r *LoginUserRequest) Validate() error { return validateStruct(r) }

type ChangePasswordRequest struct {
	UserID          uuid.UUID `json:"userId" validate:"required"`
	CurrentPassword string    `json:"currentPassword" validate:"required"`
	NewPassword     string    `json:"newPassword" validate:"required,max=72"`
}

func (r *ChangePasswordRequest) Validate() error { return validateStruct(r) }

type ForgotPasswordResetRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func (r *ForgotPasswordResetRequest) Validate() error { return validateStruct(r) }

type ResetPasswordByAdminRequest struct {
	UserID      uuid.UUID `json:"userId" validate:"required"`
	NewPassword string    `json:"newPassword" validate:"required,max=72"`
}

func (r *ResetPasswordByAdminRequest) Validate() error { return validateStruct(r) }

// UpdatedUser lists the editable profile fields. Omitted fields keep their value.
type UpdatedUser struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Name        *string   `json:"name" validate:"omitempty,max=255"`
	Address     *string   `json:"address" validate:"omitempty,max=500"`
	PhoneNumber *string   `json:"phoneNumber" validate:"omitempty,max=32"`
	MeterID     *string   `json:"meterId" validate:"omitempty,max=32"`
}

func init() {
	validate.RegisterStructValidation(validateUpdatedUser, UpdatedUser{})
}

// validateUpdatedUser rejects fields that are present but blank, so an edit
// cannot clear what registration requires.
func validateUpdatedUser(sl validator.StructLevel) {
	u := sl.Current().Interface().(UpdatedUser)
	fields := []struct {
		value           *string
		name, fieldName string
	}{
		{u.Name, "name", "Name"},
		{u.Address, "address", "Address"},
		{u.PhoneNumber, "phoneNumber", "PhoneNumber"},
		{u.MeterID, "meterId", "MeterID"},
	}
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			sl.ReportError(*f.value, f.name, f.fieldName, "notblank", "")
		}
	}
}

type UpdateUserRequest struct {
	UpdatedUser *UpdatedUser `json:"updatedUser" validate:"required"`
}

func (r *UpdateUserRequest) Validate() error { return validateStruct(r) }

type UpdateUserRoleRequest struct {
	UserID  uuid.UUID  `json:"userId" validate:"required"`
	NewRole model.Role `json:"newRole" validate:"required"`
}

func (r *UpdateUserRoleRequest) Validate() error { return validateStruct(r) }

func (s *Service) GetAllUsers(ctx context.Context, _ *EmptyRequest) ([]model.Account, error) {
	return s.services.Account.ListAccounts(ctx)
}

func (s *Service) GetUserByID(ctx context.Context, req *GetUserByIDRequest) (*model.Account, error) {
	return s.services.Account.GetAccount(ctx, req.ID)
}

func (s *Service) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*model.Account, error) {
	return s.services.Account.Register(ctx, model.Registration{
		Name:        req.UserData.Name,
		Address:     req.UserData.Address,
		PhoneNumber: req.UserData.PhoneNumber,
		Password:    req.UserData.Password,
	})
}

func (s *Service) LoginUser(ctx context.Context, req *LoginUserRequest) (*model.Account, error) {
	return s.services.Account.Login(ctx, req.PhoneNumber, req.Password)
}

func (s *Service) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*model.Account, error) {
	return s.services.Account.ChangePassword(ctx, req.UserID, req.CurrentPassword, req.NewPassword)
}

func (s *Service) ForgotPasswordReset(ctx context.Context, req *ForgotPasswordResetRequest) (*model.PasswordReset, error) {
	return s.services.Account.ForgotPasswordReset(ctx, req.PhoneNumber)
}

func (s *Service) ResetPasswordByAdmin(ctx context.Context, req *ResetPasswordByAdminRequest) (*model.Account, error) {
	return s.services.Account.ResetPasswordByAdmin(ctx, req.UserID, req.NewPassword)
}

func (s *Service) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*model.Account, error) {
	u := req.UpdatedUser
	return s.services.Account.UpdateProfile(ctx, model.ProfileUpdate{
		ID:          u.ID,
		Name:        u.Name,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		MeterID:     u.MeterID,
	})
}

func (s *Service) UpdateUserRole(ctx context.Context, req *UpdateUserRoleRequest) (*model.Account, error) {
	return s.services.Account.UpdateRole(ctx, req.UserID, req.NewRole)
}
