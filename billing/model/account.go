package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Account is the public view of an account. The credential never leaves the store.
type Account struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	MeterID     string    `json:"meterId"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AccountRef is the reduced account view joined onto report rows
type AccountRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProfileUpdate carries the fields of a partial profile edit. Nil fields are left unchanged.
type ProfileUpdate struct {
	ID          uuid.UUID
	Name        *string
	Address     *string
	PhoneNumber *string
	MeterID     *string
}

// Registration is the input of a self-service sign-up
type Registration struct {
	Name        string
	Address     string
	PhoneNumber string
	Password    string
}

// PasswordReset is returned once by the forgot-password flow
type PasswordReset struct {
	User         Account `json:"user"`
	TempPassword string  `json:"tempPass"`
}
