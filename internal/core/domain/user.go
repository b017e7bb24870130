package domain

import (
	"errors"
	"time"
)

const (
	RoleAdministrator = "administrator"
	RoleEmployee      = "employee"
	RoleManager       = "manager"
	RoleCustomer      = "customer"
)

const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

var ErrUserExists = errors.New("username or email already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models a registered account. The validate tags are the persistence
// schema: the user repository checks them before every insert, so a malformed
// record surfaces as a store-level validation failure rather than a handler
// pre-check.
type User struct {
	ID           string    `json:"id" validate:"-"`
	Username     string    `json:"username" validate:"required,min=3"`
	PasswordHash string    `json:"-" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Role         string    `json:"role" validate:"required,oneof=administrator employee manager customer"`
	MobileNumber string    `json:"mobileNumber" validate:"required,mobile"`
	Address      string    `json:"address" validate:"required"`
	DOB          time.Time `json:"dob" validate:"required"`
	Gender       string    `json:"gender" validate:"required,oneof=male female other prefer_not_to_say"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidationError reports a record or input rejected by the schema layer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
