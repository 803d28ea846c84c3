package domain

import "time"

// Roles. Both admin roles pass the admin gate; RoleUser does not.
const (
	RoleMainAdmin = "main_admin"
	RoleAdmin     = "admin"
	RoleUser      = "user"
)

// IsAdminRole reports whether role may use admin endpoints.
func IsAdminRole(role string) bool {
	return role == RoleMainAdmin || role == RoleAdmin
}

// User is a back-office account. Password is write-only: it is accepted on
// create, hashed into PasswordHash by the service, and never serialised.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name" validate:"required,max=120"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role" validate:"omitempty,oneof=main_admin admin user"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (u User) RecordID() int64      { return u.ID }
func (u User) RecordStatus() string { return u.Status }

type UserPatch struct {
	Name         *string    `json:"name" validate:"omitnil,min=1,max=120"`
	Email        *string    `json:"email" validate:"omitnil,email"`
	Password     *string    `json:"password" validate:"omitnil,min=8,max=72"`
	PasswordHash *string    `json:"-"`
	Role         *string    `json:"role" validate:"omitnil,oneof=main_admin admin user"`
	Status       *string    `json:"status"`
	LastLoginAt  *time.Time `json:"-"`
}

func (p UserPatch) PatchedStatus() *string { return p.Status }
