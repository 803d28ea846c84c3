package repo

import (
	"context"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// UserRepo adds e-mail lookup for login and password reset.
type UserRepo interface {
	Repository[domain.User, domain.UserPatch]

	// FindByEmail expects an already lower-cased address.
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type pgUserRepo struct {
	*Table[domain.User, domain.UserPatch]
}

// NewUserRepo returns a UserRepo backed by db.
func NewUserRepo(db db) UserRepo {
	return pgUserRepo{newTable(db, userEntity)}
}

func (r pgUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, "FindByEmail", "email", email)
}

var userEntity = entity[domain.User, domain.UserPatch]{
	name:  "UserRepo",
	table: "users",
	columns: []string{
		"id", "name", "email", "password_hash", "role", "status", "last_login_at",
		"created_at", "updated_at",
	},
	scan: func(s scanner) (domain.User, error) {
		var u domain.User
		err := s.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
			&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
		return u, err
	},
	insert: func(u domain.User) ([]field, error) {
		var s fieldSet
		s.add("name", u.Name)
		s.add("email", u.Email)
		s.add("password_hash", u.PasswordHash)
		role := u.Role
		if role == "" {
			role = domain.RoleAdmin
		}
		s.add("role", role)
		s.add("status", u.Status)
		return s.result()
	},
	patch: func(p domain.UserPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "name", p.Name)
		opt(&s, "email", p.Email)
		opt(&s, "password_hash", p.PasswordHash)
		opt(&s, "role", p.Role)
		opt(&s, "status", p.Status)
		opt(&s, "last_login_at", p.LastLoginAt)
		return s.result()
	},
	filters:  []Filter{{Key: "role", Column: "role", Op: OpEqual}},
	search:   []string{"name", "email"},
	statuses: domain.UserStatuses,
	orderBy:  "created_at DESC, id DESC",
	touch:    true,
}
