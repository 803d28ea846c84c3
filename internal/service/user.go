package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// UserService manages back-office accounts. Passwords are hashed before
// they reach the repository and e-mail addresses are stored lower-cased.
type UserService struct {
	*Catalog[domain.User, domain.UserPatch]
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(r repo.UserRepo, log *zap.Logger) *UserService {
	c := NewCatalog("UserService", repo.Repository[domain.User, domain.UserPatch](r), domain.UserStatuses, nil, log)
	c.hooks = Hooks[domain.User, domain.UserPatch]{
		BeforeCreate: func(_ context.Context, u *domain.User) error {
			u.Email = normalizeEmail(u.Email)
			if u.Password == "" {
				return fmt.Errorf("%w: password is required", domain.ErrValidation)
			}
			hash, err := auth.HashSecret(u.Password)
			if err != nil {
				return fmt.Errorf("service.UserService.Create: %w", err)
			}
			u.PasswordHash, u.Password = hash, ""
			return nil
		},
		BeforeUpdate: func(_ context.Context, _ domain.User, p *domain.UserPatch) error {
			if p.Email != nil {
				e := normalizeEmail(*p.Email)
				p.Email = &e
			}
			if p.Password != nil {
				hash, err := auth.HashSecret(*p.Password)
				if err != nil {
					return fmt.Errorf("service.UserService.Update: %w", err)
				}
				p.PasswordHash, p.Password = &hash, nil
			}
			return nil
		},
	}
	return &UserService{Catalog: c}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
