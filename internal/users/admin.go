package users

import (
	"context"
	"errors"
	"fmt"
)

// Default administrator identity.
const (
	DefaultAdminEmail = "admin@glypha.com"
	DefaultAdminName  = "Administrador"
)

// AdminSpec describes the administrator account to seed.
type AdminSpec struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates the administrator account unless a user with the same
// email already exists. created is false when the account was already there.
func EnsureAdmin(ctx context.Context, s *Store, spec AdminSpec) (u User, created bool, err error) {
	if spec.Email == "" {
		spec.Email = DefaultAdminEmail
	}
	if spec.Name == "" {
		spec.Name = DefaultAdminName
	}

	existing, err := s.FindByEmail(ctx, spec.Email)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, ErrNotFound):
		return User{}, false, fmt.Errorf("checking for existing admin: %w", err)
	}

	u, err = s.Create(ctx, spec.Name, spec.Email, spec.Password, RoleAdmin)
	if err != nil {
		return User{}, false, fmt.Errorf("creating admin: %w", err)
	}
	return u, true, nil
}
