// Package accounts is the simulated, device-local account registry.
// There is no token protocol and no backend: registration and login
// only gate which identity gets pushed into the state store.
package accounts

import (
	"context"
	"strings"
	"sync"

	"github.com/young4chick/kukuhub/internal/state"
	"github.com/young4chick/kukuhub/pkg/config"
	"github.com/young4chick/kukuhub/pkg/enums"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
	"github.com/young4chick/kukuhub/pkg/security"
)

// RegisterInput is the sign-up form payload.
type RegisterInput struct {
	Name            string         `validate:"required"`
	Email           string         `validate:"required,email"`
	Phone           string         `validate:"omitempty,min=7"`
	Password        string         `validate:"required,strongpwd"`
	ConfirmPassword string         `validate:"required,eqfield=Password"`
	UserType        enums.UserType `validate:"required"`
}

// LoginInput is the sign-in form payload. UserType is chosen on the
// form and wins over the role given at registration.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	UserType enums.UserType
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	Email           string `validate:"required,email"`
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,strongpwd"`
}

// Service registers accounts and signs identities into the app state.
type Service interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, input LoginInput) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}

type account struct {
	email        string
	name         string
	phone        string
	userType     enums.UserType
	passwordHash string
}

type service struct {
	mu          sync.Mutex
	accounts    map[string]*account
	store       *state.Store
	passwordCfg config.PasswordConfig
}

// NewService builds the registry bound to the given state store.
func NewService(store *state.Store, passwordCfg config.PasswordConfig) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "state store required")
	}
	return &service{
		accounts:    map[string]*account{},
		store:       store,
		passwordCfg: passwordCfg,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return formatValidationErrors(err)
	}
	if !input.UserType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid user type")
	}

	email := normalizeEmail(input.Email)
	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	s.mu.Lock()
	if _, exists := s.accounts[email]; exists {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}
	s.accounts[email] = &account{
		email:        email,
		name:         strings.TrimSpace(input.Name),
		phone:        strings.TrimSpace(input.Phone),
		userType:     input.UserType,
		passwordHash: hash,
	}
	s.mu.Unlock()

	s.store.Login(state.Identity{Email: email, Name: strings.TrimSpace(input.Name)}, input.UserType)
	return nil
}

func (s *service) Login(ctx context.Context, input LoginInput) error {
	if err := validate.Struct(input); err != nil {
		return formatValidationErrors(err)
	}

	email := normalizeEmail(input.Email)

	s.mu.Lock()
	found, exists := s.accounts[email]
	s.mu.Unlock()
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}

	ok, err := security.VerifyPassword(input.Password, found.passwordHash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeForbidden, "incorrect password")
	}

	userType := input.UserType
	if !userType.IsValid() {
		userType = found.userType
	}
	s.store.Login(state.Identity{Email: email, Name: found.name}, userType)
	return nil
}

func (s *service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := validate.Struct(input); err != nil {
		return formatValidationErrors(err)
	}

	email := normalizeEmail(input.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	found, exists := s.accounts[email]
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}

	ok, err := security.VerifyPassword(input.CurrentPassword, found.passwordHash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeForbidden, "current password is incorrect")
	}

	hash, err := security.HashPassword(input.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	found.passwordHash = hash
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
