package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/prioritypro/prioritypro/internal/api/domain"
	"github.com/prioritypro/prioritypro/internal/api/store"
	"github.com/prioritypro/prioritypro/pkg/cryptox"
	"github.com/prioritypro/prioritypro/pkg/idx"
	"github.com/prioritypro/prioritypro/pkg/slogx"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

var (
	// ErrDuplicateIdentity is returned when a registration collides with an
	// existing username or email.
	ErrDuplicateIdentity = errors.New("username or email already registered")

	// ErrInvalidCredentials is the uniform login failure. An unknown email
	// and a wrong password produce the same error so callers cannot probe
	// which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	Store store.Store
}

// Register validates the credentials, hashes the password and stores a new
// account. Fails with ValidationError before touching storage, and with
// ErrDuplicateIdentity when the username or email is taken.
func (s *AccountService) Register(
	ctx context.Context,
	username, email, password string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	fields := fieldErrors{}
	if len(username) < minUsernameLen {
		fields["username"] = "username must be at least 3 characters"
	}
	if !strings.Contains(email, "@") {
		fields["email"] = "please enter a valid email"
	}
	if len(password) < minPasswordLen {
		fields["password"] = "password must be at least 6 characters"
	}
	if err := fields.err(); err != nil {
		return domain.Account{}, err
	}

	// Pre-check both identities for a clean duplicate error. The UNIQUE
	// constraints catch the insert race below.
	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, email); err == nil {
		return domain.Account{}, ErrDuplicateIdentity
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, err
	}
	if _, err := s.Store.Accounts().GetAccountByUsername(ctx, username); err == nil {
		return domain.Account{}, ErrDuplicateIdentity
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrDuplicateIdentity
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered", slog.String("account_id", account.ID))
	return account, nil
}

// Authenticate resolves an account by email and checks the password against
// the stored hash. The hash material never leaves this function.
func (s *AccountService) Authenticate(
	ctx context.Context,
	email, password string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Info("password verification failed", slog.String("account_id", account.ID))
		return domain.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
