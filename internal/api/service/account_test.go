package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Store: newTestStore(t)}
	ctx := t.Context()

	account, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, "alice", account.Username)
	require.Equal(t, "alice@example.com", account.Email)
	require.False(t, account.CreatedAt.IsZero())

	// The stored hash is opaque, never the raw password.
	require.NotContains(t, account.PasswordHash, "secret123")

	got, err := svc.Authenticate(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, account.ID, got.ID)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Store: newTestStore(t)}
	ctx := t.Context()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		field    string
	}{
		{"short username", "al", "alice@example.com", "secret123", "username"},
		{"bad email", "alice", "not-an-email", "secret123", "email"},
		{"short password", "alice", "alice@example.com", "abc", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Fields, tt.field)
		})
	}

	t.Run("all fields reported at once", func(t *testing.T) {
		_, err := svc.Register(ctx, "x", "nope", "ab")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Fields, 3)
	})
}

func TestRegisterTrimsWhitespace(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Store: newTestStore(t)}
	ctx := t.Context()

	account, err := svc.Register(ctx, "  bob  ", "  bob@example.com  ", "secret123")
	require.NoError(t, err)
	require.Equal(t, "bob", account.Username)
	require.Equal(t, "bob@example.com", account.Email)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Store: newTestStore(t)}
	ctx := t.Context()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "other", "alice@example.com", "secret123")
		require.ErrorIs(t, err, ErrDuplicateIdentity)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other@example.com", "secret123")
		require.ErrorIs(t, err, ErrDuplicateIdentity)
	})
}

func TestAuthenticateUniformFailure(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Store: newTestStore(t)}
	ctx := t.Context()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	// An unknown email and a wrong password fail identically.
	_, unknownErr := svc.Authenticate(ctx, "ghost@example.com", "secret123")
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, wrongErr := svc.Authenticate(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}
