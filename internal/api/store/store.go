package store

import (
	"context"
	"errors"

	"github.com/prioritypro/prioritypro/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnavailable reports that the underlying storage engine could not be
	// reached. The service surfaces it as a transient failure and never
	// retries on the caller's behalf.
	ErrUnavailable = errors.New("store: unavailable")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Every operation is a single atomic statement scoped by
// id+owner where ownership applies, so no transaction plumbing is exposed.
type Store interface {
	Accounts() Accounts
	Tasks() Tasks

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). Returns ErrAlreadyExists when the username or email collides
	// with an existing record.
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during login.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetAccountByUsername is used for the registration duplicate pre-check.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)
}

type Tasks interface {
	// CreateTask inserts a new task (id and created_at assigned by the app).
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasksByOwner returns every task owned by ownerID. Storage imposes
	// no ordering; ordering is a presentation concern.
	ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)

	// UpdateTask applies the non-nil patch fields to the task with the given
	// id AND owner in one statement, then returns the updated record.
	// Returns ErrNotFound when no such task exists for that owner, whether
	// the id is unknown or belongs to someone else.
	UpdateTask(ctx context.Context, id, ownerID string, patch domain.TaskPatch) (domain.Task, error)

	// DeleteTask removes the task with the given id AND owner, under the
	// same ErrNotFound condition as UpdateTask.
	DeleteTask(ctx context.Context, id, ownerID string) error
}
