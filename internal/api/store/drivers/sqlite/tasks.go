package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/prioritypro/prioritypro/internal/api/domain"
	"github.com/prioritypro/prioritypro/internal/api/store"
)

type tasksRepo struct {
	db *sql.DB
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	const query = `
		INSERT INTO tasks (id, owner_id, title, priority, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.OwnerID,
		t.Title,
		string(t.Priority),
		t.Completed,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return mapErr(err)
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	const query = `
		SELECT id, owner_id, title, priority, completed, created_at, updated_at
		FROM tasks
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return tasks, nil
}

// UpdateTask applies only the provided fields in a single statement. The
// WHERE clause carries both id and owner_id, so a task belonging to another
// account is indistinguishable from a missing one.
func (r *tasksRepo) UpdateTask(
	ctx context.Context,
	id, ownerID string,
	patch domain.TaskPatch,
) (domain.Task, error) {
	const query = `
		UPDATE tasks
		SET title      = COALESCE(?, title),
		    priority   = COALESCE(?, priority),
		    completed  = COALESCE(?, completed),
		    updated_at = ?
		WHERE id = ? AND owner_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		nullString(patch.Title),
		nullPriority(patch.Priority),
		nullBool(patch.Completed),
		time.Now().UTC(),
		id,
		ownerID,
	)
	if err != nil {
		return domain.Task{}, mapErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Task{}, mapErr(err)
	}
	if affected == 0 {
		return domain.Task{}, store.ErrNotFound
	}

	return r.getTask(ctx, id, ownerID)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM tasks WHERE id = ? AND owner_id = ?`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return mapErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return mapErr(err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *tasksRepo) getTask(ctx context.Context, id, ownerID string) (domain.Task, error) {
	const query = `
		SELECT id, owner_id, title, priority, completed, created_at, updated_at
		FROM tasks
		WHERE id = ? AND owner_id = ?`

	return scanTask(r.db.QueryRowContext(ctx, query, id, ownerID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var priority string
	err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Title,
		&priority,
		&t.Completed,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, mapErr(err)
	}
	t.Priority = domain.Priority(priority)
	return t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullPriority(p *domain.Priority) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*p), Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
