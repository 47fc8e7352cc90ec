package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserRepository persists users on a pgx pool.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Insert(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (username, password, is_super_user)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.Username, u.Password, u.IsSuperUser,
	).Scan(&u.ID)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password, is_super_user FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	// First match wins: usernames are not unique by schema.
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password, is_super_user
		 FROM users
		 WHERE username = $1 AND password = $2
		 ORDER BY id
		 LIMIT 1`,
		username, password,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) HasSuperUser(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE is_super_user)`,
	).Scan(&exists)
	return exists, err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.IsSuperUser); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// PostgresTodoRepository persists todos on a pgx pool. Todo ids are
// caller-assigned (max+1 computed by the service), so Insert stores the
// id it is given instead of relying on a sequence.
type PostgresTodoRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTodoRepository(db *pgxpool.Pool) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) Insert(ctx context.Context, t *domain.Todo) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO todos (id, title, description, created_at, status, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Title, t.Description, t.CreatedAt.Time, int(t.Status), t.UserID,
	)
	return err
}

func (r *PostgresTodoRepository) Update(ctx context.Context, t *domain.Todo) error {
	result, err := r.db.Exec(ctx,
		`UPDATE todos SET title = $1, description = $2, status = $3 WHERE id = $4`,
		t.Title, t.Description, int(t.Status), t.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresTodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, created_at, status, user_id
		 FROM todos
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTodos(rows)
}

func (r *PostgresTodoRepository) ListByStatus(ctx context.Context, status domain.TodoStatus) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, created_at, status, user_id
		 FROM todos
		 WHERE status = $1`,
		int(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTodos(rows)
}

func (r *PostgresTodoRepository) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM todos`).Scan(&max)
	return max, err
}

func (r *PostgresTodoRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count)
	return count, err
}

func collectTodos(rows pgx.Rows) ([]*domain.Todo, error) {
	res := make([]*domain.Todo, 0)
	for rows.Next() {
		var t domain.Todo
		var createdAt time.Time
		var status int
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &createdAt, &status, &t.UserID); err != nil {
			return nil, err
		}
		t.CreatedAt = domain.DateOf(createdAt)
		t.Status = domain.TodoStatus(status)
		res = append(res, &t)
	}
	return res, rows.Err()
}
