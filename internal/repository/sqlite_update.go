package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/calebmoran/checkin/internal/domain"
)

// SQLiteUpdateRepo implements UpdateRepo using a SQLite database.
type SQLiteUpdateRepo struct {
	db *sql.DB
}

// NewSQLiteUpdateRepo creates a new SQLiteUpdateRepo.
func NewSQLiteUpdateRepo(db *sql.DB) *SQLiteUpdateRepo {
	return &SQLiteUpdateRepo{db: db}
}

func (r *SQLiteUpdateRepo) Create(ctx context.Context, u *domain.Update) error {
	query := `INSERT INTO updates (id, user_email, week, phase, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.UserEmail,
		u.Week,
		string(u.Phase),
		u.Summary,
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting update: %w", err)
	}
	return nil
}

func (r *SQLiteUpdateRepo) GetByID(ctx context.Context, id string) (*domain.Update, error) {
	query := `SELECT id, user_email, week, phase, summary, created_at
		FROM updates WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanUpdate(row)
}

func (r *SQLiteUpdateRepo) ListByEmail(ctx context.Context, email string) ([]*domain.Update, error) {
	query := `SELECT id, user_email, week, phase, summary, created_at
		FROM updates WHERE user_email = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing updates by email: %w", err)
	}
	defer rows.Close()
	return r.scanUpdates(rows)
}

func (r *SQLiteUpdateRepo) ListRecent(ctx context.Context, weeks int) ([]*domain.Update, error) {
	query := `SELECT id, user_email, week, phase, summary, created_at
		FROM updates
		WHERE created_at >= date('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", weeks*7))
	if err != nil {
		return nil, fmt.Errorf("listing recent updates: %w", err)
	}
	defer rows.Close()
	return r.scanUpdates(rows)
}

func (r *SQLiteUpdateRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM updates`); err != nil {
		return fmt.Errorf("deleting updates: %w", err)
	}
	return nil
}

func (r *SQLiteUpdateRepo) scanUpdate(row *sql.Row) (*domain.Update, error) {
	var u domain.Update
	var phase, createdAt string
	err := row.Scan(&u.ID, &u.UserEmail, &u.Week, &phase, &u.Summary, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning update: %w", err)
	}
	u.Phase = domain.Phase(phase)
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUpdateRepo) scanUpdates(rows *sql.Rows) ([]*domain.Update, error) {
	var out []*domain.Update
	for rows.Next() {
		var u domain.Update
		var phase, createdAt string
		if err := rows.Scan(&u.ID, &u.UserEmail, &u.Week, &phase, &u.Summary, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning update row: %w", err)
		}
		u.Phase = domain.Phase(phase)
		var err error
		u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating update rows: %w", err)
	}
	return out, nil
}
