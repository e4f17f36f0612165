// Package data provides the database access layer for the identity provider.
package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nameid/nameid/internal/data/pgxutil"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/ports"
)

const loginAttemptColumns = `id, name, succeeded, remark, created_at`

// LoginAuditRepo persists login attempts in Postgres. It implements
// ports.LoginAuditRepository.
type LoginAuditRepo struct{ DB *sql.DB }

// loginAttemptRow mirrors the login_attempts table for pgx row collection.
type loginAttemptRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Succeeded bool      `db:"succeeded"`
	Remark    string    `db:"remark"`
	CreatedAt time.Time `db:"created_at"`
}

// EnsureSchema creates the audit table if it does not exist yet. Called once
// at startup; the table carries no foreign keys so ordering never matters.
func (r *LoginAuditRepo) EnsureSchema(ctx context.Context) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS login_attempts (
				id         uuid PRIMARY KEY,
				name       text NOT NULL,
				succeeded  boolean NOT NULL,
				remark     text NOT NULL DEFAULT '',
				created_at timestamptz NOT NULL DEFAULT now()
			)
		`)
		if execErr != nil {
			return fmt.Errorf("create login_attempts table: %w", execErr)
		}
		_, execErr = conn.Exec(ctx, `
			CREATE INDEX IF NOT EXISTS login_attempts_created_at_idx
			ON login_attempts (created_at DESC)
		`)
		if execErr != nil {
			return fmt.Errorf("create login_attempts index: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// Record inserts one attempt row.
func (r *LoginAuditRepo) Record(ctx context.Context, attempt ports.LoginAttempt) error {
	createdAt := attempt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO login_attempts (id, name, succeeded, remark, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, attempt.ID, attempt.Name, attempt.Succeeded, attempt.Remark, createdAt)
		if execErr != nil {
			return fmt.Errorf("insert login attempt: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// ListRecent returns the newest attempts, newest first.
func (r *LoginAuditRepo) ListRecent(ctx context.Context, limit int) ([]ports.LoginAttempt, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}

	var rowsOut []loginAttemptRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qErr := conn.Query(ctx, `
			SELECT `+loginAttemptColumns+`
			FROM login_attempts
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		`, limit)
		if qErr != nil {
			return fmt.Errorf("query login attempts: %w", qErr)
		}
		defer rows.Close()

		collected, collectErr := pgx.CollectRows(rows, pgx.RowToStructByName[loginAttemptRow])
		if collectErr != nil {
			return fmt.Errorf("collect login attempts: %w", collectErr)
		}
		rowsOut = collected
		return nil
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	attempts := make([]ports.LoginAttempt, len(rowsOut))
	for i, row := range rowsOut {
		attempts[i] = ports.LoginAttempt{
			ID:        row.ID,
			Name:      row.Name,
			Succeeded: row.Succeeded,
			Remark:    row.Remark,
			CreatedAt: row.CreatedAt,
		}
	}
	return attempts, nil
}
