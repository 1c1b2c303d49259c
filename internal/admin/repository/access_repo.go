package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

// AccessRepo checks admin access codes against the admin_access table.
type AccessRepo struct {
	db *sql.DB
}

func NewAccessRepo(db *sql.DB) *AccessRepo {
	return &AccessRepo{db: db}
}

// VerifyCode reports whether code exists and is active. An unknown or
// deactivated code is (false, nil), not an error.
func (r *AccessRepo) VerifyCode(ctx context.Context, code string) (bool, error) {
	if code == "" {
		return false, nil
	}

	const q = `SELECT 1 FROM admin_access WHERE code = $1 AND is_active = true;`

	var one int
	err := r.db.QueryRowContext(ctx, q, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P01" {
			return false, fmt.Errorf("verify access code: %w", domain.ErrSchemaMissing)
		}
		return false, fmt.Errorf("verify access code: %w", err)
	}
	return true, nil
}
