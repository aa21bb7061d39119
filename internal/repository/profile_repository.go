// Package repository translates entities to and from parameterized SQL
// against one table each.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/apperror"
	"CRIME_JOURNAL_BACK-END/internal/database"
	"CRIME_JOURNAL_BACK-END/internal/models"
)

const profileColumns = `id, login, password, email`

// ProfileRepository stores profiles in the profile table
type ProfileRepository struct {
	db database.DBTX
}

func NewProfileRepository(db database.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Save inserts p. A login or email taken concurrently surfaces as
// apperror.ErrDuplicateLogin / apperror.ErrDuplicateEmail.
func (r *ProfileRepository) Save(ctx context.Context, p *models.Profile) error {
	const q = `INSERT INTO profile (id, login, password, email) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, q, p.ID, p.Login, p.Password, p.Email); err != nil {
		return profileWriteError(err)
	}
	return nil
}

// FindByID returns nil when no profile has the id.
func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profile WHERE id = $1`
	return r.queryOne(ctx, q, id)
}

// FindByLogin returns nil when the login is free.
func (r *ProfileRepository) FindByLogin(ctx context.Context, login string) (*models.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profile WHERE login = $1 LIMIT 1`
	return r.queryOne(ctx, q, login)
}

// FindByEmail returns nil when the email is free.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profile WHERE email = $1 LIMIT 1`
	return r.queryOne(ctx, q, email)
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]models.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profile`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Login, &p.Password, &p.Email); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return profiles, nil
}

// Update overwrites login, password and email. It reports false when no row has p.ID.
func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) (bool, error) {
	const q = `UPDATE profile SET login = $1, password = $2, email = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, q, p.Login, p.Password, p.Email, p.ID)
	if err != nil {
		return false, profileWriteError(err)
	}
	return affected(res)
}

// DeleteByID reports false when no row had the id.
func (r *ProfileRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM profile WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

func (r *ProfileRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM profile WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *ProfileRepository) queryOne(ctx context.Context, q string, arg any) (*models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRowContext(ctx, q, arg).Scan(&p.ID, &p.Login, &p.Password, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

func profileWriteError(err error) error {
	if constraint, ok := uniqueConstraint(err); ok {
		switch constraint {
		case "profile_login_key":
			return apperror.ErrDuplicateLogin
		case "profile_email_key":
			return apperror.ErrDuplicateEmail
		}
	}
	return fmt.Errorf("db error: %w", err)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
