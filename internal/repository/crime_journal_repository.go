package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/database"
	"CRIME_JOURNAL_BACK-END/internal/models"
)

const journalColumns = `id, description, date_crime, is_closed, profile_id`

// dates travel as text so the session time zone never shifts the day
const sqlDateLayout = "2006-01-02"

// CrimeJournalRepository stores journal entries in the crime_journal table
type CrimeJournalRepository struct {
	db database.DBTX
}

func NewCrimeJournalRepository(db database.DBTX) *CrimeJournalRepository {
	return &CrimeJournalRepository{db: db}
}

func (r *CrimeJournalRepository) Save(ctx context.Context, j *models.CrimeJournal) error {
	const q = `INSERT INTO crime_journal (id, description, date_crime, is_closed, profile_id)
		VALUES ($1, $2, $3::date, $4, $5)`

	_, err := r.db.ExecContext(ctx, q, j.ID, j.Description, sqlDate(j.DateCrime), j.IsClosed, j.ProfileID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByID returns nil when no entry has the id.
func (r *CrimeJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CrimeJournal, error) {
	const q = `SELECT ` + journalColumns + ` FROM crime_journal WHERE id = $1`
	return r.queryOne(ctx, q, id)
}

// FindByDescription matches query as a case-insensitive literal substring.
func (r *CrimeJournalRepository) FindByDescription(ctx context.Context, query string) ([]models.CrimeJournal, error) {
	const q = `SELECT ` + journalColumns + ` FROM crime_journal WHERE description ILIKE $1 ESCAPE '\'`
	return r.queryMany(ctx, q, "%"+escapeLike(query)+"%")
}

func (r *CrimeJournalRepository) FindAll(ctx context.Context) ([]models.CrimeJournal, error) {
	const q = `SELECT ` + journalColumns + ` FROM crime_journal`
	return r.queryMany(ctx, q)
}

func (r *CrimeJournalRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]models.CrimeJournal, error) {
	const q = `SELECT ` + journalColumns + ` FROM crime_journal WHERE profile_id = $1`
	return r.queryMany(ctx, q, profileID)
}

// FindByAllAttributes looks for an entry equal to j in every field but the id.
func (r *CrimeJournalRepository) FindByAllAttributes(ctx context.Context, j *models.CrimeJournal) (*models.CrimeJournal, error) {
	const q = `SELECT ` + journalColumns + ` FROM crime_journal
		WHERE description = $1 AND date_crime = $2::date AND is_closed = $3 AND profile_id = $4
		LIMIT 1`
	return r.queryOne(ctx, q, j.Description, sqlDate(j.DateCrime), j.IsClosed, j.ProfileID)
}

// Update overwrites every column but the id. It reports false when no row has j.ID.
func (r *CrimeJournalRepository) Update(ctx context.Context, j *models.CrimeJournal) (bool, error) {
	const q = `UPDATE crime_journal
		SET description = $1, date_crime = $2::date, is_closed = $3, profile_id = $4
		WHERE id = $5`

	res, err := r.db.ExecContext(ctx, q, j.Description, sqlDate(j.DateCrime), j.IsClosed, j.ProfileID, j.ID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

func (r *CrimeJournalRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM crime_journal WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

// DeleteByProfileID returns the number of deleted entries.
func (r *CrimeJournalRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	const q = `DELETE FROM crime_journal WHERE profile_id = $1`

	res, err := r.db.ExecContext(ctx, q, profileID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (r *CrimeJournalRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM crime_journal WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *CrimeJournalRepository) queryOne(ctx context.Context, q string, args ...any) (*models.CrimeJournal, error) {
	var j models.CrimeJournal
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&j.ID, &j.Description, &j.DateCrime, &j.IsClosed, &j.ProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &j, nil
}

func (r *CrimeJournalRepository) queryMany(ctx context.Context, q string, args ...any) ([]models.CrimeJournal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []models.CrimeJournal{}
	for rows.Next() {
		var j models.CrimeJournal
		if err := rows.Scan(&j.ID, &j.Description, &j.DateCrime, &j.IsClosed, &j.ProfileID); err != nil {
			return nil, fmt.Errorf("scan crime journal: %w", err)
		}
		entries = append(entries, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}

func sqlDate(t time.Time) string {
	return t.Format(sqlDateLayout)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
