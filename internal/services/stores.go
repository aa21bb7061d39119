// Package services holds the business rules of the profile and crime
// journal pipelines: uniqueness, referential existence and the conversion
// between wire shapes and stored entities.
package services

import (
	"context"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/models"
)

// ProfileStore is the storage accessor the profile pipeline needs.
// Finders return nil, nil when nothing matches.
type ProfileStore interface {
	Save(ctx context.Context, p *models.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByLogin(ctx context.Context, login string) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindAll(ctx context.Context) ([]models.Profile, error)
	Update(ctx context.Context, p *models.Profile) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// CrimeJournalStore is the storage accessor the journal pipeline needs.
type CrimeJournalStore interface {
	Save(ctx context.Context, j *models.CrimeJournal) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CrimeJournal, error)
	FindByDescription(ctx context.Context, query string) ([]models.CrimeJournal, error)
	FindAll(ctx context.Context) ([]models.CrimeJournal, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]models.CrimeJournal, error)
	FindByAllAttributes(ctx context.Context, j *models.CrimeJournal) (*models.CrimeJournal, error)
	Update(ctx context.Context, j *models.CrimeJournal) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProfileExistence is the slice of profile storage the journal pipeline depends on.
type ProfileExistence interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
