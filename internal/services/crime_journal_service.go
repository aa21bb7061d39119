package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/apperror"
	"CRIME_JOURNAL_BACK-END/internal/dto"
	"CRIME_JOURNAL_BACK-END/internal/models"
)

type CrimeJournalService struct {
	journal  CrimeJournalStore
	profiles ProfileExistence
}

func NewCrimeJournalService(journal CrimeJournalStore, profiles ProfileExistence) *CrimeJournalService {
	return &CrimeJournalService{journal: journal, profiles: profiles}
}

// Create stores a new entry owned by an existing profile. An entry equal in
// description, date, closed flag and owner is rejected as a duplicate.
func (s *CrimeJournalService) Create(ctx context.Context, req dto.CreateCrimeJournalRequest) (dto.CrimeJournalResponse, error) {
	if err := s.ensureProfile(ctx, req.ProfileID); err != nil {
		return dto.CrimeJournalResponse{}, err
	}

	entry, err := toEntry(uuid.New(), req)
	if err != nil {
		return dto.CrimeJournalResponse{}, err
	}

	dup, err := s.journal.FindByAllAttributes(ctx, &entry)
	if err != nil {
		return dto.CrimeJournalResponse{}, fmt.Errorf("find duplicate entry: %w", err)
	}
	if dup != nil {
		return dto.CrimeJournalResponse{}, apperror.Validation(apperror.ErrDuplicateEntry, "an entry with these attributes already exists")
	}

	if err := s.journal.Save(ctx, &entry); err != nil {
		return dto.CrimeJournalResponse{}, fmt.Errorf("save entry: %w", err)
	}
	return dto.NewCrimeJournalResponse(entry), nil
}

func (s *CrimeJournalService) FindByID(ctx context.Context, id uuid.UUID) (dto.CrimeJournalResponse, error) {
	entry, err := s.journal.FindByID(ctx, id)
	if err != nil {
		return dto.CrimeJournalResponse{}, fmt.Errorf("find entry: %w", err)
	}
	if entry == nil {
		return dto.CrimeJournalResponse{}, entryNotFound(id)
	}
	return dto.NewCrimeJournalResponse(*entry), nil
}

// FindByDescription returns entries whose description contains query,
// ignoring case. No match is reported as not found.
func (s *CrimeJournalService) FindByDescription(ctx context.Context, query string) ([]dto.CrimeJournalResponse, error) {
	entries, err := s.journal.FindByDescription(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperror.NotFound(apperror.ErrNotFound, "no entries with description %q found", query)
	}
	return dto.NewCrimeJournalResponses(entries), nil
}

// GetAll reports an empty journal as not found.
func (s *CrimeJournalService) GetAll(ctx context.Context) ([]dto.CrimeJournalResponse, error) {
	entries, err := s.journal.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperror.NotFound(apperror.ErrNotFound, "no journal entries found")
	}
	return dto.NewCrimeJournalResponses(entries), nil
}

func (s *CrimeJournalService) GetByProfileID(ctx context.Context, profileID uuid.UUID) ([]dto.CrimeJournalResponse, error) {
	entries, err := s.journal.FindByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list entries of profile: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperror.NotFound(apperror.ErrNotFound, "no entries found for profile %s", profileID)
	}
	return dto.NewCrimeJournalResponses(entries), nil
}

// Update overwrites every field of an existing entry. The new owner must exist.
func (s *CrimeJournalService) Update(ctx context.Context, id uuid.UUID, req dto.CreateCrimeJournalRequest) (dto.CrimeJournalResponse, error) {
	existing, err := s.journal.FindByID(ctx, id)
	if err != nil {
		return dto.CrimeJournalResponse{}, fmt.Errorf("find entry: %w", err)
	}
	if existing == nil {
		return dto.CrimeJournalResponse{}, entryNotFound(id)
	}
	if err := s.ensureProfile(ctx, req.ProfileID); err != nil {
		return dto.CrimeJournalResponse{}, err
	}

	entry, err := toEntry(existing.ID, req)
	if err != nil {
		return dto.CrimeJournalResponse{}, err
	}
	updated, err := s.journal.Update(ctx, &entry)
	if err != nil {
		return dto.CrimeJournalResponse{}, fmt.Errorf("update entry: %w", err)
	}
	if !updated {
		return dto.CrimeJournalResponse{}, entryNotFound(id)
	}
	return dto.NewCrimeJournalResponse(entry), nil
}

func (s *CrimeJournalService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.journal.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check entry: %w", err)
	}
	if !exists {
		return apperror.NotFound(apperror.ErrNotFound, "entry with ID %s not found for deletion", id)
	}
	if _, err := s.journal.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// DeleteAllByProfileID removes every entry owned by profileID. An unknown
// profile and a profile without entries are both reported as not found.
func (s *CrimeJournalService) DeleteAllByProfileID(ctx context.Context, profileID uuid.UUID) error {
	exists, err := s.profiles.ExistsByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return apperror.NotFound(apperror.ErrProfileNotFound, "profile with ID %s not found", profileID)
	}

	deleted, err := s.journal.DeleteByProfileID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("delete entries of profile: %w", err)
	}
	if deleted == 0 {
		return apperror.NotFound(apperror.ErrNotFound, "entries of profile %s not found or already deleted", profileID)
	}
	return nil
}

func (s *CrimeJournalService) ensureProfile(ctx context.Context, profileID uuid.UUID) error {
	exists, err := s.profiles.ExistsByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return apperror.Validation(apperror.ErrProfileNotFound, "profile with ID %s not found", profileID)
	}
	return nil
}

func entryNotFound(id uuid.UUID) error {
	return apperror.NotFound(apperror.ErrNotFound, "entry with ID %s not found", id)
}

// toEntry requires a request that already passed validation.
func toEntry(id uuid.UUID, req dto.CreateCrimeJournalRequest) (models.CrimeJournal, error) {
	if req.DateCrime == nil || req.IsClosed == nil {
		return models.CrimeJournal{}, apperror.Validation(nil, "dateCrime and isClosed must not be null")
	}
	return models.CrimeJournal{
		ID:          id,
		Description: req.Description,
		DateCrime:   req.DateCrime.Time,
		IsClosed:    *req.IsClosed,
		ProfileID:   req.ProfileID,
	}, nil
}
