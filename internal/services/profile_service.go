package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/apperror"
	"CRIME_JOURNAL_BACK-END/internal/dto"
	"CRIME_JOURNAL_BACK-END/internal/models"
)

const (
	msgDuplicateLogin = "profile with this login already exists"
	msgDuplicateEmail = "profile with this email already exists"
)

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Create registers a new profile under a freshly generated id.
func (s *ProfileService) Create(ctx context.Context, req dto.CreateProfileRequest) (dto.ProfileResponse, error) {
	if err := s.ensureLoginFree(ctx, req.Login, uuid.Nil); err != nil {
		return dto.ProfileResponse{}, err
	}
	if err := s.ensureEmailFree(ctx, req.Email, uuid.Nil); err != nil {
		return dto.ProfileResponse{}, err
	}

	p := models.Profile{
		ID:       uuid.New(),
		Login:    req.Login,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := s.profiles.Save(ctx, &p); err != nil {
		return dto.ProfileResponse{}, duplicateOr(err, "save profile")
	}
	return dto.NewProfileResponse(p), nil
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (dto.ProfileResponse, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("find profile: %w", err)
	}
	if p == nil {
		return dto.ProfileResponse{}, profileNotFound(id)
	}
	return dto.NewProfileResponse(*p), nil
}

// GetAll returns every profile; an empty table yields an empty slice.
func (s *ProfileService) GetAll(ctx context.Context) ([]dto.ProfileResponse, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return dto.NewProfileResponses(profiles), nil
}

// Update overwrites login, password and email of an existing profile.
// Login and email stay unique across profiles.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, req dto.CreateProfileRequest) (dto.ProfileResponse, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("find profile: %w", err)
	}
	if p == nil {
		return dto.ProfileResponse{}, profileNotFound(id)
	}

	if p.Login != req.Login {
		if err := s.ensureLoginFree(ctx, req.Login, id); err != nil {
			return dto.ProfileResponse{}, err
		}
	}
	if p.Email != req.Email {
		if err := s.ensureEmailFree(ctx, req.Email, id); err != nil {
			return dto.ProfileResponse{}, err
		}
	}

	p.Login = req.Login
	p.Password = req.Password
	p.Email = req.Email

	updated, err := s.profiles.Update(ctx, p)
	if err != nil {
		return dto.ProfileResponse{}, duplicateOr(err, "update profile")
	}
	if !updated {
		return dto.ProfileResponse{}, profileNotFound(id)
	}
	return dto.NewProfileResponse(*p), nil
}

func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.profiles.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return apperror.NotFound(apperror.ErrNotFound, "profile with ID %s not found for deletion", id)
	}
	if _, err := s.profiles.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// ensureLoginFree fails when login belongs to a profile other than self.
func (s *ProfileService) ensureLoginFree(ctx context.Context, login string, self uuid.UUID) error {
	owner, err := s.profiles.FindByLogin(ctx, login)
	if err != nil {
		return fmt.Errorf("find profile by login: %w", err)
	}
	if owner != nil && owner.ID != self {
		return apperror.Validation(apperror.ErrDuplicateLogin, msgDuplicateLogin)
	}
	return nil
}

func (s *ProfileService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	owner, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find profile by email: %w", err)
	}
	if owner != nil && owner.ID != self {
		return apperror.Validation(apperror.ErrDuplicateEmail, msgDuplicateEmail)
	}
	return nil
}

func profileNotFound(id uuid.UUID) error {
	return apperror.NotFound(apperror.ErrNotFound, "profile with ID %s not found", id)
}

// duplicateOr turns a storage-level unique violation into a validation
// error and wraps anything else.
func duplicateOr(err error, op string) error {
	switch {
	case errors.Is(err, apperror.ErrDuplicateLogin):
		return apperror.Validation(apperror.ErrDuplicateLogin, msgDuplicateLogin)
	case errors.Is(err, apperror.ErrDuplicateEmail):
		return apperror.Validation(apperror.ErrDuplicateEmail, msgDuplicateEmail)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
