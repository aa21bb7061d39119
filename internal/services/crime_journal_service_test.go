package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CRIME_JOURNAL_BACK-END/internal/apperror"
	"CRIME_JOURNAL_BACK-END/internal/dto"
	"CRIME_JOURNAL_BACK-END/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func journalReq(profileID uuid.UUID, description string, date time.Time, closed bool) dto.CreateCrimeJournalRequest {
	d := dto.NewDate(date)
	return dto.CreateCrimeJournalRequest{
		Description: description,
		DateCrime:   &d,
		IsClosed:    &closed,
		ProfileID:   profileID,
	}
}

type journalFixture struct {
	owner    models.Profile
	profiles *fakeProfiles
	journal  *fakeJournal
	svc      *CrimeJournalService
}

func newJournalFixture(entries ...models.CrimeJournal) journalFixture {
	owner := models.Profile{ID: uuid.New(), Login: "alice123", Password: "secretpw1", Email: "a@x.com"}
	profiles := newFakeProfiles(owner)
	journal := newFakeJournal(entries...)
	return journalFixture{
		owner:    owner,
		profiles: profiles,
		journal:  journal,
		svc:      NewCrimeJournalService(journal, profiles),
	}
}

func TestJournalCreate(t *testing.T) {
	fx := newJournalFixture()
	ctx := context.Background()

	got, err := fx.svc.Create(ctx, journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), false))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "theft", got.Description)
	assert.Equal(t, "2020-05-01", got.DateCrime.String())
	assert.False(t, got.IsClosed)
	assert.Equal(t, fx.owner.ID, got.ProfileID)
	assert.Equal(t, 1, fx.journal.writes)
}

func TestJournalCreate_UnknownProfile(t *testing.T) {
	fx := newJournalFixture()

	_, err := fx.svc.Create(context.Background(), journalReq(uuid.New(), "theft", day(2020, time.May, 1), false))

	assert.ErrorIs(t, err, apperror.ErrProfileNotFound)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 0, fx.journal.writes)
}

func TestJournalCreate_Duplicate(t *testing.T) {
	fx := newJournalFixture()
	ctx := context.Background()
	req := journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), false)

	_, err := fx.svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = fx.svc.Create(ctx, req)
	assert.ErrorIs(t, err, apperror.ErrDuplicateEntry)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 1, fx.journal.writes)

	// any differing attribute makes it a new entry
	_, err = fx.svc.Create(ctx, journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), true))
	assert.NoError(t, err)
}

func TestJournalFindByID(t *testing.T) {
	entry := models.CrimeJournal{ID: uuid.New(), Description: "arson", DateCrime: day(2019, time.July, 4), ProfileID: uuid.New()}
	fx := newJournalFixture(entry)

	got, err := fx.svc.FindByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.NewCrimeJournalResponse(entry), got)

	_, err = fx.svc.FindByID(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestJournalFindByDescription(t *testing.T) {
	owner := uuid.New()
	fx := newJournalFixture(
		models.CrimeJournal{ID: uuid.New(), Description: "Car THEFT at night", DateCrime: day(2020, time.May, 1), ProfileID: owner},
		models.CrimeJournal{ID: uuid.New(), Description: "bicycle theft", DateCrime: day(2021, time.May, 1), ProfileID: owner},
		models.CrimeJournal{ID: uuid.New(), Description: "vandalism", DateCrime: day(2022, time.May, 1), ProfileID: owner},
	)
	ctx := context.Background()

	got, err := fx.svc.FindByDescription(ctx, "theft")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = fx.svc.FindByDescription(ctx, "fraud")
	assert.True(t, apperror.IsNotFound(err))
}

func TestJournalGetAll(t *testing.T) {
	empty := newJournalFixture()
	_, err := empty.svc.GetAll(context.Background())
	assert.True(t, apperror.IsNotFound(err))

	fx := newJournalFixture(models.CrimeJournal{ID: uuid.New(), Description: "arson", DateCrime: day(2019, time.July, 4), ProfileID: uuid.New()})
	got, err := fx.svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestJournalGetByProfileID(t *testing.T) {
	mine, theirs := uuid.New(), uuid.New()
	fx := newJournalFixture(
		models.CrimeJournal{ID: uuid.New(), Description: "arson", DateCrime: day(2019, time.July, 4), ProfileID: mine},
		models.CrimeJournal{ID: uuid.New(), Description: "fraud", DateCrime: day(2019, time.July, 5), ProfileID: theirs},
	)

	got, err := fx.svc.GetByProfileID(context.Background(), mine)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "arson", got[0].Description)

	_, err = fx.svc.GetByProfileID(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestJournalUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites all fields", func(t *testing.T) {
		fx := newJournalFixture()
		created, err := fx.svc.Create(ctx, journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), false))
		require.NoError(t, err)

		got, err := fx.svc.Update(ctx, created.ID, journalReq(fx.owner.ID, "armed theft", day(2020, time.May, 2), true))
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "armed theft", got.Description)
		assert.Equal(t, "2020-05-02", got.DateCrime.String())
		assert.True(t, got.IsClosed)
	})

	t.Run("idempotent", func(t *testing.T) {
		fx := newJournalFixture()
		created, err := fx.svc.Create(ctx, journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), false))
		require.NoError(t, err)
		req := journalReq(fx.owner.ID, "burglary", day(2020, time.June, 1), true)

		first, err := fx.svc.Update(ctx, created.ID, req)
		require.NoError(t, err)
		stored := fx.journal.rows[created.ID]

		second, err := fx.svc.Update(ctx, created.ID, req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, stored, fx.journal.rows[created.ID])
	})

	t.Run("missing entry", func(t *testing.T) {
		fx := newJournalFixture()
		_, err := fx.svc.Update(ctx, uuid.New(), journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), false))
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("unknown new owner", func(t *testing.T) {
		fx := newJournalFixture()
		created, err := fx.svc.Create(ctx, journalReq(fx.owner.ID, "theft", day(2020, time.May, 1), false))
		require.NoError(t, err)

		_, err = fx.svc.Update(ctx, created.ID, journalReq(uuid.New(), "theft", day(2020, time.May, 1), false))
		assert.ErrorIs(t, err, apperror.ErrProfileNotFound)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestJournalDelete(t *testing.T) {
	entry := models.CrimeJournal{ID: uuid.New(), Description: "arson", DateCrime: day(2019, time.July, 4), ProfileID: uuid.New()}
	fx := newJournalFixture(entry)
	ctx := context.Background()

	require.NoError(t, fx.svc.Delete(ctx, entry.ID))
	assert.True(t, apperror.IsNotFound(fx.svc.Delete(ctx, entry.ID)))
}

func TestJournalDeleteAllByProfileID(t *testing.T) {
	fx := newJournalFixture()
	other := models.Profile{ID: uuid.New(), Login: "bob1234", Password: "secretpw2", Email: "b@x.com"}
	fx.profiles.rows[other.ID] = other
	ctx := context.Background()

	for i, desc := range []string{"theft", "arson", "fraud"} {
		_, err := fx.svc.Create(ctx, journalReq(fx.owner.ID, desc, day(2020, time.May, i+1), false))
		require.NoError(t, err)
	}
	kept, err := fx.svc.Create(ctx, journalReq(other.ID, "theft", day(2020, time.May, 1), false))
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteAllByProfileID(ctx, fx.owner.ID))

	remaining, err := fx.svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)

	err = fx.svc.DeleteAllByProfileID(ctx, fx.owner.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = fx.svc.DeleteAllByProfileID(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
	assert.ErrorIs(t, err, apperror.ErrProfileNotFound)
}

func TestJournalCreate_RejectsUnvalidatedRequest(t *testing.T) {
	fx := newJournalFixture()

	_, err := fx.svc.Create(context.Background(), dto.CreateCrimeJournalRequest{Description: "theft", ProfileID: fx.owner.ID})
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 0, fx.journal.writes)
}
