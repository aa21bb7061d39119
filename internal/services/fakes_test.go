package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/models"
)

// fakeProfiles is an in-memory ProfileStore. writes counts Save/Update calls.
type fakeProfiles struct {
	rows    map[uuid.UUID]models.Profile
	order   []uuid.UUID
	writes  int
	saveErr error
	findErr error
}

func newFakeProfiles(seed ...models.Profile) *fakeProfiles {
	f := &fakeProfiles{rows: map[uuid.UUID]models.Profile{}}
	for _, p := range seed {
		f.rows[p.ID] = p
		f.order = append(f.order, p.ID)
	}
	return f
}

func (f *fakeProfiles) Save(_ context.Context, p *models.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.writes++
	f.rows[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProfiles) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if p, ok := f.rows[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProfiles) find(match func(models.Profile) bool) *models.Profile {
	for _, id := range f.order {
		if p, ok := f.rows[id]; ok && match(p) {
			return &p
		}
	}
	return nil
}

func (f *fakeProfiles) FindByLogin(_ context.Context, login string) (*models.Profile, error) {
	return f.find(func(p models.Profile) bool { return p.Login == login }), nil
}

func (f *fakeProfiles) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	return f.find(func(p models.Profile) bool { return p.Email == email }), nil
}

func (f *fakeProfiles) FindAll(_ context.Context) ([]models.Profile, error) {
	out := []models.Profile{}
	for _, id := range f.order {
		if p, ok := f.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfiles) Update(_ context.Context, p *models.Profile) (bool, error) {
	if f.saveErr != nil {
		return false, f.saveErr
	}
	if _, ok := f.rows[p.ID]; !ok {
		return false, nil
	}
	f.writes++
	f.rows[p.ID] = *p
	return true, nil
}

func (f *fakeProfiles) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeProfiles) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.findErr != nil {
		return false, f.findErr
	}
	_, ok := f.rows[id]
	return ok, nil
}

// fakeJournal is an in-memory CrimeJournalStore.
type fakeJournal struct {
	rows   map[uuid.UUID]models.CrimeJournal
	order  []uuid.UUID
	writes int
}

func newFakeJournal(seed ...models.CrimeJournal) *fakeJournal {
	f := &fakeJournal{rows: map[uuid.UUID]models.CrimeJournal{}}
	for _, j := range seed {
		f.rows[j.ID] = j
		f.order = append(f.order, j.ID)
	}
	return f
}

func (f *fakeJournal) Save(_ context.Context, j *models.CrimeJournal) error {
	f.writes++
	f.rows[j.ID] = *j
	f.order = append(f.order, j.ID)
	return nil
}

func (f *fakeJournal) FindByID(_ context.Context, id uuid.UUID) (*models.CrimeJournal, error) {
	if j, ok := f.rows[id]; ok {
		return &j, nil
	}
	return nil, nil
}

func (f *fakeJournal) filter(match func(models.CrimeJournal) bool) []models.CrimeJournal {
	out := []models.CrimeJournal{}
	for _, id := range f.order {
		if j, ok := f.rows[id]; ok && match(j) {
			out = append(out, j)
		}
	}
	return out
}

func (f *fakeJournal) FindByDescription(_ context.Context, query string) ([]models.CrimeJournal, error) {
	q := strings.ToLower(query)
	return f.filter(func(j models.CrimeJournal) bool {
		return strings.Contains(strings.ToLower(j.Description), q)
	}), nil
}

func (f *fakeJournal) FindAll(_ context.Context) ([]models.CrimeJournal, error) {
	return f.filter(func(models.CrimeJournal) bool { return true }), nil
}

func (f *fakeJournal) FindByProfileID(_ context.Context, profileID uuid.UUID) ([]models.CrimeJournal, error) {
	return f.filter(func(j models.CrimeJournal) bool { return j.ProfileID == profileID }), nil
}

func (f *fakeJournal) FindByAllAttributes(_ context.Context, want *models.CrimeJournal) (*models.CrimeJournal, error) {
	found := f.filter(func(j models.CrimeJournal) bool {
		return j.Description == want.Description &&
			j.DateCrime.Format("2006-01-02") == want.DateCrime.Format("2006-01-02") &&
			j.IsClosed == want.IsClosed &&
			j.ProfileID == want.ProfileID
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (f *fakeJournal) Update(_ context.Context, j *models.CrimeJournal) (bool, error) {
	if _, ok := f.rows[j.ID]; !ok {
		return false, nil
	}
	f.writes++
	f.rows[j.ID] = *j
	return true, nil
}

func (f *fakeJournal) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeJournal) DeleteByProfileID(_ context.Context, profileID uuid.UUID) (int64, error) {
	var n int64
	for id, j := range f.rows {
		if j.ProfileID == profileID {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeJournal) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}
