package routes

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/models"
)

// memProfiles and memJournal stand in for the SQL repositories.
type memProfiles struct {
	mu   sync.Mutex
	rows []models.Profile
}

func (m *memProfiles) index(id uuid.UUID) int {
	for i, p := range m.rows {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *memProfiles) Save(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memProfiles) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		p := m.rows[i]
		return &p, nil
	}
	return nil, nil
}

func (m *memProfiles) findBy(match func(models.Profile) bool) *models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.rows {
		if match(p) {
			return &p
		}
	}
	return nil
}

func (m *memProfiles) FindByLogin(_ context.Context, login string) (*models.Profile, error) {
	return m.findBy(func(p models.Profile) bool { return p.Login == login }), nil
}

func (m *memProfiles) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	return m.findBy(func(p models.Profile) bool { return p.Email == email }), nil
}

func (m *memProfiles) FindAll(context.Context) ([]models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Profile{}, m.rows...), nil
}

func (m *memProfiles) Update(_ context.Context, p *models.Profile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(p.ID)
	if i < 0 {
		return false, nil
	}
	m.rows[i] = *p
	return true, nil
}

func (m *memProfiles) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return false, nil
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return true, nil
}

func (m *memProfiles) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index(id) >= 0, nil
}

type memJournal struct {
	mu   sync.Mutex
	rows []models.CrimeJournal
}

func (m *memJournal) index(id uuid.UUID) int {
	for i, j := range m.rows {
		if j.ID == id {
			return i
		}
	}
	return -1
}

func (m *memJournal) filter(match func(models.CrimeJournal) bool) []models.CrimeJournal {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CrimeJournal{}
	for _, j := range m.rows {
		if match(j) {
			out = append(out, j)
		}
	}
	return out
}

func (m *memJournal) Save(_ context.Context, j *models.CrimeJournal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *j)
	return nil
}

func (m *memJournal) FindByID(_ context.Context, id uuid.UUID) (*models.CrimeJournal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		j := m.rows[i]
		return &j, nil
	}
	return nil, nil
}

func (m *memJournal) FindByDescription(_ context.Context, query string) ([]models.CrimeJournal, error) {
	q := strings.ToLower(query)
	return m.filter(func(j models.CrimeJournal) bool {
		return strings.Contains(strings.ToLower(j.Description), q)
	}), nil
}

func (m *memJournal) FindAll(context.Context) ([]models.CrimeJournal, error) {
	return m.filter(func(models.CrimeJournal) bool { return true }), nil
}

func (m *memJournal) FindByProfileID(_ context.Context, profileID uuid.UUID) ([]models.CrimeJournal, error) {
	return m.filter(func(j models.CrimeJournal) bool { return j.ProfileID == profileID }), nil
}

func (m *memJournal) FindByAllAttributes(_ context.Context, want *models.CrimeJournal) (*models.CrimeJournal, error) {
	found := m.filter(func(j models.CrimeJournal) bool {
		return j.Description == want.Description &&
			j.DateCrime.Equal(want.DateCrime) &&
			j.IsClosed == want.IsClosed &&
			j.ProfileID == want.ProfileID
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *memJournal) Update(_ context.Context, j *models.CrimeJournal) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(j.ID)
	if i < 0 {
		return false, nil
	}
	m.rows[i] = *j
	return true, nil
}

func (m *memJournal) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return false, nil
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return true, nil
}

func (m *memJournal) DeleteByProfileID(_ context.Context, profileID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var n int64
	for _, j := range m.rows {
		if j.ProfileID == profileID {
			n++
			continue
		}
		kept = append(kept, j)
	}
	m.rows = kept
	return n, nil
}

func (m *memJournal) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index(id) >= 0, nil
}
