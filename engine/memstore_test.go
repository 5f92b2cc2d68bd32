package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jwillison/gbupool/models"
)

// memStore is an in-memory Store for engine tests. Single mutex, no real
// rollback: tests exercise the engine's ordering, not the database.
type memStore struct {
	mu sync.Mutex

	seasons    []models.Season
	teams      []models.Team
	games      map[string]*models.Game
	nextGameID int64
	standings  map[[2]int64]*models.Standings
	picks      map[[2]int64]*models.Picks
	scores     map[[2]int64]*models.Score
}

func newMemStore() *memStore {
	return &memStore{
		games:     make(map[string]*models.Game),
		standings: make(map[[2]int64]*models.Standings),
		picks:     make(map[[2]int64]*models.Picks),
		scores:    make(map[[2]int64]*models.Score),
	}
}

func (m *memStore) CurrentSeason(ctx context.Context) (*models.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var current *models.Season
	for i := range m.seasons {
		if current == nil || m.seasons[i].Year > current.Year {
			current = &m.seasons[i]
		}
	}
	if current == nil {
		return nil, nil
	}
	cp := *current
	return &cp, nil
}

func (m *memStore) ResolveTeam(ctx context.Context, name, city string) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.teams {
		if m.teams[i].Name == name {
			cp := m.teams[i]
			return &cp, nil
		}
	}
	for i := range m.teams {
		if m.teams[i].City == city {
			cp := m.teams[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Team, len(m.teams))
	copy(out, m.teams)
	return out, nil
}

func (m *memStore) UpsertGame(ctx context.Context, g *models.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.games[g.ProviderGameID]; ok {
		existing.HomeScore = g.HomeScore
		existing.AwayScore = g.AwayScore
		existing.Completed = g.Completed
		existing.GameDate = g.GameDate
		*g = *existing
		return nil
	}
	m.nextGameID++
	g.ID = m.nextGameID
	g.Processed = false
	cp := *g
	m.games[g.ProviderGameID] = &cp
	return nil
}

func (m *memStore) CompletedGames(ctx context.Context, seasonID int64) ([]models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Game
	for _, g := range m.games {
		if g.SeasonID == seasonID && g.Completed && g.HomeScore != nil && g.AwayScore != nil {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameDate.Before(out[j].GameDate) })
	return out, nil
}

func (m *memStore) MarkGameProcessed(ctx context.Context, gameID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.games {
		if g.ID == gameID {
			if g.Processed {
				return false, nil
			}
			g.Processed = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ResetProcessed(ctx context.Context, seasonID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.games {
		if g.SeasonID == seasonID {
			g.Processed = false
		}
	}
	return nil
}

func (m *memStore) StandingsFor(ctx context.Context, teamID, seasonID int64) (*models.Standings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.standings[[2]int64{teamID, seasonID}]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) EnsureStandings(ctx context.Context, teamID, seasonID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureLocked(teamID, seasonID)
	return nil
}

func (m *memStore) ensureLocked(teamID, seasonID int64) *models.Standings {
	key := [2]int64{teamID, seasonID}
	if st, ok := m.standings[key]; ok {
		return st
	}
	st := &models.Standings{TeamID: teamID, SeasonID: seasonID}
	m.standings[key] = st
	return st
}

func (m *memStore) AddWin(ctx context.Context, teamID, seasonID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureLocked(teamID, seasonID).Wins++
	return nil
}

func (m *memStore) AddLoss(ctx context.Context, teamID, seasonID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureLocked(teamID, seasonID).Losses++
	return nil
}

func (m *memStore) DeleteStandings(ctx context.Context, seasonID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.standings {
		if key[1] == seasonID {
			delete(m.standings, key)
		}
	}
	return nil
}

func (m *memStore) PicksFor(ctx context.Context, participantID, seasonID int64) (*models.Picks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.picks[[2]int64{participantID, seasonID}]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) PickedParticipants(ctx context.Context, seasonID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for key := range m.picks {
		if key[1] == seasonID {
			ids = append(ids, key[0])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) SaveScore(ctx context.Context, sc *models.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sc
	m.scores[[2]int64{sc.ParticipantID, sc.SeasonID}] = &cp
	return nil
}

func (m *memStore) RunInTx(ctx context.Context, fn func(Store) error) error {
	return fn(m)
}

// test fixtures

func (m *memStore) addSeason(s models.Season) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seasons = append(m.seasons, s)
}

func (m *memStore) addTeam(t models.Team) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams = append(m.teams, t)
}

func (m *memStore) addPicks(p models.Picks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := p
	m.picks[[2]int64{p.ParticipantID, p.SeasonID}] = &cp
}

func (m *memStore) setStandings(st models.Standings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := st
	m.standings[[2]int64{st.TeamID, st.SeasonID}] = &cp
}

func (m *memStore) standingsSnapshot() map[[2]int64]models.Standings {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[[2]int64]models.Standings, len(m.standings))
	for k, v := range m.standings {
		out[k] = *v
	}
	return out
}

func (m *memStore) scoresSnapshot() map[[2]int64]models.Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[[2]int64]models.Score, len(m.scores))
	for k, v := range m.scores {
		out[k] = *v
	}
	return out
}

func (m *memStore) game(providerGameID string) *models.Game {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[providerGameID]; ok {
		cp := *g
		return &cp
	}
	return nil
}

// fakeProvider returns canned results or a canned error.
type fakeProvider struct {
	results []RawResult
	err     error
	calls   int
}

func (f *fakeProvider) FetchResults(ctx context.Context, year, week int) ([]RawResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func intPtr(n int) *int { return &n }

var testTime = time.Date(2025, time.September, 7, 18, 0, 0, 0, time.UTC)
