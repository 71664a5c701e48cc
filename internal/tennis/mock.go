package tennis

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	LoadFunc             func() error
	FindAllFunc          func() []Match
	FindOneFunc          func(id string) (Match, bool)
	FindByScoreboardFunc func(scoreboardID string) (Match, bool)
	CurrentMatchFunc     func() (Match, bool)
	CreateFunc           func(data MatchData) (Match, error)
	UpdateFunc           func(id string, data MatchData) (Match, bool)
	DeleteFunc           func(id string) bool

	// Call records
	CreateCalls []MatchData
	UpdateCalls []struct {
		ID   string
		Data MatchData
	}
	DeleteCalls []string
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Load() error {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil
}

func (m *MockStore) FindAll() []Match {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil
}

func (m *MockStore) FindOne(id string) (Match, bool) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(id)
	}
	return Match{}, false
}

func (m *MockStore) FindByScoreboard(scoreboardID string) (Match, bool) {
	if m.FindByScoreboardFunc != nil {
		return m.FindByScoreboardFunc(scoreboardID)
	}
	return Match{}, false
}

func (m *MockStore) CurrentMatch() (Match, bool) {
	if m.CurrentMatchFunc != nil {
		return m.CurrentMatchFunc()
	}
	return Match{}, false
}

func (m *MockStore) Create(data MatchData) (Match, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, data)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(data)
	}
	return Match{ID: "mock-match", ScoreboardID: data.ScoreboardID}, nil
}

func (m *MockStore) Update(id string, data MatchData) (Match, bool) {
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		ID   string
		Data MatchData
	}{id, data})
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, data)
	}
	return Match{}, false
}

func (m *MockStore) Delete(id string) bool {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return false
}
