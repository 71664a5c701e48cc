package scoreboard

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	LoadFunc      func() error
	FindAllFunc   func() []Scoreboard
	FindOneFunc   func(id string) (Scoreboard, bool)
	CreateFunc    func(name string) (Scoreboard, error)
	DeleteFunc    func(id string) bool
	UpdateAllFunc func(scoreboards []Scoreboard) ([]Scoreboard, error)

	// Call records
	CreateCalls    []string
	DeleteCalls    []string
	UpdateAllCalls [][]Scoreboard
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Load() error {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil
}

func (m *MockStore) FindAll() []Scoreboard {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil
}

func (m *MockStore) FindOne(id string) (Scoreboard, bool) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(id)
	}
	return Scoreboard{}, false
}

func (m *MockStore) Create(name string) (Scoreboard, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, name)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(name)
	}
	return Scoreboard{ID: "mock0000", Name: name}, nil
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

func (m *MockStore) UpdateAll(scoreboards []Scoreboard) ([]Scoreboard, error) {
	m.mu.Lock()
	m.UpdateAllCalls = append(m.UpdateAllCalls, scoreboards)
	m.mu.Unlock()
	if m.UpdateAllFunc != nil {
		return m.UpdateAllFunc(scoreboards)
	}
	return scoreboards, nil
}
