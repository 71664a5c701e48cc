package metrics

import "sync"

// MockMetrics is a no-op Metrics implementation recording call counts for
// tests.
type MockMetrics struct {
	mu sync.Mutex

	Connections       int
	MessagesHandled   int
	Broadcasts        int
	BroadcastsDropped int
	StartupTime       float64
}

var _ Metrics = (*MockMetrics)(nil)

func (m *MockMetrics) IncConnection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Connections++
}

func (m *MockMetrics) DecConnection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Connections--
}

func (m *MockMetrics) IncMessageHandled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MessagesHandled++
}

func (m *MockMetrics) IncBroadcast() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Broadcasts++
}

func (m *MockMetrics) IncBroadcastDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BroadcastsDropped++
}

func (m *MockMetrics) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}
