package records

import "sync"

// Memory keeps the leaderboard for the lifetime of the process.
type Memory struct {
	mu   sync.Mutex
	list []Record
}

// NewMemory creates an empty in-memory leaderboard.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Add(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = insert(m.list, r)
	return nil
}

func (m *Memory) Top(n int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return head(m.list, n), nil
}

func (m *Memory) Close() error { return nil }
