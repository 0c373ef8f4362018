package records

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	leaderboardObject   = "leaderboard"
	leaderboardProperty = "top"
)

// Gdata stores the leaderboard as YAML in the platform's app data dir.
// A nil manager runs in memory only.
type Gdata struct {
	mu      sync.Mutex
	manager *gdata.Manager
	list    []Record
}

// OpenGdata opens the app data store for appName and loads any saved
// leaderboard.
func OpenGdata(appName string) (*Gdata, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open app data %q: %w", appName, err)
	}
	return NewGdata(m)
}

// NewGdata wraps an existing manager. A load failure leaves the store
// empty and usable; the error is still returned for logging.
func NewGdata(m *gdata.Manager) (*Gdata, error) {
	g := &Gdata{manager: m}
	if err := g.load(); err != nil {
		return g, err
	}
	return g, nil
}

func (g *Gdata) load() error {
	if g.manager == nil || !g.manager.ObjectPropExists(leaderboardObject, leaderboardProperty) {
		return nil
	}
	data, err := g.manager.LoadObjectProp(leaderboardObject, leaderboardProperty)
	if err != nil {
		return fmt.Errorf("load leaderboard: %w", err)
	}
	var list []Record
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("unmarshal leaderboard: %w", err)
	}
	for _, r := range list {
		g.list = insert(g.list, r)
	}
	return nil
}

func (g *Gdata) save() error {
	if g.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(g.list)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := g.manager.SaveObjectProp(leaderboardObject, leaderboardProperty, data); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// Add inserts r and writes the leaderboard back. The in-memory list is
// updated even when the write fails.
func (g *Gdata) Add(r Record) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.list = insert(g.list, r)
	return g.save()
}

func (g *Gdata) Top(n int) ([]Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return head(g.list, n), nil
}

func (g *Gdata) Close() error { return nil }
