// Package records persists the leaderboard of successful landings.
package records

import (
	"fmt"
	"sort"
	"time"
)

// Capacity is how many entries the leaderboard keeps.
const Capacity = 10

// Record is one successful landing.
type Record struct {
	Score int       `yaml:"score"`
	At    time.Time `yaml:"at"`
}

// Store is a leaderboard backend.
type Store interface {
	Add(r Record) error
	Top(n int) ([]Record, error)
	Close() error
}

// Placement returns the 1-based rank a score would take among top, or 0
// when it would not make the leaderboard. Ties rank below existing entries.
func Placement(top []Record, score int) int {
	rank := 1
	for _, r := range top {
		if r.Score >= score {
			rank++
		}
	}
	if rank > Capacity {
		return 0
	}
	return rank
}

// insert adds r to list, keeping it sorted by descending score and cut to
// Capacity. Earlier entries win ties.
func insert(list []Record, r Record) []Record {
	list = append(list, r)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	if len(list) > Capacity {
		list = list[:Capacity]
	}
	return list
}

func head(list []Record, n int) []Record {
	if n < 0 || n > len(list) {
		n = len(list)
	}
	out := make([]Record, n)
	copy(out, list[:n])
	return out
}

// Open builds the backend named by kind: "gdata", "sqlite" or "memory".
func Open(kind, appName, path string) (Store, error) {
	switch kind {
	case "gdata", "":
		return OpenGdata(appName)
	case "sqlite":
		return OpenSQL(path)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown records backend %q", kind)
	}
}
