package records

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func rec(score, minute int) Record {
	return Record{Score: score, At: epoch.Add(time.Duration(minute) * time.Minute)}
}

func scores(list []Record) []int {
	out := make([]int, len(list))
	for i, r := range list {
		out[i] = r.Score
	}
	return out
}

// exerciseStore checks the ordering contract every backend shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	top, err := s.Top(10)
	require.NoError(t, err)
	assert.Empty(t, top)

	for i, sc := range []int{1200, 3000, 800, 2500} {
		require.NoError(t, s.Add(rec(sc, i)))
	}

	top, err = s.Top(10)
	require.NoError(t, err)
	assert.Equal(t, []int{3000, 2500, 1200, 800}, scores(top))
	assert.WithinDuration(t, epoch.Add(time.Minute), top[0].At, time.Second)

	top, err = s.Top(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3000, 2500}, scores(top))
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemory_KeepsBestTen(t *testing.T) {
	m := NewMemory()
	for i := 1; i <= 15; i++ {
		require.NoError(t, m.Add(rec(i*100, i)))
	}
	top, err := m.Top(-1)
	require.NoError(t, err)
	require.Len(t, top, Capacity)
	assert.Equal(t, 1500, top[0].Score)
	assert.Equal(t, 600, top[9].Score)
}

func TestMemory_TopIsACopy(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Add(rec(100, 0)))
	top, _ := m.Top(1)
	top[0].Score = 9
	again, _ := m.Top(1)
	assert.Equal(t, 100, again[0].Score)
}

func TestSQL(t *testing.T) {
	s, err := OpenSQL(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestSQL_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	s, err := OpenSQL(path)
	require.NoError(t, err)
	require.NoError(t, s.Add(rec(1700, 0)))
	require.NoError(t, s.Close())

	s, err = OpenSQL(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	top, err := s.Top(10)
	require.NoError(t, err)
	assert.Equal(t, []int{1700}, scores(top))
}

func TestSQL_TiesKeepInsertionOrder(t *testing.T) {
	s, err := OpenSQL(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Add(rec(900, 0)))
	require.NoError(t, s.Add(rec(900, 5)))
	top, err := s.Top(10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.WithinDuration(t, epoch, top[0].At, time.Second)
}

func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	m, err := gdata.Open(gdata.Config{AppName: "lander_test"})
	require.NoError(t, err)
	return m
}

func TestGdata(t *testing.T) {
	g, err := NewGdata(openTestGdata(t))
	require.NoError(t, err)
	exerciseStore(t, g)
}

func TestGdata_ReloadsSavedBoard(t *testing.T) {
	m := openTestGdata(t)
	g, err := NewGdata(m)
	require.NoError(t, err)
	require.NoError(t, g.Add(rec(2100, 0)))
	require.NoError(t, g.Add(rec(2400, 1)))

	again, err := NewGdata(m)
	require.NoError(t, err)
	top, err := again.Top(10)
	require.NoError(t, err)
	assert.Equal(t, []int{2400, 2100}, scores(top))
}

func TestGdata_NilManagerIsMemoryOnly(t *testing.T) {
	g, err := NewGdata(nil)
	require.NoError(t, err)
	exerciseStore(t, g)
}

func TestPlacement(t *testing.T) {
	var top []Record
	assert.Equal(t, 1, Placement(top, 500))

	for i := 0; i < Capacity; i++ {
		top = append(top, rec(3000-i*100, i))
	}
	assert.Equal(t, 1, Placement(top, 3500))
	assert.Equal(t, 2, Placement(top, 2950))
	assert.Equal(t, 3, Placement(top, 2900))
	assert.Equal(t, 0, Placement(top, 2100))
	assert.Equal(t, 0, Placement(top, 100))
}

func TestOpen(t *testing.T) {
	s, err := Open("memory", "", "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open("sqlite", "", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", "", "")
	assert.Error(t, err)
}
