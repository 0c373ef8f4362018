package records

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// landing is the table row behind SQL.
type landing struct {
	ID    uint      `gorm:"primarykey"`
	Score int       `gorm:"index"`
	At    time.Time `gorm:"index"`
}

// SQL keeps every landing in a SQLite database and ranks on query.
type SQL struct {
	db *gorm.DB
}

// OpenSQL opens (or creates) the SQLite database at path. An empty path
// uses a private in-memory database.
func OpenSQL(path string) (*SQL, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// Every pooled connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&landing{}); err != nil {
		return nil, fmt.Errorf("migrate leaderboard: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Add(r Record) error {
	if err := s.db.Create(&landing{Score: r.Score, At: r.At}).Error; err != nil {
		return fmt.Errorf("insert landing: %w", err)
	}
	return nil
}

// Top ranks by score, then by insertion order so earlier entries win ties.
func (s *SQL) Top(n int) ([]Record, error) {
	if n < 0 {
		n = Capacity
	}
	var rows []landing
	err := s.db.Order("score DESC").Order("id ASC").Limit(n).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = Record{Score: row.Score, At: row.At}
	}
	return out, nil
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
