package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/daylist/internal/models"
)

// MemoryDSN keeps the journal in memory for the lifetime of the process
const MemoryDSN = ":memory:"

// Journal records every action dispatched during a session
type Journal struct {
	db *gorm.DB
}

// Open sets up the journal database and runs migrations.
// An empty dsn means MemoryDSN.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	// File-backed journals need their directory
	if dsn != MemoryDSN && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Every pooled connection to :memory: is a fresh database, so pin one
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get journal connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	j := &Journal{db: gdb}
	if err := j.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return j, nil
}

// runMigrations creates/updates the journal schema
func (j *Journal) runMigrations() error {
	return j.db.AutoMigrate(&models.JournalEntry{})
}

// Ping checks the journal connection is alive
func (j *Journal) Ping(ctx context.Context) error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the journal connection
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
