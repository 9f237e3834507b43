package infra

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the local SQLite file that backs the key-value store.
// The schema (a single kv table) is migrated by the storage backend itself.
// ":memory:" is accepted for tests.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One writer at a time: the document is always rewritten whole, and
	// SQLite serializes writers anyway.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
