package storage

import (
	"errors"

	"gorm.io/gorm"
)

// kvEntry is the single table behind GormBackend: one row per storage key.
type kvEntry struct {
	Clave string `gorm:"primaryKey"`
	Valor string
}

func (kvEntry) TableName() string { return "kv_entries" }

// GormBackend persists keys into a local SQLite file through GORM.
type GormBackend struct{ db *gorm.DB }

func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Get(clave string) (string, bool, error) {
	var e kvEntry
	err := b.db.First(&e, "clave = ?", clave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Valor, true, nil
}

func (b *GormBackend) Set(clave, valor string) error {
	return b.db.Save(&kvEntry{Clave: clave, Valor: valor}).Error
}

func (b *GormBackend) Delete(clave string) error {
	return b.db.Delete(&kvEntry{}, "clave = ?", clave).Error
}
