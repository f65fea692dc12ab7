package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one persisted key/value pair.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:512"`
	Value     string
	ExpiresAt time.Time `gorm:"index"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormKV stores entries in a database table, for deployments that want carts
// and sessions to live server-side instead of in browser cookies.
type GormKV struct {
	db *gorm.DB

	now func() time.Time
}

func NewGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormKV{db: db, now: time.Now}, nil
}

func (g *GormKV) Get(key string) (string, bool) {
	var entry KVEntry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		return "", false
	}
	if g.now().After(entry.ExpiresAt) {
		g.db.Delete(&KVEntry{}, "key = ?", key)
		return "", false
	}
	return entry.Value, true
}

func (g *GormKV) Set(key, value string, ttl time.Duration) {
	entry := KVEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: g.now().Add(ttl),
	}
	g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry)
}

func (g *GormKV) Delete(key string) {
	g.db.Delete(&KVEntry{}, "key = ?", key)
}
