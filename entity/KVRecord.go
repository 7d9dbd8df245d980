package entity

import (
	"gorm.io/gorm"
)

// KVRecord backs the per-device session storage: one row per
// (session scope, key). Values are opaque strings, usually JSON.
type KVRecord struct {
	gorm.Model
	Scope string `gorm:"size:64;uniqueIndex:idx_kv_scope_key;not null" json:"scope"`
	Key   string `gorm:"size:64;uniqueIndex:idx_kv_scope_key;not null" json:"key"`
	Value string `json:"value"`
}
