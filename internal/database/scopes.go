package database

import (
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted rows of table. The table name is explicit
// so the scope stays unambiguous in joined queries.
func NotDeleted(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".is_deleted = ?", false)
	}
}
