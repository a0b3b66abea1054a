package mysql

import "gorm.io/gorm"

// Soft delete is a query-time concern: this scope is the only place the
// deleted_at predicate is written. Detail and balance paths go through
// Alive; list paths intentionally use no filter (they never filtered).

func Alive(db *gorm.DB) *gorm.DB { return db.Where("deleted_at IS NULL") }
