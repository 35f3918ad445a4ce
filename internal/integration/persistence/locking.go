// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate locks the selected rows until the surrounding transaction ends.
// The sqlite dialect drops the clause; sqlite serialises writers on its own.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
