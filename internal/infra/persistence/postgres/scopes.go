package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// paginate applies limit/offset when they are positive.
func paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}

		return db
	}
}

// forUpdate routes the read to the primary and locks the selected rows
// until the surrounding transaction ends.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// onPrimary routes a read to the primary so it observes writes made moments ago.
func onPrimary(db *gorm.DB) *gorm.DB {
	return db.Clauses(dbresolver.Write)
}
