// Package db provides shared query scopes for GORM repositories.
package db

import "gorm.io/gorm"

// Paginate applies limit/offset for 1-based page numbers.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			pageSize = 20
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
