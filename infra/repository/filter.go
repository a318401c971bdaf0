package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likeContains narrows tx to rows whose column contains value as a
// case-insensitive substring of its text form. Empty values filter nothing,
// matching the original query semantics where an omitted parameter matches
// everything.
func likeContains(tx *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return tx
	}
	return tx.Where(
		"LOWER(CAST("+column+" AS TEXT)) LIKE ?",
		"%"+strings.ToLower(value)+"%",
	)
}

// likeContainsID is likeContains for uuid columns: dashes are ignored on
// both sides so callers can filter on any slice of the canonical form.
func likeContainsID(tx *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return tx
	}
	stripped := strings.ReplaceAll(strings.ToLower(value), "-", "")
	return tx.Where(
		"REPLACE(LOWER(CAST("+column+" AS TEXT)), '-', '') LIKE ?",
		"%"+stripped+"%",
	)
}

// boolEquals applies an equality filter when the pointer is set.
func boolEquals(tx *gorm.DB, column string, value *bool) *gorm.DB {
	if value == nil {
		return tx
	}
	return tx.Where(column+" = ?", *value)
}

// paginate applies limit/offset, falling back to the default page size.
func paginate(tx *gorm.DB, limit, offset, defaultLimit int) *gorm.DB {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return tx.Limit(limit).Offset(offset)
}
