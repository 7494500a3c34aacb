// Package gorm provides GORM-based implementations of the store interfaces.
//
// All stores in this package operate against PostgreSQL. Driver errors are
// translated to the sentinel errors of the store package so that callers
// never depend on gorm or lib/pq directly.
package gorm
