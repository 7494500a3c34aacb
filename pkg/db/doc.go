// Package db establishes the GORM connection to the Conduit database.
package db
