// Package testutil provides an in-memory relational store for tests.
package testutil

import (
	"testing"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database that lives as long as t
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db))
	return db
}

// SeedNeighborhood inserts a neighborhood with the given name
func SeedNeighborhood(t *testing.T, db *gorm.DB, name string) *models.Neighborhood {
	t.Helper()
	n := &models.Neighborhood{Name: name, Slug: name}
	require.NoError(t, db.Create(n).Error)
	return n
}

// SeedUser inserts a client assigned to neighborhoodID; zero leaves it unassigned
func SeedUser(t *testing.T, db *gorm.DB, email string, neighborhoodID uint) *models.User {
	t.Helper()
	u := &models.User{Name: email, Email: email, Role: models.RoleClient}
	if neighborhoodID != 0 {
		u.NeighborhoodID = &neighborhoodID
	}
	require.NoError(t, db.Omit("Neighborhood").Create(u).Error)
	return u
}
