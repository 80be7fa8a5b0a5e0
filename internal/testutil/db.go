// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	migration "career-bridge/cmd/database/migrate"
	"career-bridge/entities"
	"career-bridge/internal/utils"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a per-test in-memory SQLite database with every table migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the shared-cache database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, firstName string) *entities.User {
	t.Helper()
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entities.User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  "Test",
		Email:     strings.ToLower(firstName) + "-" + uuid.NewString()[:6] + "@example.com",
		Password:  hashed,
		IsActive:  true,
		IsNewUser: true,
		Timestamp: entities.Timestamp{CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
