package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Sandee004/Voterz/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database so every test
// gets its own isolated store while gorm's pooled connections still
// see the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Election{},
		&models.Question{},
		&models.Option{},
		&models.Response{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: "x",
		OrgType:      "school",
		OrgName:      "Test Org",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestElection(t *testing.T, db *gorm.DB, svc *ElectionService, userID uint, built bool) *models.Election {
	t.Helper()

	election, err := svc.Create(userID, "Test Election", mustDate("2025-01-01"), mustDate("2025-01-31"))
	require.NoError(t, err)
	if built {
		require.NoError(t, svc.Build(election.ID, userID))
		election.IsBuilt = true
	}
	return election
}
