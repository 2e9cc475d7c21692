package config

import (
	"path/filepath"
	"testing"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConnectDatabase_SQLiteFile(t *testing.T) {
	cfg := &Config{DatabaseURL: filepath.Join(t.TempDir(), "cafe.db"), LogLevel: "silent"}

	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Order{}))
	assert.True(t, db.Migrator().HasTable(&models.Table{}))
	assert.True(t, db.Migrator().HasTable(&models.Category{}))
	assert.True(t, db.Migrator().HasTable(&models.MenuItem{}))
}

func TestSeedDatabase(t *testing.T) {
	cfg := &Config{DatabaseURL: filepath.Join(t.TempDir(), "cafe.db"), LogLevel: "silent"}
	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedDatabase(db))
	// seeding twice must not duplicate rows
	require.NoError(t, SeedDatabase(db))

	var tables, categories, items int64
	db.Model(&models.Table{}).Count(&tables)
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.MenuItem{}).Count(&items)

	assert.Equal(t, int64(len(seedTables)), tables)
	assert.Equal(t, int64(len(seedCategories)), categories)
	assert.Equal(t, int64(len(seedMenu)), items)

	var orphaned int64
	db.Model(&models.MenuItem{}).Where("category NOT IN (?)", db.Model(&models.Category{}).Select("slug")).Count(&orphaned)
	assert.Zero(t, orphaned, "every seeded menu item should reference a seeded category")
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("debug"))
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Error, gormLogLevel("error"))
	assert.Equal(t, logger.Warn, gormLogLevel("info"))
}
