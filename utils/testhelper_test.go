package utils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"prflow/config"
	"prflow/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory sqlite database, runs migrations and
// installs it as the global handle. cache=shared keeps every pooled
// connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:utilstest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	return db
}
