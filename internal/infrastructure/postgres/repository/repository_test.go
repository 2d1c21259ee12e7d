package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB はテストごとに独立したインメモリ SQLite を開き、全スキーマを同期する。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	return db
}
