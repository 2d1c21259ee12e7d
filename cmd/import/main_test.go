package main

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pginit "github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
)

func newImportTestDB(t *testing.T, role string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), role)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestImportStoreMigratesBusinessHours(t *testing.T) {
	source := newImportTestDB(t, "source")
	target := newImportTestDB(t, "target")
	require.NoError(t, pginit.Migrate(target))

	require.NoError(t, source.Exec(`CREATE TABLE "Store" (id TEXT PRIMARY KEY, name TEXT, description TEXT, phone TEXT, email TEXT, "accessInfo" TEXT, "reservationUrl" TEXT, "createdAt" DATETIME, "updatedAt" DATETIME)`).Error)
	require.NoError(t, source.Exec(`CREATE TABLE "Address" (id TEXT PRIMARY KEY, "zipCode" TEXT, prefecture TEXT, city TEXT, street TEXT, building TEXT, "storeId" TEXT, "createdAt" DATETIME, "updatedAt" DATETIME)`).Error)
	require.NoError(t, source.Exec(`CREATE TABLE "BusinessHour" (id TEXT PRIMARY KEY, day TEXT, "isOpen" BOOLEAN, "openTime" TEXT, "closeTime" TEXT, "storeId" TEXT, "createdAt" DATETIME)`).Error)

	now := time.Now()
	require.NoError(t, source.Exec(`INSERT INTO "Store" VALUES ('store-1', 'カフェA', '', '03-1234-5678', '', '', '', ?, ?)`, now, now).Error)
	require.NoError(t, source.Exec(`INSERT INTO "Address" VALUES ('addr-1', '150-0001', '東京都', '渋谷区', '神宮前1-2-3', '', 'store-1', ?, ?)`, now, now).Error)
	require.NoError(t, source.Exec(`INSERT INTO "BusinessHour" VALUES ('bh-1', '月', 1, '11:00', '20:00', 'store-1', ?)`, now).Error)
	require.NoError(t, source.Exec(`INSERT INTO "BusinessHour" VALUES ('bh-2', '平日', 1, '11:00', '20:00', 'store-1', ?)`, now).Error)

	sourceDB, err := source.DB()
	require.NoError(t, err)

	imp := &importer{source: sourceDB, target: target, logger: log.New(io.Discard, "", 0)}
	require.NoError(t, imp.importStore())

	var stores int64
	require.NoError(t, target.Model(&models.StoreModel{}).Count(&stores).Error)
	assert.EqualValues(t, 1, stores)

	var addresses int64
	require.NoError(t, target.Model(&models.AddressModel{}).Count(&addresses).Error)
	assert.EqualValues(t, 1, addresses)

	// 不正な曜日の行は取り込まない。
	var hours []models.BusinessHourModel
	require.NoError(t, target.Find(&hours).Error)
	require.Len(t, hours, 1)
	assert.Equal(t, "月", hours[0].Day)
	assert.Equal(t, "store-1", hours[0].StoreID)
	require.NotNil(t, hours[0].OpenTime)
	assert.Equal(t, "11:00", *hours[0].OpenTime)
}
