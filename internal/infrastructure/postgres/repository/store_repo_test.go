package repository

import (
	"context"
	"testing"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cafeStoreInfo() admindomain.StoreInfo {
	return admindomain.StoreInfo{
		Name:        "Café A",
		Description: "路地裏の小さなカフェ",
		Phone:       "03-1234-5678",
		Email:       "info@cafe-a.example.com",
		Address: admindomain.Address{
			ZipCode:    "150-0001",
			Prefecture: "東京都",
			City:       "渋谷区",
			Street:     "神宮前1-2-3",
		},
		BusinessHours: []admindomain.BusinessHour{
			{Day: "月", IsOpen: true, OpenTime: "11:00", CloseTime: "20:00"},
		},
	}
}

func TestStoreRepositoryFindEmpty(t *testing.T) {
	repo := NewStoreRepository(newTestDB(t))

	info, err := repo.Find(context.Background())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestStoreRepositorySaveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	info := cafeStoreInfo()
	require.NoError(t, repo.Save(ctx, &info))
	require.NotEmpty(t, info.ID)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, info.ID, found.ID)
	assert.Equal(t, "Café A", found.Name)
	assert.Equal(t, "03-1234-5678", found.Phone)
	assert.Equal(t, "東京都", found.Address.Prefecture)
	assert.Equal(t, "渋谷区", found.Address.City)
	require.Len(t, found.BusinessHours, 1)
	assert.Equal(t, "月", found.BusinessHours[0].Day)
	assert.True(t, found.BusinessHours[0].IsOpen)
	assert.Equal(t, "11:00", found.BusinessHours[0].OpenTime)
	assert.Equal(t, "20:00", found.BusinessHours[0].CloseTime)

	var addresses int64
	require.NoError(t, db.Model(&models.AddressModel{}).Where("store_id = ?", info.ID).Count(&addresses).Error)
	assert.EqualValues(t, 1, addresses)
}

func TestStoreRepositorySaveReplacesBusinessHours(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	info := cafeStoreInfo()
	info.BusinessHours = admindomain.DefaultBusinessHours()
	require.NoError(t, repo.Save(ctx, &info))

	count, err := repo.CountBusinessHours(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	info.BusinessHours = []admindomain.BusinessHour{
		{Day: "金", IsOpen: true, OpenTime: "17:00", CloseTime: "23:00"},
		{Day: "土", IsOpen: true, OpenTime: "12:00", CloseTime: "23:00"},
		{Day: "日", IsOpen: false},
	}
	require.NoError(t, repo.Save(ctx, &info))

	count, err = repo.CountBusinessHours(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.BusinessHours, 3)

	var closed *admindomain.BusinessHour
	for i := range found.BusinessHours {
		if found.BusinessHours[i].Day == "日" {
			closed = &found.BusinessHours[i]
		}
	}
	require.NotNil(t, closed)
	assert.False(t, closed.IsOpen)
	assert.Empty(t, closed.OpenTime)
	assert.Empty(t, closed.CloseTime)
}

func TestStoreRepositorySaveUpdatesAddressInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	info := cafeStoreInfo()
	require.NoError(t, repo.Save(ctx, &info))

	info.Address.City = "目黒区"
	info.Address.Street = "中目黒4-5-6"
	require.NoError(t, repo.Save(ctx, &info))

	var addresses int64
	require.NoError(t, db.Model(&models.AddressModel{}).Where("store_id = ?", info.ID).Count(&addresses).Error)
	assert.EqualValues(t, 1, addresses)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "目黒区", found.Address.City)
	assert.Equal(t, "中目黒4-5-6", found.Address.Street)
}
