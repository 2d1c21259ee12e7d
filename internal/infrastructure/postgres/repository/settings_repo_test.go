package repository

import (
	"context"
	"testing"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepositoryFindEmpty(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	settings, err := repo.Find(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestSettingsRepositorySaveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	settings := admindomain.SiteSettings{
		ID:                admindomain.SiteSettingsID,
		SiteName:          "季節の食卓",
		SiteDescription:   "旬の食材を届けるメディア",
		LogoURL:           "https://example.com/logo.png",
		FaviconURL:        "https://example.com/favicon.ico",
		MetaTitle:         "季節の食卓 | 公式メディア",
		MetaDescription:   "店舗の最新情報とお知らせを届けます",
		OGImageURL:        "https://example.com/og.png",
		GoogleAnalyticsID: "G-ABC123DEF",
		SocialMedia: admindomain.SocialMediaLinks{
			Twitter:   "https://twitter.com/example",
			Facebook:  "https://facebook.com/example",
			Instagram: "https://instagram.com/example",
			YouTube:   "https://youtube.com/@example",
			Line:      "https://line.me/R/ti/p/example",
		},
		Notifications: admindomain.NotificationSettings{
			AdminEmail:                  "owner@example.com",
			SendCommentNotification:     true,
			SendContactFormNotification: false,
		},
		Display: admindomain.DisplaySettings{
			PostsPerPage:   12,
			ShowAuthorInfo: false,
			EnableComments: true,
			PrimaryColor:   "#10b981",
			SecondaryColor: "#f59e0b",
		},
	}

	require.NoError(t, repo.Save(ctx, &settings))
	assert.False(t, settings.CreatedAt.IsZero())

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)

	// タイムスタンプは保存時に採番されるため、近似一致を確認したうえで正規化する。
	assert.WithinDuration(t, settings.CreatedAt, found.CreatedAt, time.Second)
	want := settings
	want.CreatedAt = found.CreatedAt
	want.UpdatedAt = found.UpdatedAt
	assert.Equal(t, want, *found)
}

func TestSettingsRepositorySaveUpsertsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	first := admindomain.DefaultSiteSettings()
	first.ID = admindomain.SiteSettingsID
	first.SiteName = "初回保存"
	require.NoError(t, repo.Save(ctx, &first))

	second := admindomain.DefaultSiteSettings()
	second.ID = admindomain.SiteSettingsID
	second.SiteName = "二回目保存"
	second.CreatedAt = first.CreatedAt
	require.NoError(t, repo.Save(ctx, &second))

	var count int64
	require.NoError(t, db.Model(&models.SiteSettingsModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "二回目保存", found.SiteName)
}
