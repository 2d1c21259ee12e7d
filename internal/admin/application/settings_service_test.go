package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

type stubSettingsRepo struct {
	stored *admindomain.SiteSettings
}

func (s *stubSettingsRepo) Find(ctx context.Context) (*admindomain.SiteSettings, error) {
	return s.stored, nil
}

func (s *stubSettingsRepo) Save(ctx context.Context, settings *admindomain.SiteSettings) error {
	copied := *settings
	s.stored = &copied
	return nil
}

func TestSettingsServiceGetValue(t *testing.T) {
	stored := admindomain.DefaultSiteSettings()
	stored.ID = admindomain.SiteSettingsID
	stored.SiteName = "季節の食卓"
	service := NewSettingsService(&stubSettingsRepo{stored: &stored})
	ctx := context.Background()

	value, known, err := service.GetValue(ctx, "site_name")
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, "季節の食卓", value)

	value, known, err = service.GetValue(ctx, "no_such_key")
	require.NoError(t, err)
	assert.False(t, known)
	assert.Equal(t, "", value)
}

func TestSettingsServiceSetValueUnknownKeyWritesNothing(t *testing.T) {
	repo := &stubSettingsRepo{}
	service := NewSettingsService(repo)

	known, err := service.SetValue(context.Background(), "no_such_key", "x")
	require.NoError(t, err)
	assert.False(t, known)
	assert.Nil(t, repo.stored)
}
