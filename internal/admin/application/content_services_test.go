package application

import (
	"context"
	"strings"
	"testing"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugFor(t *testing.T) {
	assert.Equal(t, "autumn-menu-2026", slugFor("Autumn Menu 2026"))

	// 日本語のみのタイトルはスラグ化できないのでランダムIDになる。
	generated := slugFor("秋の新メニュー")
	assert.Len(t, generated, 12)
	assert.Regexp(t, "^[a-z0-9]+$", generated)

	assert.NotEqual(t, slugFor("秋の新メニュー"), generated)
}

type stubMediaRepo struct {
	created *admindomain.Media
}

func (s *stubMediaRepo) Find(ctx context.Context, filter MediaFilter, paging Paging) ([]admindomain.Media, int64, error) {
	return nil, 0, nil
}

func (s *stubMediaRepo) FindByID(ctx context.Context, id string) (*admindomain.Media, error) {
	return nil, nil
}

func (s *stubMediaRepo) Create(ctx context.Context, media *admindomain.Media) error {
	s.created = media
	return nil
}

func (s *stubMediaRepo) Update(ctx context.Context, media *admindomain.Media) error { return nil }

func (s *stubMediaRepo) Delete(ctx context.Context, id string) error { return nil }

func TestMediaRegisterGeneratesStoredPath(t *testing.T) {
	repo := &stubMediaRepo{}
	service := NewMediaService(repo)

	media, err := service.Register(context.Background(), RegisterMediaCommand{
		Title:    "店内写真",
		Filename: "interior.JPG",
		Type:     "image/jpeg",
		Size:     2048,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.True(t, strings.HasSuffix(media.Path, ".jpg"))
	assert.Len(t, strings.TrimSuffix(media.Path, ".jpg"), 16)
	assert.Equal(t, "interior.JPG", media.Filename)
}

func TestMediaRegisterKeepsExplicitPath(t *testing.T) {
	repo := &stubMediaRepo{}
	service := NewMediaService(repo)

	media, err := service.Register(context.Background(), RegisterMediaCommand{
		Filename: "menu.pdf",
		Path:     "2026/08/menu.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026/08/menu.pdf", media.Path)
}
