package repository

import (
	"context"
	"errors"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaRepository はアップロード済みファイルのレジストリを扱う。
type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Find(ctx context.Context, filter adminapp.MediaFilter, paging adminapp.Paging) ([]admindomain.Media, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MediaModel{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(filename) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.MediaModel
	err := query.
		Order("created_at DESC").
		Offset(paging.Offset()).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]admindomain.Media, 0, len(rows))
	for i := range rows {
		items = append(items, mediaToDomain(&rows[i]))
	}
	return items, total, nil
}

func (r *MediaRepository) FindByID(ctx context.Context, id string) (*admindomain.Media, error) {
	var model models.MediaModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	media := mediaToDomain(&model)
	return &media, nil
}

func (r *MediaRepository) Create(ctx context.Context, media *admindomain.Media) error {
	media.ID = uuid.NewString()
	model := models.MediaModel{
		ID:          media.ID,
		Title:       media.Title,
		Filename:    media.Filename,
		Path:        media.Path,
		Type:        media.Type,
		Size:        media.Size,
		Alt:         media.Alt,
		Description: media.Description,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	media.CreatedAt = model.CreatedAt
	media.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *MediaRepository) Update(ctx context.Context, media *admindomain.Media) error {
	result := r.db.WithContext(ctx).Model(&models.MediaModel{}).Where("id = ?", media.ID).Updates(map[string]any{
		"title":       media.Title,
		"alt":         media.Alt,
		"description": media.Description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.MediaModel{}, "id = ?", id).Error
}

func mediaToDomain(m *models.MediaModel) admindomain.Media {
	return admindomain.Media{
		ID:          m.ID,
		Title:       m.Title,
		Filename:    m.Filename,
		Path:        m.Path,
		Type:        m.Type,
		Size:        m.Size,
		Alt:         m.Alt,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
