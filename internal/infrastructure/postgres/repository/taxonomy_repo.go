package repository

import (
	"context"
	"errors"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxonomyRepository はカテゴリとタグを扱う。一覧には利用数を付ける。
type TaxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

func (r *TaxonomyRepository) Categories(ctx context.Context) ([]admindomain.Category, error) {
	var rows []models.CategoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]admindomain.Category, 0, len(rows))
	for i := range rows {
		category := categoryToDomain(&rows[i])
		if err := r.fillCategoryCounts(ctx, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *TaxonomyRepository) CategoryByID(ctx context.Context, id string) (*admindomain.Category, error) {
	var model models.CategoryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	category := categoryToDomain(&model)
	if err := r.fillCategoryCounts(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *TaxonomyRepository) CategoryBySlug(ctx context.Context, slug string) (*admindomain.Category, error) {
	var model models.CategoryModel
	err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	category := categoryToDomain(&model)
	if err := r.fillCategoryCounts(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *TaxonomyRepository) SaveCategory(ctx context.Context, category *admindomain.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	model := models.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
	return r.db.WithContext(ctx).Save(&model).Error
}

func (r *TaxonomyRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 参照している記事のカテゴリを外してから削除する。
		if err := tx.Model(&models.PostModel{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_categories WHERE category_model_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CategoryModel{}, "id = ?", id).Error
	})
}

func (r *TaxonomyRepository) Tags(ctx context.Context) ([]admindomain.Tag, error) {
	var rows []models.TagModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	tags := make([]admindomain.Tag, 0, len(rows))
	for i := range rows {
		tag := tagToDomain(&rows[i])
		if err := r.fillTagCounts(ctx, &tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *TaxonomyRepository) TagByID(ctx context.Context, id string) (*admindomain.Tag, error) {
	var model models.TagModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tag := tagToDomain(&model)
	if err := r.fillTagCounts(ctx, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TaxonomyRepository) TagBySlug(ctx context.Context, slug string) (*admindomain.Tag, error) {
	var model models.TagModel
	err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tag := tagToDomain(&model)
	if err := r.fillTagCounts(ctx, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TaxonomyRepository) SaveTag(ctx context.Context, tag *admindomain.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	model := models.TagModel{
		ID:        tag.ID,
		Name:      tag.Name,
		Slug:      tag.Slug,
		CreatedAt: tag.CreatedAt,
	}
	return r.db.WithContext(ctx).Save(&model).Error
}

func (r *TaxonomyRepository) DeleteTag(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_model_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_tags WHERE tag_model_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TagModel{}, "id = ?", id).Error
	})
}

func (r *TaxonomyRepository) fillCategoryCounts(ctx context.Context, category *admindomain.Category) error {
	var posts int64
	if err := r.db.WithContext(ctx).Model(&models.PostModel{}).Where("category_id = ?", category.ID).Count(&posts).Error; err != nil {
		return err
	}
	var events int64
	if err := r.db.WithContext(ctx).Table("event_categories").Where("category_model_id = ?", category.ID).Count(&events).Error; err != nil {
		return err
	}
	category.PostCount = int(posts)
	category.EventCount = int(events)
	return nil
}

func (r *TaxonomyRepository) fillTagCounts(ctx context.Context, tag *admindomain.Tag) error {
	var posts int64
	if err := r.db.WithContext(ctx).Table("post_tags").Where("tag_model_id = ?", tag.ID).Count(&posts).Error; err != nil {
		return err
	}
	var events int64
	if err := r.db.WithContext(ctx).Table("event_tags").Where("tag_model_id = ?", tag.ID).Count(&events).Error; err != nil {
		return err
	}
	tag.PostCount = int(posts)
	tag.EventCount = int(events)
	return nil
}
