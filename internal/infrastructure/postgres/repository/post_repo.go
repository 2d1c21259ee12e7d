package repository

import (
	"context"
	"errors"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository は記事の管理/公開双方の読み書きを扱う。
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Find は管理画面向けの記事一覧を返す。総件数も併せて返す。
func (r *PostRepository) Find(ctx context.Context, filter adminapp.PostFilter, paging adminapp.Paging) ([]admindomain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PostModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.TagID != "" {
		query = query.Where("id IN (SELECT post_model_id FROM post_tags WHERE tag_model_id = ?)", filter.TagID)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?) OR LOWER(excerpt) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PostModel
	err := query.
		Preload("Author").Preload("Category").Preload("Tags").
		Order("created_at DESC").
		Offset(paging.Offset()).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]admindomain.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, *postToDomain(&rows[i]))
	}
	return posts, total, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*admindomain.Post, error) {
	var model models.PostModel
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	post := postToDomain(&model)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CommentModel{}).Where("post_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	post.CommentCount = int(count)
	return post, nil
}

func (r *PostRepository) Create(ctx context.Context, post *admindomain.Post, categoryID string, tagIDs []string) error {
	post.ID = uuid.NewString()
	model := postToModel(post, categoryID)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return r.replaceTags(tx, model, tagIDs)
	})
}

func (r *PostRepository) Update(ctx context.Context, post *admindomain.Post, categoryID string, tagIDs []string) error {
	model := postToModel(post, categoryID)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PostModel{}).Where("id = ?", post.ID).Updates(map[string]any{
			"title":           model.Title,
			"slug":            model.Slug,
			"content":         model.Content,
			"excerpt":         model.Excerpt,
			"status":          model.Status,
			"published_at":    model.PublishedAt,
			"featured_image":  model.FeaturedImage,
			"seo_title":       model.SEOTitle,
			"seo_description": model.SEODescription,
			"category_id":     model.CategoryID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return adminapp.ErrNotFound
		}
		return r.replaceTags(tx, &models.PostModel{ID: post.ID}, tagIDs)
	})
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PostModel{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PostModel{}, "id = ?", id).Error
	})
}

// FindPublished は公開済み記事のみを新しい順に返す。
func (r *PostRepository) FindPublished(ctx context.Context, filter publicapp.PostFilter, paging publicapp.Paging) ([]admindomain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Where("status = ?", string(admindomain.PostPublished))

	if filter.CategorySlug != "" {
		query = query.Where("category_id IN (SELECT id FROM categories WHERE slug = ?)", filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		query = query.Where("id IN (SELECT post_model_id FROM post_tags WHERE tag_model_id IN (SELECT id FROM tags WHERE slug = ?))", filter.TagSlug)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := 0
	if paging.Page > 1 {
		offset = (paging.Page - 1) * paging.Limit
	}

	var rows []models.PostModel
	err := query.
		Preload("Author").Preload("Category").Preload("Tags").
		Order("published_at DESC").
		Offset(offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]admindomain.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, *postToDomain(&rows[i]))
	}
	return posts, total, nil
}

func (r *PostRepository) FindPublishedBySlug(ctx context.Context, slug string) (*admindomain.Post, error) {
	var model models.PostModel
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Tags").
		Where("slug = ? AND status = ?", slug, string(admindomain.PostPublished)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return postToDomain(&model), nil
}

func (r *PostRepository) ApprovedComments(ctx context.Context, postID string) ([]admindomain.Comment, error) {
	var rows []models.CommentModel
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND is_approved = ?", postID, true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	comments := make([]admindomain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, commentToDomain(&row))
	}
	return comments, nil
}

func (r *PostRepository) replaceTags(tx *gorm.DB, model *models.PostModel, tagIDs []string) error {
	tags := make([]models.TagModel, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, models.TagModel{ID: id})
	}
	return tx.Model(model).Association("Tags").Replace(tags)
}

func postToModel(p *admindomain.Post, categoryID string) *models.PostModel {
	model := &models.PostModel{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Content:        p.Content,
		Excerpt:        p.Excerpt,
		Status:         string(p.Status),
		PublishedAt:    p.PublishedAt,
		FeaturedImage:  p.FeaturedImage,
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
		AuthorID:       p.Author.ID,
	}
	if categoryID != "" {
		model.CategoryID = &categoryID
	}
	return model
}

func postToDomain(m *models.PostModel) *admindomain.Post {
	post := &admindomain.Post{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		Content:        m.Content,
		Excerpt:        m.Excerpt,
		Status:         admindomain.PostStatus(m.Status),
		PublishedAt:    m.PublishedAt,
		FeaturedImage:  m.FeaturedImage,
		SEOTitle:       m.SEOTitle,
		SEODescription: m.SEODescription,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Author != nil {
		post.Author = userToDomain(m.Author)
	} else {
		post.Author = admindomain.User{ID: m.AuthorID}
	}
	if m.Category != nil {
		category := categoryToDomain(m.Category)
		post.Category = &category
	}
	post.Tags = make([]admindomain.Tag, 0, len(m.Tags))
	for i := range m.Tags {
		post.Tags = append(post.Tags, tagToDomain(&m.Tags[i]))
	}
	return post
}

func commentToDomain(m *models.CommentModel) admindomain.Comment {
	comment := admindomain.Comment{
		ID:         m.ID,
		PostID:     m.PostID,
		Name:       m.Name,
		Email:      m.Email,
		Content:    m.Content,
		IsApproved: m.IsApproved,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Post != nil {
		comment.PostTitle = m.Post.Title
		comment.PostSlug = m.Post.Slug
	}
	return comment
}

func userToDomain(m *models.UserModel) admindomain.User {
	return admindomain.User{
		ID:             m.ID,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		ProfilePicture: m.ProfilePicture,
		Role:           admindomain.Role(m.Role),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func categoryToDomain(m *models.CategoryModel) admindomain.Category {
	return admindomain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func tagToDomain(m *models.TagModel) admindomain.Tag {
	return admindomain.Tag{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
