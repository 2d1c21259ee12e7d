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

// CommentRepository はコメントのモデレーションと公開側の投稿受付を扱う。
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Find(ctx context.Context, filter adminapp.CommentFilter, paging adminapp.Paging) ([]admindomain.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CommentModel{})

	switch filter.Status {
	case "approved":
		query = query.Where("is_approved = ?", true)
	case "pending":
		query = query.Where("is_approved = ?", false)
	}
	if filter.PostID != "" {
		query = query.Where("post_id = ?", filter.PostID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.CommentModel
	err := query.
		Preload("Post").
		Order("created_at DESC").
		Offset(paging.Offset()).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]admindomain.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, commentToDomain(&rows[i]))
	}
	return comments, total, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*admindomain.Comment, error) {
	var model models.CommentModel
	err := r.db.WithContext(ctx).Preload("Post").First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	comment := commentToDomain(&model)
	return &comment, nil
}

func (r *CommentRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	result := r.db.WithContext(ctx).Model(&models.CommentModel{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CommentModel{}, "id = ?", id).Error
}

// Create は公開側から送信されたコメントを未承認の状態で保存する。
func (r *CommentRepository) Create(ctx context.Context, comment *admindomain.Comment) error {
	comment.ID = uuid.NewString()
	model := models.CommentModel{
		ID:         comment.ID,
		PostID:     comment.PostID,
		Name:       comment.Name,
		Email:      comment.Email,
		Content:    comment.Content,
		IsApproved: comment.IsApproved,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	comment.CreatedAt = model.CreatedAt
	comment.UpdatedAt = model.UpdatedAt
	return nil
}

// PostByID はコメント可否判定のために記事を引く。公開状態は呼び出し側で確認する。
func (r *CommentRepository) PostByID(ctx context.Context, postID string) (*admindomain.Post, error) {
	var model models.PostModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return postToDomain(&model), nil
}
