package repository

import (
	"context"
	"errors"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository はイベントの管理/公開双方の読み書きを扱う。
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Find(ctx context.Context, filter adminapp.EventFilter, paging adminapp.Paging) ([]admindomain.Event, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EventModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.CategoryID != "" {
		query = query.Where("id IN (SELECT event_model_id FROM event_categories WHERE category_model_id = ?)", filter.CategoryID)
	}
	if filter.TagID != "" {
		query = query.Where("id IN (SELECT event_model_id FROM event_tags WHERE tag_model_id = ?)", filter.TagID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Upcoming {
		query = query.Where("start_date >= ?", time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.EventModel
	err := query.
		Preload("Author").Preload("Categories").Preload("Tags").
		Order("start_date ASC").
		Offset(paging.Offset()).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	events := make([]admindomain.Event, 0, len(rows))
	for i := range rows {
		events = append(events, *eventToDomain(&rows[i]))
	}
	return events, total, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*admindomain.Event, error) {
	var model models.EventModel
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Categories").Preload("Tags").
		First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return eventToDomain(&model), nil
}

func (r *EventRepository) Create(ctx context.Context, event *admindomain.Event, categoryIDs, tagIDs []string) error {
	event.ID = uuid.NewString()
	model := eventToModel(event)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return r.replaceAssociations(tx, model, categoryIDs, tagIDs)
	})
}

func (r *EventRepository) Update(ctx context.Context, event *admindomain.Event, categoryIDs, tagIDs []string) error {
	model := eventToModel(event)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.EventModel{}).Where("id = ?", event.ID).Updates(map[string]any{
			"title":          model.Title,
			"slug":           model.Slug,
			"description":    model.Description,
			"start_date":     model.StartDate,
			"end_date":       model.EndDate,
			"location":       model.Location,
			"status":         model.Status,
			"featured_image": model.FeaturedImage,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return adminapp.ErrNotFound
		}
		return r.replaceAssociations(tx, &models.EventModel{ID: event.ID}, categoryIDs, tagIDs)
	})
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.EventModel{ID: id}
		if err := tx.Model(model).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(model).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.EventModel{}, "id = ?", id).Error
	})
}

// FindPublished は公開済みイベントのみを開催日順に返す。
func (r *EventRepository) FindPublished(ctx context.Context, filter publicapp.EventFilter, paging publicapp.Paging) ([]admindomain.Event, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EventModel{}).
		Where("status = ?", string(admindomain.EventPublished))

	if filter.CategorySlug != "" {
		query = query.Where("id IN (SELECT event_model_id FROM event_categories WHERE category_model_id IN (SELECT id FROM categories WHERE slug = ?))", filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		query = query.Where("id IN (SELECT event_model_id FROM event_tags WHERE tag_model_id IN (SELECT id FROM tags WHERE slug = ?))", filter.TagSlug)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Upcoming {
		query = query.Where("start_date >= ?", time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := 0
	if paging.Page > 1 {
		offset = (paging.Page - 1) * paging.Limit
	}

	var rows []models.EventModel
	err := query.
		Preload("Author").Preload("Categories").Preload("Tags").
		Order("start_date ASC").
		Offset(offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	events := make([]admindomain.Event, 0, len(rows))
	for i := range rows {
		events = append(events, *eventToDomain(&rows[i]))
	}
	return events, total, nil
}

func (r *EventRepository) FindPublishedBySlug(ctx context.Context, slug string) (*admindomain.Event, error) {
	var model models.EventModel
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Categories").Preload("Tags").
		Where("slug = ? AND status = ?", slug, string(admindomain.EventPublished)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return eventToDomain(&model), nil
}

func (r *EventRepository) replaceAssociations(tx *gorm.DB, model *models.EventModel, categoryIDs, tagIDs []string) error {
	categories := make([]models.CategoryModel, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, models.CategoryModel{ID: id})
	}
	if err := tx.Model(model).Association("Categories").Replace(categories); err != nil {
		return err
	}
	tags := make([]models.TagModel, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, models.TagModel{ID: id})
	}
	return tx.Model(model).Association("Tags").Replace(tags)
}

func eventToModel(e *admindomain.Event) *models.EventModel {
	return &models.EventModel{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Location:      e.Location,
		Status:        string(e.Status),
		FeaturedImage: e.FeaturedImage,
		AuthorID:      e.Author.ID,
	}
}

func eventToDomain(m *models.EventModel) *admindomain.Event {
	event := &admindomain.Event{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Description:   m.Description,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Location:      m.Location,
		Status:        admindomain.EventStatus(m.Status),
		FeaturedImage: m.FeaturedImage,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Author != nil {
		event.Author = userToDomain(m.Author)
	} else {
		event.Author = admindomain.User{ID: m.AuthorID}
	}
	event.Categories = make([]admindomain.Category, 0, len(m.Categories))
	for i := range m.Categories {
		event.Categories = append(event.Categories, categoryToDomain(&m.Categories[i]))
	}
	event.Tags = make([]admindomain.Tag, 0, len(m.Tags))
	for i := range m.Tags {
		event.Tags = append(event.Tags, tagToDomain(&m.Tags[i]))
	}
	return event
}
