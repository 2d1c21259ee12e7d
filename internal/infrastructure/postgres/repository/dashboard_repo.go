package repository

import (
	"context"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DashboardRepository は管理トップの集計値を引く。
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Counts(ctx context.Context) (adminapp.DashboardCounts, error) {
	var counts adminapp.DashboardCounts

	tally := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&counts.Posts, r.db.WithContext(ctx).Model(&models.PostModel{})},
		{&counts.PublishedPosts, r.db.WithContext(ctx).Model(&models.PostModel{}).Where("status = ?", string(admindomain.PostPublished))},
		{&counts.Events, r.db.WithContext(ctx).Model(&models.EventModel{})},
		{&counts.UpcomingEvents, r.db.WithContext(ctx).Model(&models.EventModel{}).Where("start_date >= ?", time.Now())},
		{&counts.PendingComments, r.db.WithContext(ctx).Model(&models.CommentModel{}).Where("is_approved = ?", false)},
		{&counts.Media, r.db.WithContext(ctx).Model(&models.MediaModel{})},
		{&counts.Users, r.db.WithContext(ctx).Model(&models.UserModel{})},
	}
	for _, t := range tally {
		if err := t.query.Count(t.dest).Error; err != nil {
			return adminapp.DashboardCounts{}, err
		}
	}
	return counts, nil
}
