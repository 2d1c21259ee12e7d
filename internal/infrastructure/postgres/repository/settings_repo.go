package repository

import (
	"context"
	"errors"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// SettingsRepository は site_settings シングルトン行を扱う。
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Find は設定行を返す。行が無ければ (nil, nil)。
// 固定主キー運用へ移行済みだが、読み取りは移行前データも拾えるよう先頭1行で行う。
func (r *SettingsRepository) Find(ctx context.Context) (*admindomain.SiteSettings, error) {
	var model models.SiteSettingsModel
	err := r.db.WithContext(ctx).Order("id").First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settingsToDomain(&model), nil
}

// Save は設定を upsert する。ID は呼び出し側が固定値を詰めてくる。
func (r *SettingsRepository) Save(ctx context.Context, settings *admindomain.SiteSettings) error {
	model := settingsToModel(settings)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	settings.CreatedAt = model.CreatedAt
	settings.UpdatedAt = model.UpdatedAt
	return nil
}

func settingsToModel(s *admindomain.SiteSettings) *models.SiteSettingsModel {
	id := s.ID
	if id == "" {
		id = admindomain.SiteSettingsID
	}
	return &models.SiteSettingsModel{
		ID:                          id,
		SiteName:                    s.SiteName,
		SiteDescription:             s.SiteDescription,
		LogoURL:                     s.LogoURL,
		FaviconURL:                  s.FaviconURL,
		MetaTitle:                   s.MetaTitle,
		MetaDescription:             s.MetaDescription,
		OGImageURL:                  s.OGImageURL,
		GoogleAnalyticsID:           s.GoogleAnalyticsID,
		TwitterURL:                  s.SocialMedia.Twitter,
		FacebookURL:                 s.SocialMedia.Facebook,
		InstagramURL:                s.SocialMedia.Instagram,
		YoutubeURL:                  s.SocialMedia.YouTube,
		LineURL:                     s.SocialMedia.Line,
		AdminEmail:                  s.Notifications.AdminEmail,
		SendCommentNotification:     s.Notifications.SendCommentNotification,
		SendContactFormNotification: s.Notifications.SendContactFormNotification,
		PostsPerPage:                s.Display.PostsPerPage,
		ShowAuthorInfo:              s.Display.ShowAuthorInfo,
		EnableComments:              s.Display.EnableComments,
		PrimaryColor:                s.Display.PrimaryColor,
		SecondaryColor:              s.Display.SecondaryColor,
		CreatedAt:                   s.CreatedAt,
	}
}

// settingsToDomain はフラットな列名を公開用のネスト構造へ組み替える。
func settingsToDomain(m *models.SiteSettingsModel) *admindomain.SiteSettings {
	return &admindomain.SiteSettings{
		ID:                m.ID,
		SiteName:          m.SiteName,
		SiteDescription:   m.SiteDescription,
		LogoURL:           m.LogoURL,
		FaviconURL:        m.FaviconURL,
		MetaTitle:         m.MetaTitle,
		MetaDescription:   m.MetaDescription,
		OGImageURL:        m.OGImageURL,
		GoogleAnalyticsID: m.GoogleAnalyticsID,
		SocialMedia: admindomain.SocialMediaLinks{
			Twitter:   m.TwitterURL,
			Facebook:  m.FacebookURL,
			Instagram: m.InstagramURL,
			YouTube:   m.YoutubeURL,
			Line:      m.LineURL,
		},
		Notifications: admindomain.NotificationSettings{
			AdminEmail:                  m.AdminEmail,
			SendCommentNotification:     m.SendCommentNotification,
			SendContactFormNotification: m.SendContactFormNotification,
		},
		Display: admindomain.DisplaySettings{
			PostsPerPage:   m.PostsPerPage,
			ShowAuthorInfo: m.ShowAuthorInfo,
			EnableComments: m.EnableComments,
			PrimaryColor:   m.PrimaryColor,
			SecondaryColor: m.SecondaryColor,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
