package models

import "time"

// SiteSettingsModel はサイト設定のシングルトン行。主キーは固定値 "1"。
type SiteSettingsModel struct {
	ID              string `gorm:"primaryKey"`
	SiteName        string `gorm:"not null"`
	SiteDescription string
	LogoURL         string
	FaviconURL      string

	MetaTitle         string
	MetaDescription   string
	OGImageURL        string `gorm:"column:og_image_url"`
	GoogleAnalyticsID string

	TwitterURL   string
	FacebookURL  string
	InstagramURL string
	YoutubeURL   string
	LineURL      string

	AdminEmail                  string `gorm:"not null"`
	SendCommentNotification     bool   `gorm:"default:true"`
	SendContactFormNotification bool   `gorm:"default:true"`

	PostsPerPage   int  `gorm:"default:10"`
	ShowAuthorInfo bool `gorm:"default:true"`
	EnableComments bool `gorm:"default:true"`
	PrimaryColor   string
	SecondaryColor string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteSettingsModel) TableName() string {
	return "site_settings"
}
