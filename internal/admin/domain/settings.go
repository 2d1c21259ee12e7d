package domain

import "time"

// SiteSettingsID はサイト設定の固定主キー。設定テーブルは常にこの1行のみを保持する。
const SiteSettingsID = "1"

// 設定行が存在しない場合に利用されるデフォルト値。
const (
	DefaultSiteName        = "飲食店舗 Web メディアサイト"
	DefaultSiteDescription = "飲食店舗の広報活動と情報発信のためのWebメディア"
	DefaultAdminEmail      = "admin@example.com"
	DefaultPostsPerPage    = 10
	DefaultPrimaryColor    = "#3b82f6"
	DefaultSecondaryColor  = "#10b981"
)

// SiteSettings aggregates every site-wide setting group.
type SiteSettings struct {
	ID              string
	SiteName        string
	SiteDescription string
	LogoURL         string
	FaviconURL      string

	MetaTitle         string
	MetaDescription   string
	OGImageURL        string
	GoogleAnalyticsID string

	SocialMedia   SocialMediaLinks
	Notifications NotificationSettings
	Display       DisplaySettings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SocialMediaLinks mirrors the structured SNS URLs.
type SocialMediaLinks struct {
	Twitter   string
	Facebook  string
	Instagram string
	YouTube   string
	Line      string
}

// NotificationSettings controls admin mail notifications.
type NotificationSettings struct {
	AdminEmail                  string
	SendCommentNotification     bool
	SendContactFormNotification bool
}

// DisplaySettings controls public rendering preferences.
type DisplaySettings struct {
	PostsPerPage   int
	ShowAuthorInfo bool
	EnableComments bool
	PrimaryColor   string
	SecondaryColor string
}

// DefaultSiteSettings は設定行が未作成の場合に返す既定値一式。
// 呼び出し側が nil チェックを持たずに済むよう全フィールドを埋める。
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:              "",
		SiteName:        DefaultSiteName,
		SiteDescription: "",
		Notifications: NotificationSettings{
			AdminEmail:                  DefaultAdminEmail,
			SendCommentNotification:     true,
			SendContactFormNotification: true,
		},
		Display: DisplaySettings{
			PostsPerPage:   DefaultPostsPerPage,
			ShowAuthorInfo: true,
			EnableComments: true,
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
		},
	}
}
