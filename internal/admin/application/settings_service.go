package application

import (
	"context"
	"strconv"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// settingKeyFields はキー/バリュー設定 API のキーを SiteSettings のフィールドへ対応付ける。
// 旧システムの snake_case キーをそのまま引き継いでいる。
var settingKeyFields = map[string]struct {
	get func(s *admindomain.SiteSettings) string
	set func(s *admindomain.SiteSettings, v string)
}{
	"site_name": {
		get: func(s *admindomain.SiteSettings) string { return s.SiteName },
		set: func(s *admindomain.SiteSettings, v string) { s.SiteName = v },
	},
	"site_description": {
		get: func(s *admindomain.SiteSettings) string { return s.SiteDescription },
		set: func(s *admindomain.SiteSettings, v string) { s.SiteDescription = v },
	},
	"logo_url": {
		get: func(s *admindomain.SiteSettings) string { return s.LogoURL },
		set: func(s *admindomain.SiteSettings, v string) { s.LogoURL = v },
	},
	"favicon_url": {
		get: func(s *admindomain.SiteSettings) string { return s.FaviconURL },
		set: func(s *admindomain.SiteSettings, v string) { s.FaviconURL = v },
	},
	"meta_title": {
		get: func(s *admindomain.SiteSettings) string { return s.MetaTitle },
		set: func(s *admindomain.SiteSettings, v string) { s.MetaTitle = v },
	},
	"meta_description": {
		get: func(s *admindomain.SiteSettings) string { return s.MetaDescription },
		set: func(s *admindomain.SiteSettings, v string) { s.MetaDescription = v },
	},
	"og_image_url": {
		get: func(s *admindomain.SiteSettings) string { return s.OGImageURL },
		set: func(s *admindomain.SiteSettings, v string) { s.OGImageURL = v },
	},
	"google_analytics_id": {
		get: func(s *admindomain.SiteSettings) string { return s.GoogleAnalyticsID },
		set: func(s *admindomain.SiteSettings, v string) { s.GoogleAnalyticsID = v },
	},
	"twitter_url": {
		get: func(s *admindomain.SiteSettings) string { return s.SocialMedia.Twitter },
		set: func(s *admindomain.SiteSettings, v string) { s.SocialMedia.Twitter = v },
	},
	"facebook_url": {
		get: func(s *admindomain.SiteSettings) string { return s.SocialMedia.Facebook },
		set: func(s *admindomain.SiteSettings, v string) { s.SocialMedia.Facebook = v },
	},
	"instagram_url": {
		get: func(s *admindomain.SiteSettings) string { return s.SocialMedia.Instagram },
		set: func(s *admindomain.SiteSettings, v string) { s.SocialMedia.Instagram = v },
	},
	"youtube_url": {
		get: func(s *admindomain.SiteSettings) string { return s.SocialMedia.YouTube },
		set: func(s *admindomain.SiteSettings, v string) { s.SocialMedia.YouTube = v },
	},
	"line_url": {
		get: func(s *admindomain.SiteSettings) string { return s.SocialMedia.Line },
		set: func(s *admindomain.SiteSettings, v string) { s.SocialMedia.Line = v },
	},
	"admin_email": {
		get: func(s *admindomain.SiteSettings) string { return s.Notifications.AdminEmail },
		set: func(s *admindomain.SiteSettings, v string) { s.Notifications.AdminEmail = v },
	},
	"posts_per_page": {
		get: func(s *admindomain.SiteSettings) string { return strconv.Itoa(s.Display.PostsPerPage) },
		set: func(s *admindomain.SiteSettings, v string) {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				s.Display.PostsPerPage = n
			}
		},
	},
	"primary_color": {
		get: func(s *admindomain.SiteSettings) string { return s.Display.PrimaryColor },
		set: func(s *admindomain.SiteSettings, v string) { s.Display.PrimaryColor = v },
	},
	"secondary_color": {
		get: func(s *admindomain.SiteSettings) string { return s.Display.SecondaryColor },
		set: func(s *admindomain.SiteSettings, v string) { s.Display.SecondaryColor = v },
	},
}

// settingKeyOrder は AllValues の出力順。マップ走査順に依存しないよう固定する。
var settingKeyOrder = []string{
	"site_name", "site_description", "logo_url", "favicon_url",
	"meta_title", "meta_description", "og_image_url", "google_analytics_id",
	"twitter_url", "facebook_url", "instagram_url", "youtube_url", "line_url",
	"admin_email", "posts_per_page", "primary_color", "secondary_color",
}

// settingsService implements SettingsService.
type settingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get は保存済み設定を返す。未作成の場合は既定値一式を返し、呼び出し側に nil を渡さない。
func (s *settingsService) Get(ctx context.Context) (admindomain.SiteSettings, error) {
	settings, err := s.repo.Find(ctx)
	if err != nil {
		return admindomain.SiteSettings{}, err
	}
	if settings == nil {
		return admindomain.DefaultSiteSettings(), nil
	}
	return *settings, nil
}

// Update は検証済みコマンドをシングルトン行へ upsert する。
// 新規作成時は NOT NULL 制約を満たすための既定値を補う。
func (s *settingsService) Update(ctx context.Context, cmd UpdateSiteSettingsCommand) (*admindomain.SiteSettings, error) {
	existing, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}

	settings := admindomain.SiteSettings{
		ID:                admindomain.SiteSettingsID,
		SiteName:          cmd.SiteName,
		SiteDescription:   cmd.SiteDescription,
		LogoURL:           cmd.LogoURL,
		FaviconURL:        cmd.FaviconURL,
		MetaTitle:         cmd.MetaTitle,
		MetaDescription:   cmd.MetaDescription,
		OGImageURL:        cmd.OGImageURL,
		GoogleAnalyticsID: cmd.GoogleAnalyticsID,
		SocialMedia:       cmd.SocialMedia,
		Notifications:     cmd.Notifications,
		Display:           cmd.Display,
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	}
	applySettingsDefaults(&settings)

	if err := s.repo.Save(ctx, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetValue はキー/バリュー API からの単一フィールド更新。未知のキーは無視し false を返す。
func (s *settingsService) SetValue(ctx context.Context, key, value string) (bool, error) {
	field, ok := settingKeyFields[key]
	if !ok {
		return false, nil
	}

	existing, err := s.repo.Find(ctx)
	if err != nil {
		return false, err
	}

	var settings admindomain.SiteSettings
	if existing != nil {
		settings = *existing
	} else {
		settings = admindomain.DefaultSiteSettings()
		settings.ID = admindomain.SiteSettingsID
	}
	field.set(&settings, value)
	applySettingsDefaults(&settings)

	if err := s.repo.Save(ctx, &settings); err != nil {
		return false, err
	}
	return true, nil
}

// GetValue は単一フィールドの現在値を返す。未知のキーは false を返す。
func (s *settingsService) GetValue(ctx context.Context, key string) (string, bool, error) {
	field, ok := settingKeyFields[key]
	if !ok {
		return "", false, nil
	}
	settings, err := s.Get(ctx)
	if err != nil {
		return "", false, err
	}
	return field.get(&settings), true, nil
}

func (s *settingsService) AllValues(ctx context.Context) ([]SettingEntry, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]SettingEntry, 0, len(settingKeyOrder))
	for _, key := range settingKeyOrder {
		value := settingKeyFields[key].get(&settings)
		if value == "" {
			continue
		}
		entries = append(entries, SettingEntry{Key: key, Value: value})
	}
	return entries, nil
}

// applySettingsDefaults は NOT NULL 列の空値を既定値で埋める。
// 作成時・更新時のどちらでも同一に適用される仕様。
func applySettingsDefaults(settings *admindomain.SiteSettings) {
	if settings.SiteName == "" {
		settings.SiteName = admindomain.DefaultSiteName
	}
	if settings.Notifications.AdminEmail == "" {
		settings.Notifications.AdminEmail = admindomain.DefaultAdminEmail
	}
	if settings.Display.PostsPerPage <= 0 {
		settings.Display.PostsPerPage = admindomain.DefaultPostsPerPage
	}
}
