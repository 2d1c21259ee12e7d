package form

import (
	"net/url"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// DecodeSiteSettings はサイト設定フォームを復号・検証する。
// 違反はフィールドパスをキーに全件集め、最初の失敗で打ち切らない。
func DecodeSiteSettings(raw url.Values) (adminapp.UpdateSiteSettingsCommand, FieldErrors) {
	values := NewValues(raw)
	errs := make(FieldErrors)

	cmd := adminapp.UpdateSiteSettingsCommand{
		SiteName:        values.Trimmed("siteName"),
		SiteDescription: values.Trimmed("siteDescription"),
		LogoURL:         values.Trimmed("logoUrl"),
		FaviconURL:      values.Trimmed("faviconUrl"),

		MetaTitle:         values.Trimmed("metaTitle"),
		MetaDescription:   values.Trimmed("metaDescription"),
		OGImageURL:        values.Trimmed("ogImageUrl"),
		GoogleAnalyticsID: values.Trimmed("googleAnalyticsId"),

		SocialMedia: admindomain.SocialMediaLinks{
			Twitter:   values.Trimmed("socialMedia.twitter"),
			Facebook:  values.Trimmed("socialMedia.facebook"),
			Instagram: values.Trimmed("socialMedia.instagram"),
			YouTube:   values.Trimmed("socialMedia.youtube"),
			Line:      values.Trimmed("socialMedia.line"),
		},
		Notifications: admindomain.NotificationSettings{
			AdminEmail:                  values.Trimmed("notifications.adminEmail"),
			SendCommentNotification:     values.Checkbox("notifications.sendCommentNotification"),
			SendContactFormNotification: values.Checkbox("notifications.sendContactFormNotification"),
		},
		Display: admindomain.DisplaySettings{
			PostsPerPage:   values.Int("display.postsPerPage", admindomain.DefaultPostsPerPage),
			ShowAuthorInfo: values.Checkbox("display.showAuthorInfo"),
			EnableComments: values.Checkbox("display.enableComments"),
			PrimaryColor:   values.Trimmed("display.primaryColor"),
			SecondaryColor: values.Trimmed("display.secondaryColor"),
		},
	}

	requireText(errs, "siteName", cmd.SiteName, "サイト名は必須です")
	checkMaxRunes(errs, "metaDescription", cmd.MetaDescription, 160, "メタディスクリプションは160文字以内にしてください")

	checkOptionalURL(errs, "socialMedia.twitter", cmd.SocialMedia.Twitter)
	checkOptionalURL(errs, "socialMedia.facebook", cmd.SocialMedia.Facebook)
	checkOptionalURL(errs, "socialMedia.instagram", cmd.SocialMedia.Instagram)
	checkOptionalURL(errs, "socialMedia.youtube", cmd.SocialMedia.YouTube)
	checkOptionalURL(errs, "socialMedia.line", cmd.SocialMedia.Line)

	checkEmail(errs, "notifications.adminEmail", cmd.Notifications.AdminEmail)

	checkPositive(errs, "display.postsPerPage", cmd.Display.PostsPerPage, "1以上の値を入力してください")
	checkOptionalHexColor(errs, "display.primaryColor", cmd.Display.PrimaryColor)
	checkOptionalHexColor(errs, "display.secondaryColor", cmd.Display.SecondaryColor)

	return cmd, errs
}
