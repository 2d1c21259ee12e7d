package form

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettingsForm() url.Values {
	return url.Values{
		"siteName":                                  {"飲食店舗 Web メディアサイト"},
		"siteDescription":                           {"広報活動と情報発信のためのメディア"},
		"metaDescription":                           {"地域に根ざした飲食店の情報を発信します"},
		"socialMedia.twitter":                       {"https://twitter.com/example"},
		"socialMedia.line":                          {""},
		"notifications.adminEmail":                  {"admin@example.com"},
		"notifications.sendCommentNotification":     {"on"},
		"notifications.sendContactFormNotification": {"off"},
		"display.postsPerPage":                      {"12"},
		"display.showAuthorInfo":                    {"on"},
		"display.enableComments":                    {"on"},
		"display.primaryColor":                      {"#3b82f6"},
		"display.secondaryColor":                    {"#fff"},
	}
}

func TestDecodeSiteSettingsValid(t *testing.T) {
	cmd, errs := DecodeSiteSettings(validSettingsForm())
	require.False(t, errs.HasErrors(), "errors: %v", errs)

	assert.Equal(t, "飲食店舗 Web メディアサイト", cmd.SiteName)
	assert.Equal(t, "https://twitter.com/example", cmd.SocialMedia.Twitter)
	assert.Equal(t, "admin@example.com", cmd.Notifications.AdminEmail)
	assert.True(t, cmd.Notifications.SendCommentNotification)
	assert.False(t, cmd.Notifications.SendContactFormNotification)
	assert.Equal(t, 12, cmd.Display.PostsPerPage)
	assert.Equal(t, "#3b82f6", cmd.Display.PrimaryColor)
	assert.Equal(t, "#fff", cmd.Display.SecondaryColor)
}

// 複数フィールドの違反は打ち切らず全件返す。
func TestDecodeSiteSettingsCollectsAllErrors(t *testing.T) {
	raw := validSettingsForm()
	raw.Set("siteName", "   ")
	raw.Set("notifications.adminEmail", "not-an-email")

	_, errs := DecodeSiteSettings(raw)
	require.True(t, errs.HasErrors())

	assert.Contains(t, errs["siteName"], "サイト名は必須です")
	assert.Contains(t, errs["notifications.adminEmail"], "有効なメールアドレスを入力してください")
	assert.Len(t, errs, 2)
}

func TestDecodeSiteSettingsMetaDescriptionLength(t *testing.T) {
	raw := validSettingsForm()
	raw.Set("metaDescription", strings.Repeat("あ", 161))

	_, errs := DecodeSiteSettings(raw)
	assert.Contains(t, errs["metaDescription"], "メタディスクリプションは160文字以内にしてください")

	// 160文字ちょうどは許容する。
	raw.Set("metaDescription", strings.Repeat("あ", 160))
	_, errs = DecodeSiteSettings(raw)
	assert.False(t, errs.HasErrors())
}

func TestDecodeSiteSettingsColors(t *testing.T) {
	cases := []struct {
		color string
		valid bool
	}{
		{"#3b82f6", true},
		{"#FFF", true},
		{"#fff", true},
		{"", true},
		{"fff", false},
		{"#ffff", false},
		{"#gggggg", false},
	}

	for _, tc := range cases {
		t.Run(tc.color, func(t *testing.T) {
			raw := validSettingsForm()
			raw.Set("display.primaryColor", tc.color)
			_, errs := DecodeSiteSettings(raw)
			if tc.valid {
				assert.NotContains(t, errs, "display.primaryColor")
			} else {
				assert.Contains(t, errs["display.primaryColor"], "有効なカラーコードを入力してください")
			}
		})
	}
}

func TestDecodeSiteSettingsSocialURL(t *testing.T) {
	raw := validSettingsForm()
	raw.Set("socialMedia.instagram", "not a url")

	_, errs := DecodeSiteSettings(raw)
	assert.Contains(t, errs["socialMedia.instagram"], "有効なURLを入力してください")
}

func TestDecodeSiteSettingsPostsPerPage(t *testing.T) {
	raw := validSettingsForm()
	raw.Set("display.postsPerPage", "0")

	_, errs := DecodeSiteSettings(raw)
	assert.Contains(t, errs["display.postsPerPage"], "1以上の値を入力してください")

	// 数値として読めない場合は既定値で補完され、検証は通る。
	raw.Set("display.postsPerPage", "abc")
	cmd, errs := DecodeSiteSettings(raw)
	assert.False(t, errs.HasErrors())
	assert.Equal(t, 10, cmd.Display.PostsPerPage)
}
