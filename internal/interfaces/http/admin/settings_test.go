package admin

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSettingsService は Update の呼び出し内容を記録する。
type stubSettingsService struct {
	updated   []adminapp.UpdateSiteSettingsCommand
	setValues map[string]string
	settings  admindomain.SiteSettings
	updateErr error
}

func (s *stubSettingsService) Get(ctx context.Context) (admindomain.SiteSettings, error) {
	return s.settings, nil
}

func (s *stubSettingsService) Update(ctx context.Context, cmd adminapp.UpdateSiteSettingsCommand) (*admindomain.SiteSettings, error) {
	s.updated = append(s.updated, cmd)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	result := s.settings
	result.SiteName = cmd.SiteName
	return &result, nil
}

func (s *stubSettingsService) SetValue(ctx context.Context, key, value string) (bool, error) {
	if s.setValues == nil {
		s.setValues = map[string]string{}
	}
	s.setValues[key] = value
	return key != "unknown_key", nil
}

func (s *stubSettingsService) GetValue(ctx context.Context, key string) (string, bool, error) {
	if key == "unknown_key" {
		return "", false, nil
	}
	return s.settings.SiteName, true, nil
}

func (s *stubSettingsService) AllValues(ctx context.Context) ([]adminapp.SettingEntry, error) {
	return nil, nil
}

func newSettingsTestHandler(service adminapp.SettingsService) *Handler {
	return NewHandler(Config{
		Logger:          log.New(io.Discard, "", 0),
		SettingsService: service,
	})
}

func settingsUpdateForm() url.Values {
	form := url.Values{}
	form.Set("siteName", "季節の食卓")
	form.Set("siteDescription", "旬の食材を届けるメディア")
	form.Set("notifications.adminEmail", "owner@example.com")
	form.Set("notifications.sendCommentNotification", "on")
	form.Set("display.postsPerPage", "12")
	form.Set("display.showAuthorInfo", "on")
	form.Set("display.enableComments", "on")
	form.Set("display.primaryColor", "#3b82f6")
	return form
}

func putSettings(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSettingsUpdateHandlerSuccess(t *testing.T) {
	service := &stubSettingsService{settings: admindomain.DefaultSiteSettings()}
	h := newSettingsTestHandler(service)

	rec := putSettings(h.settingsUpdateHandler(), settingsUpdateForm())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, service.updated, 1)

	cmd := service.updated[0]
	assert.Equal(t, "季節の食卓", cmd.SiteName)
	assert.Equal(t, "owner@example.com", cmd.Notifications.AdminEmail)
	assert.True(t, cmd.Notifications.SendCommentNotification)
	assert.False(t, cmd.Notifications.SendContactFormNotification)
	assert.Equal(t, 12, cmd.Display.PostsPerPage)
	assert.Equal(t, "#3b82f6", cmd.Display.PrimaryColor)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "サイト設定を更新しました", body.Message)
}

func TestSettingsUpdateHandlerValidationShortCircuits(t *testing.T) {
	service := &stubSettingsService{settings: admindomain.DefaultSiteSettings()}
	h := newSettingsTestHandler(service)

	form := settingsUpdateForm()
	form.Set("siteName", "  ")
	form.Set("notifications.adminEmail", "not-an-email")

	rec := putSettings(h.settingsUpdateHandler(), form)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.updated)

	var body struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "入力内容に誤りがあります", body.Message)
	assert.Contains(t, body.Errors, "siteName")
	assert.Contains(t, body.Errors, "notifications.adminEmail")
}

func TestSettingsUpdateHandlerServiceError(t *testing.T) {
	service := &stubSettingsService{
		settings:  admindomain.DefaultSiteSettings(),
		updateErr: assert.AnError,
	}
	h := newSettingsTestHandler(service)

	rec := putSettings(h.settingsUpdateHandler(), settingsUpdateForm())

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "サイト設定の更新に失敗しました", body.Message)
}

func deleteSettingValue(service adminapp.SettingsService, key string) *httptest.ResponseRecorder {
	h := newSettingsTestHandler(service)
	r := chi.NewRouter()
	r.Delete("/settings/values/{key}", h.settingValueDeleteHandler())

	req := httptest.NewRequest(http.MethodDelete, "/settings/values/"+key, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSettingValueDeleteHandlerClearsValue(t *testing.T) {
	service := &stubSettingsService{settings: admindomain.DefaultSiteSettings()}

	rec := deleteSettingValue(service, "site_description")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "設定値を削除しました", body.Message)
	require.Contains(t, service.setValues, "site_description")
	assert.Equal(t, "", service.setValues["site_description"])
}

func TestSettingValueDeleteHandlerUnknownKey(t *testing.T) {
	service := &stubSettingsService{settings: admindomain.DefaultSiteSettings()}

	rec := deleteSettingValue(service, "unknown_key")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "指定された設定キーは存在しません", body.Message)
}

func getSettingValue(service adminapp.SettingsService, key string) *httptest.ResponseRecorder {
	h := newSettingsTestHandler(service)
	r := chi.NewRouter()
	r.Get("/settings/values/{key}", h.settingValueGetHandler())

	req := httptest.NewRequest(http.MethodGet, "/settings/values/"+key, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSettingValueGetHandlerReturnsValue(t *testing.T) {
	settings := admindomain.DefaultSiteSettings()
	settings.SiteName = "カフェAのサイト"
	service := &stubSettingsService{settings: settings}

	rec := getSettingValue(service, "site_name")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "site_name", body.Key)
	assert.Equal(t, "カフェAのサイト", body.Value)
}

func TestSettingValueGetHandlerUnknownKey(t *testing.T) {
	service := &stubSettingsService{settings: admindomain.DefaultSiteSettings()}

	rec := getSettingValue(service, "unknown_key")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "指定された設定キーは存在しません", body.Message)
}
