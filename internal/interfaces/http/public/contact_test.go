package public

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
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSiteQueries は通知設定を固定値で返す。通知は既定で無効にしておく。
type stubSiteQueries struct {
	settings admindomain.SiteSettings
}

func (s *stubSiteQueries) Settings(ctx context.Context) (admindomain.SiteSettings, error) {
	return s.settings, nil
}

type stubContactCommands struct {
	submitted []publicapp.SubmitContactCommand
	err       error
}

func (s *stubContactCommands) Submit(ctx context.Context, cmd publicapp.SubmitContactCommand) (*admindomain.ContactInquiry, error) {
	s.submitted = append(s.submitted, cmd)
	if s.err != nil {
		return nil, s.err
	}
	return &admindomain.ContactInquiry{
		ID:          "inq-1",
		Name:        cmd.Name,
		Email:       cmd.Email,
		Subject:     cmd.Subject,
		Message:     cmd.Message,
		InquiryType: cmd.InquiryType,
		CreatedAt:   time.Now(),
	}, nil
}

func silentSiteQueries() *stubSiteQueries {
	settings := admindomain.DefaultSiteSettings()
	settings.Notifications.SendContactFormNotification = false
	settings.Notifications.SendCommentNotification = false
	return &stubSiteQueries{settings: settings}
}

func postFormRequest(handler http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func contactForm() url.Values {
	form := url.Values{}
	form.Set("name", "山田 太郎")
	form.Set("email", "taro@example.com")
	form.Set("subject", "予約について")
	form.Set("message", "10名での貸切は可能でしょうか。")
	form.Set("inquiryType", "reservation")
	return form
}

func TestContactSubmitHandlerSuccess(t *testing.T) {
	contacts := &stubContactCommands{}
	h := NewHandler(Config{
		Logger:          log.New(io.Discard, "", 0),
		SiteQueries:     silentSiteQueries(),
		ContactCommands: contacts,
	})

	rec := postFormRequest(h.contactSubmitHandler(), "/contact", contactForm())

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, contacts.submitted, 1)
	assert.Equal(t, "reservation", contacts.submitted[0].InquiryType)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "お問い合わせを受け付けました。担当者より折り返しご連絡いたします。", body.Message)
	assert.Equal(t, "inq-1", body.Data.ID)
}

func TestContactSubmitHandlerCollectsAllErrors(t *testing.T) {
	contacts := &stubContactCommands{}
	h := NewHandler(Config{
		Logger:          log.New(io.Discard, "", 0),
		SiteQueries:     silentSiteQueries(),
		ContactCommands: contacts,
	})

	form := url.Values{}
	form.Set("email", "not-an-email")
	form.Set("inquiryType", "default")

	rec := postFormRequest(h.contactSubmitHandler(), "/contact", form)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, contacts.submitted)

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "subject")
	assert.Contains(t, body.Errors, "message")
	assert.Contains(t, body.Errors, "inquiryType")
	assert.Contains(t, body.Errors["name"], "お名前を入力してください")
	assert.Contains(t, body.Errors["email"], "有効なメールアドレスを入力してください")
	assert.Contains(t, body.Errors["inquiryType"], "お問い合わせの種類を選択してください")
}

func TestContactSubmitHandlerServiceError(t *testing.T) {
	contacts := &stubContactCommands{err: assert.AnError}
	h := NewHandler(Config{
		Logger:          log.New(io.Discard, "", 0),
		SiteQueries:     silentSiteQueries(),
		ContactCommands: contacts,
	})

	rec := postFormRequest(h.contactSubmitHandler(), "/contact", contactForm())

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "お問い合わせの送信に失敗しました", body.Message)
}
