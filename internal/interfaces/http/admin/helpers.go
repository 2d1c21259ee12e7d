package admin

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
)

// decodeJSONBody limits and decodes a JSON request body.
func (h *Handler) decodeJSONBody(r *http.Request, dest any) error {
	return json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody)).Decode(dest)
}

// parseFormValues は設定/店舗フォームの送信値を取り出す。
// multipart と urlencoded の双方を受ける。
func parseFormValues(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(common.MaxFormRequestBody); err != nil {
			return nil, err
		}
		return r.Form, nil
	}
	r.Body = http.MaxBytesReader(nil, r.Body, common.MaxFormRequestBody)
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.Form, nil
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": message,
	})
}

func (h *Handler) writeNotFound(w http.ResponseWriter, message string) {
	common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]any{
		"success": false,
		"message": message,
	})
}

// writeValidationError は全フィールドの違反を一括で返す。
func (h *Handler) writeValidationError(w http.ResponseWriter, errs form.FieldErrors) {
	common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "入力内容に誤りがあります",
		"errors":  errs,
	})
}

// writeServerError は詳細をログにのみ残し、呼び出し側には汎用メッセージを返す。
func (h *Handler) writeServerError(w http.ResponseWriter, message string, err error) {
	h.logger.Printf("%s: %v", message, err)
	common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"message": message,
	})
}

func parsePaging(r *http.Request) adminapp.Paging {
	query := r.URL.Query()
	page, _ := common.ParsePositiveInt(query.Get("page"), 1)
	limit, _ := common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)
	if limit > common.MaxPageLimit {
		limit = common.MaxPageLimit
	}
	return adminapp.Paging{Page: page, Limit: limit}
}

// parseOptionalTime は空文字を nil として扱う RFC3339 パース。
func parseOptionalTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
