package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) settingsGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := h.settingsService.Get(ctx)
		if err != nil {
			h.writeServerError(w, "サイト設定の取得に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, settingsDomainToResponse(settings))
	}
}

// settingsUpdateHandler はフォーム送信を復号・検証し、単一行へアップサートする。
// 検証失敗時は書き込みを行わず、全フィールドのエラーを返す。
func (h *Handler) settingsUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := parseFormValues(r)
		if err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		cmd, errs := form.DecodeSiteSettings(values)
		if errs.HasErrors() {
			if h.metrics != nil {
				h.metrics.RecordValidationFailure("site_settings")
			}
			h.writeValidationError(w, errs)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := h.settingsService.Update(ctx, cmd)
		if err != nil {
			if h.metrics != nil {
				h.metrics.RecordSettingsUpdate("site_settings", "error")
			}
			h.writeServerError(w, "サイト設定の更新に失敗しました", err)
			return
		}
		if h.metrics != nil {
			h.metrics.RecordSettingsUpdate("site_settings", "ok")
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "サイト設定を更新しました",
			"data":    settingsDomainToResponse(*settings),
		})
	}
}

func (h *Handler) settingValuesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := h.settingsService.AllValues(ctx)
		if err != nil {
			h.writeServerError(w, "設定値一覧の取得に失敗しました", err)
			return
		}

		items := make([]settingEntryResponse, 0, len(entries))
		for _, entry := range entries {
			items = append(items, settingEntryResponse{Key: entry.Key, Value: entry.Value})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) settingValueGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(chi.URLParam(r, "key"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		value, known, err := h.settingsService.GetValue(ctx, key)
		if err != nil {
			h.writeServerError(w, "設定値の取得に失敗しました", err)
			return
		}
		if !known {
			h.writeNotFound(w, "指定された設定キーは存在しません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, settingEntryResponse{Key: key, Value: value})
	}
}

// settingValueDeleteHandler はキーの値を空に戻す。値は列として保持しているため、
// 行削除ではなくクリア(必須列は既定値へ戻る)として扱う。
func (h *Handler) settingValueDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(chi.URLParam(r, "key"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		known, err := h.settingsService.SetValue(ctx, key, "")
		if err != nil {
			h.writeServerError(w, "設定値の削除に失敗しました", err)
			return
		}
		if !known {
			h.writeNotFound(w, "指定された設定キーは存在しません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "設定値を削除しました",
		})
	}
}

func (h *Handler) settingValueSetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(chi.URLParam(r, "key"))

		var req settingValueRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		known, err := h.settingsService.SetValue(ctx, key, req.Value)
		if err != nil {
			h.writeServerError(w, "設定値の更新に失敗しました", err)
			return
		}
		if !known {
			h.writeNotFound(w, "指定された設定キーは存在しません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "設定値を更新しました",
		})
	}
}
