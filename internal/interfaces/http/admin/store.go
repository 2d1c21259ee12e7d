package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
)

func (h *Handler) storeGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		info, err := h.storeService.Get(ctx)
		if err != nil {
			h.writeServerError(w, "店舗情報の取得に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, storeDomainToResponse(info))
	}
}

// storeUpdateHandler は店舗フォームを復号・検証し、店舗・住所・営業時間を
// 1トランザクションでアップサートする。営業時間は差分更新ではなく全置換。
func (h *Handler) storeUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := parseFormValues(r)
		if err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		cmd, errs := form.DecodeStoreInfo(values)
		if errs.HasErrors() {
			if h.metrics != nil {
				h.metrics.RecordValidationFailure("store_info")
			}
			h.writeValidationError(w, errs)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		info, err := h.storeService.Update(ctx, cmd)
		if err != nil {
			if h.metrics != nil {
				h.metrics.RecordSettingsUpdate("store_info", "error")
			}
			h.writeServerError(w, "店舗情報の更新に失敗しました", err)
			return
		}
		if h.metrics != nil {
			h.metrics.RecordSettingsUpdate("store_info", "ok")
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "店舗情報を更新しました",
			"data":    storeDomainToResponse(*info),
		})
	}
}
