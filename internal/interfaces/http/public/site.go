package public

import (
	"context"
	"net/http"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
)

// siteSettingsHandler は公開レイアウトが参照するサイト設定を返す。
// 管理メール等の非公開項目は含めない。
func (h *Handler) siteSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := h.siteQueries.Settings(ctx)
		if err != nil {
			h.writeServerError(w, "サイト設定の取得に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, settingsToResponse(settings))
	}
}

func (h *Handler) storeInfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		store, err := h.storeQueries.Info(ctx)
		if err != nil {
			h.writeServerError(w, "店舗情報の取得に失敗しました", err)
			return
		}

		res := storeToResponse(store)
		res.Today, res.IsOpenNow = h.openNow(store.BusinessHours)
		common.WriteJSON(h.logger, w, http.StatusOK, res)
	}
}

var weekdayLabels = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// openNow はサイトのタイムゾーンにおける現在の曜日と営業中かどうかを返す。
func (h *Handler) openNow(hours []admindomain.BusinessHour) (string, bool) {
	now := time.Now()
	if h.location != nil {
		now = now.In(h.location)
	}
	day := weekdayLabels[int(now.Weekday())]
	hhmm := now.Format("15:04")
	for _, hour := range hours {
		if hour.Day != day {
			continue
		}
		if !hour.IsOpen || hour.OpenTime == "" || hour.CloseTime == "" {
			return day, false
		}
		return day, hour.OpenTime <= hhmm && hhmm < hour.CloseTime
	}
	return day, false
}
