package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

func (h *Handler) eventListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := publicapp.EventFilter{
			CategorySlug: strings.TrimSpace(query.Get("category")),
			TagSlug:      strings.TrimSpace(query.Get("tag")),
			Keyword:      strings.TrimSpace(query.Get("q")),
			Upcoming:     query.Get("upcoming") == "true",
		}
		paging := h.parsePaging(r)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		events, total, err := h.eventQueries.List(ctx, filter, paging)
		if err != nil {
			h.writeServerError(w, "イベント一覧の取得に失敗しました", err)
			return
		}

		items := make([]eventSummaryResponse, 0, len(events))
		for _, event := range events {
			items = append(items, eventToSummary(event))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": items,
			"total": total,
			"page":  paging.Page,
		})
	}
}

func (h *Handler) eventDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			h.writeBadRequest(w, "スラグが指定されていません")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		event, err := h.eventQueries.DetailBySlug(ctx, slug)
		if err != nil {
			h.writeServerError(w, "イベントの取得に失敗しました", err)
			return
		}
		if event == nil {
			h.writeNotFound(w, "イベントが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, eventToDetail(*event))
	}
}
