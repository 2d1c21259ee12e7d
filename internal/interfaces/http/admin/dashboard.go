package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
)

func (h *Handler) dashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		counts, err := h.dashboardService.Counts(ctx)
		if err != nil {
			h.writeServerError(w, "ダッシュボード集計の取得に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, dashboardResponse{
			Posts:           counts.Posts,
			PublishedPosts:  counts.PublishedPosts,
			Events:          counts.Events,
			UpcomingEvents:  counts.UpcomingEvents,
			PendingComments: counts.PendingComments,
			Media:           counts.Media,
			Users:           counts.Users,
		})
	}
}
