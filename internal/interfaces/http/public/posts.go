package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

func (h *Handler) postListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := publicapp.PostFilter{
			CategorySlug: strings.TrimSpace(query.Get("category")),
			TagSlug:      strings.TrimSpace(query.Get("tag")),
			Keyword:      strings.TrimSpace(query.Get("q")),
		}
		paging := h.parsePaging(r)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		posts, total, err := h.postQueries.List(ctx, filter, paging)
		if err != nil {
			h.writeServerError(w, "記事一覧の取得に失敗しました", err)
			return
		}

		showAuthor := h.showAuthorInfo(ctx)
		items := make([]postSummaryResponse, 0, len(posts))
		for _, post := range posts {
			items = append(items, postToSummary(post, showAuthor))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": items,
			"total": total,
			"page":  paging.Page,
		})
	}
}

func (h *Handler) postDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			h.writeBadRequest(w, "スラグが指定されていません")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		post, comments, err := h.postQueries.DetailBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, publicapp.ErrPostNotFound) {
				h.writeNotFound(w, publicapp.ErrPostNotFound.Error())
				return
			}
			h.writeServerError(w, "記事の取得に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, postToDetail(*post, comments, h.showAuthorInfo(ctx)))
	}
}

// showAuthorInfo は表示設定の showAuthorInfo を参照する。設定取得に失敗した場合は表示する。
func (h *Handler) showAuthorInfo(ctx context.Context) bool {
	settings, err := h.siteQueries.Settings(ctx)
	if err != nil {
		return true
	}
	return settings.Display.ShowAuthorInfo
}
