package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
)

func (h *Handler) categoryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categories, err := h.taxonomyQueries.Categories(ctx)
		if err != nil {
			h.writeServerError(w, "カテゴリ一覧の取得に失敗しました", err)
			return
		}

		items := make([]categoryResponse, 0, len(categories))
		for _, category := range categories {
			items = append(items, categoryToResponse(category))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) categoryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		category, err := h.taxonomyQueries.CategoryBySlug(ctx, slug)
		if err != nil {
			h.writeServerError(w, "カテゴリの取得に失敗しました", err)
			return
		}
		if category == nil {
			h.writeNotFound(w, "カテゴリが見つかりません")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, categoryToResponse(*category))
	}
}

func (h *Handler) tagListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tags, err := h.taxonomyQueries.Tags(ctx)
		if err != nil {
			h.writeServerError(w, "タグ一覧の取得に失敗しました", err)
			return
		}

		items := make([]tagResponse, 0, len(tags))
		for _, tag := range tags {
			items = append(items, tagToResponse(tag))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) tagDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tag, err := h.taxonomyQueries.TagBySlug(ctx, slug)
		if err != nil {
			h.writeServerError(w, "タグの取得に失敗しました", err)
			return
		}
		if tag == nil {
			h.writeNotFound(w, "タグが見つかりません")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, tagToResponse(*tag))
	}
}
