package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) categoryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categories, err := h.taxonomyService.Categories(ctx)
		if err != nil {
			h.writeServerError(w, "カテゴリ一覧の取得に失敗しました", err)
			return
		}

		items := make([]categoryResponse, 0, len(categories))
		for _, category := range categories {
			items = append(items, categoryDomainToResponse(category))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) categoryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		category, err := h.taxonomyService.CategoryDetail(ctx, id)
		if err != nil {
			h.writeServerError(w, "カテゴリの取得に失敗しました", err)
			return
		}
		if category == nil {
			h.writeNotFound(w, "カテゴリが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, categoryDomainToResponse(*category))
	}
}

func (h *Handler) categoryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taxonomyUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			h.writeBadRequest(w, "カテゴリ名は必須です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		category, err := h.taxonomyService.CreateCategory(ctx, taxonomyRequestToCommand(req))
		if err != nil {
			h.writeServerError(w, "カテゴリの作成に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, categoryDomainToResponse(*category))
	}
}

func (h *Handler) categoryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req taxonomyUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			h.writeBadRequest(w, "カテゴリ名は必須です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		category, err := h.taxonomyService.UpdateCategory(ctx, id, taxonomyRequestToCommand(req))
		if err != nil {
			h.writeServerError(w, "カテゴリの更新に失敗しました", err)
			return
		}
		if category == nil {
			h.writeNotFound(w, "カテゴリが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, categoryDomainToResponse(*category))
	}
}

func (h *Handler) categoryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.taxonomyService.DeleteCategory(ctx, id); err != nil {
			h.writeServerError(w, "カテゴリの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "カテゴリを削除しました"})
	}
}

func (h *Handler) tagListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tags, err := h.taxonomyService.Tags(ctx)
		if err != nil {
			h.writeServerError(w, "タグ一覧の取得に失敗しました", err)
			return
		}

		items := make([]tagResponse, 0, len(tags))
		for _, tag := range tags {
			items = append(items, tagDomainToResponse(tag))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) tagDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tag, err := h.taxonomyService.TagDetail(ctx, id)
		if err != nil {
			h.writeServerError(w, "タグの取得に失敗しました", err)
			return
		}
		if tag == nil {
			h.writeNotFound(w, "タグが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, tagDomainToResponse(*tag))
	}
}

func (h *Handler) tagCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taxonomyUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			h.writeBadRequest(w, "タグ名は必須です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tag, err := h.taxonomyService.CreateTag(ctx, taxonomyRequestToCommand(req))
		if err != nil {
			h.writeServerError(w, "タグの作成に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, tagDomainToResponse(*tag))
	}
}

func (h *Handler) tagUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req taxonomyUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			h.writeBadRequest(w, "タグ名は必須です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tag, err := h.taxonomyService.UpdateTag(ctx, id, taxonomyRequestToCommand(req))
		if err != nil {
			h.writeServerError(w, "タグの更新に失敗しました", err)
			return
		}
		if tag == nil {
			h.writeNotFound(w, "タグが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, tagDomainToResponse(*tag))
	}
}

func (h *Handler) tagDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.taxonomyService.DeleteTag(ctx, id); err != nil {
			h.writeServerError(w, "タグの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "タグを削除しました"})
	}
}

func taxonomyRequestToCommand(req taxonomyUpsertRequest) adminapp.UpsertTaxonomyCommand {
	return adminapp.UpsertTaxonomyCommand{
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.TrimSpace(req.Slug),
		Description: req.Description,
	}
}
