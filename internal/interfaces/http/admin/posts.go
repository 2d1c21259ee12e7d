package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) postListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.PostFilter{
			CategoryID: strings.TrimSpace(query.Get("categoryId")),
			TagID:      strings.TrimSpace(query.Get("tagId")),
			Keyword:    strings.TrimSpace(query.Get("keyword")),
			AuthorID:   strings.TrimSpace(query.Get("authorId")),
		}
		if statusParam := strings.TrimSpace(query.Get("status")); statusParam != "" {
			status, err := admindomain.NewPostStatus(statusParam)
			if err != nil {
				h.writeBadRequest(w, "記事ステータスの指定が不正です")
				return
			}
			filter.Statuses = []admindomain.PostStatus{status}
		}

		posts, total, err := h.postService.List(ctx, filter, parsePaging(r))
		if err != nil {
			h.writeServerError(w, "記事一覧の取得に失敗しました", err)
			return
		}

		items := make([]postResponse, 0, len(posts))
		for _, post := range posts {
			items = append(items, postDomainToResponse(post))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items, "total": total})
	}
}

func (h *Handler) postDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		post, err := h.postService.Detail(ctx, id)
		if err != nil {
			h.writeServerError(w, "記事の取得に失敗しました", err)
			return
		}
		if post == nil {
			h.writeNotFound(w, "記事が見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, postDomainToResponse(*post))
	}
}

func (h *Handler) postCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		cmd, ok := h.buildPostCommand(w, r, req)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		post, err := h.postService.Create(ctx, cmd)
		if err != nil {
			h.writeServerError(w, "記事の作成に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, postDomainToResponse(*post))
	}
}

func (h *Handler) postUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req postUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		cmd, ok := h.buildPostCommand(w, r, req)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		post, err := h.postService.Update(ctx, id, cmd)
		if err != nil {
			h.writeServerError(w, "記事の更新に失敗しました", err)
			return
		}
		if post == nil {
			h.writeNotFound(w, "記事が見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, postDomainToResponse(*post))
	}
}

func (h *Handler) postDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.postService.Delete(ctx, id); err != nil {
			h.writeServerError(w, "記事の削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "記事を削除しました"})
	}
}

func (h *Handler) buildPostCommand(w http.ResponseWriter, r *http.Request, req postUpsertRequest) (adminapp.UpsertPostCommand, bool) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		h.writeBadRequest(w, "タイトルは必須です")
		return adminapp.UpsertPostCommand{}, false
	}

	status, err := admindomain.NewPostStatus(req.Status)
	if err != nil {
		h.writeBadRequest(w, "記事ステータスの指定が不正です")
		return adminapp.UpsertPostCommand{}, false
	}

	publishedAt, err := parseOptionalTime(req.PublishedAt)
	if err != nil {
		h.writeBadRequest(w, "公開日時の形式が不正です")
		return adminapp.UpsertPostCommand{}, false
	}

	user, ok := common.UserFromContext(r.Context())
	if !ok {
		h.writeServerError(w, "認証情報の取得に失敗しました", nil)
		return adminapp.UpsertPostCommand{}, false
	}

	return adminapp.UpsertPostCommand{
		Title:          title,
		Slug:           strings.TrimSpace(req.Slug),
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		Status:         status,
		PublishedAt:    publishedAt,
		FeaturedImage:  strings.TrimSpace(req.FeaturedImage),
		SEOTitle:       strings.TrimSpace(req.SEOTitle),
		SEODescription: strings.TrimSpace(req.SEODescription),
		AuthorID:       user.ID,
		CategoryID:     strings.TrimSpace(req.CategoryID),
		TagIDs:         req.TagIDs,
	}, true
}
