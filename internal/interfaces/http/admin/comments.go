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

func (h *Handler) commentListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		status := strings.TrimSpace(query.Get("status"))
		if status != "" && status != "approved" && status != "pending" {
			h.writeBadRequest(w, "コメントステータスの指定が不正です")
			return
		}
		filter := adminapp.CommentFilter{
			Status:  status,
			Keyword: strings.TrimSpace(query.Get("keyword")),
			PostID:  strings.TrimSpace(query.Get("postId")),
		}

		comments, total, err := h.commentService.List(ctx, filter, parsePaging(r))
		if err != nil {
			h.writeServerError(w, "コメント一覧の取得に失敗しました", err)
			return
		}

		items := make([]commentResponse, 0, len(comments))
		for _, comment := range comments {
			items = append(items, commentDomainToResponse(comment))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items, "total": total})
	}
}

func (h *Handler) commentDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		comment, err := h.commentService.Detail(ctx, id)
		if err != nil {
			h.writeServerError(w, "コメントの取得に失敗しました", err)
			return
		}
		if comment == nil {
			h.writeNotFound(w, "コメントが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, commentDomainToResponse(*comment))
	}
}

func (h *Handler) commentApprovalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req commentApprovalRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		comment, err := h.commentService.SetApproved(ctx, id, req.Approved)
		if err != nil {
			h.writeServerError(w, "コメントの承認状態の更新に失敗しました", err)
			return
		}
		if comment == nil {
			h.writeNotFound(w, "コメントが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, commentDomainToResponse(*comment))
	}
}

func (h *Handler) commentDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.commentService.Delete(ctx, id); err != nil {
			h.writeServerError(w, "コメントの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "コメントを削除しました"})
	}
}
