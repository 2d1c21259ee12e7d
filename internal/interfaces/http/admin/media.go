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

// mediaToResponse は配信用URLを付与したレスポンスを組み立てる。
func (h *Handler) mediaToResponse(m admindomain.Media) mediaResponse {
	res := mediaDomainToResponse(m)
	res.URL = h.publicMediaURL(m.Path)
	return res
}

// publicMediaURL は相対パスを配信ベースURLへ連結する。絶対URLはそのまま返す。
func (h *Handler) publicMediaURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	base := strings.TrimRight(h.mediaBaseURL, "/")
	if base == "" {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

func (h *Handler) mediaListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.MediaFilter{
			Type:    strings.TrimSpace(query.Get("type")),
			Keyword: strings.TrimSpace(query.Get("keyword")),
		}

		items, total, err := h.mediaService.List(ctx, filter, parsePaging(r))
		if err != nil {
			h.writeServerError(w, "メディア一覧の取得に失敗しました", err)
			return
		}

		responses := make([]mediaResponse, 0, len(items))
		for _, item := range items {
			responses = append(responses, h.mediaToResponse(item))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": responses, "total": total})
	}
}

func (h *Handler) mediaDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		media, err := h.mediaService.Detail(ctx, id)
		if err != nil {
			h.writeServerError(w, "メディアの取得に失敗しました", err)
			return
		}
		if media == nil {
			h.writeNotFound(w, "メディアが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, h.mediaToResponse(*media))
	}
}

func (h *Handler) mediaRegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mediaRegisterRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		if strings.TrimSpace(req.Filename) == "" {
			h.writeBadRequest(w, "ファイル名は必須です")
			return
		}
		if h.maxUploadSize > 0 && req.Size > h.maxUploadSize {
			h.writeBadRequest(w, "ファイルサイズが上限を超えています")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		media, err := h.mediaService.Register(ctx, adminapp.RegisterMediaCommand{
			Title:       strings.TrimSpace(req.Title),
			Filename:    strings.TrimSpace(req.Filename),
			Path:        strings.TrimSpace(req.Path),
			Type:        strings.TrimSpace(req.Type),
			Size:        req.Size,
			Alt:         req.Alt,
			Description: req.Description,
		})
		if err != nil {
			h.writeServerError(w, "メディアの登録に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, h.mediaToResponse(*media))
	}
}

func (h *Handler) mediaUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req mediaUpdateRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		media, err := h.mediaService.Update(ctx, id, adminapp.UpdateMediaCommand{
			Title:       strings.TrimSpace(req.Title),
			Alt:         req.Alt,
			Description: req.Description,
		})
		if err != nil {
			h.writeServerError(w, "メディアの更新に失敗しました", err)
			return
		}
		if media == nil {
			h.writeNotFound(w, "メディアが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, h.mediaToResponse(*media))
	}
}

func (h *Handler) mediaDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.mediaService.Delete(ctx, id); err != nil {
			h.writeServerError(w, "メディアの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "メディアを削除しました"})
	}
}
