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

func (h *Handler) eventListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.EventFilter{
			CategoryID: strings.TrimSpace(query.Get("categoryId")),
			TagID:      strings.TrimSpace(query.Get("tagId")),
			Keyword:    strings.TrimSpace(query.Get("keyword")),
			Upcoming:   query.Get("upcoming") == "true",
		}
		if statusParam := strings.TrimSpace(query.Get("status")); statusParam != "" {
			status, err := admindomain.NewEventStatus(statusParam)
			if err != nil {
				h.writeBadRequest(w, "イベントステータスの指定が不正です")
				return
			}
			filter.Statuses = []admindomain.EventStatus{status}
		}

		events, total, err := h.eventService.List(ctx, filter, parsePaging(r))
		if err != nil {
			h.writeServerError(w, "イベント一覧の取得に失敗しました", err)
			return
		}

		items := make([]eventResponse, 0, len(events))
		for _, event := range events {
			items = append(items, eventDomainToResponse(event))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items, "total": total})
	}
}

func (h *Handler) eventDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		event, err := h.eventService.Detail(ctx, id)
		if err != nil {
			h.writeServerError(w, "イベントの取得に失敗しました", err)
			return
		}
		if event == nil {
			h.writeNotFound(w, "イベントが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, eventDomainToResponse(*event))
	}
}

func (h *Handler) eventCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		cmd, ok := h.buildEventCommand(w, r, req)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		event, err := h.eventService.Create(ctx, cmd)
		if err != nil {
			h.writeServerError(w, "イベントの作成に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, eventDomainToResponse(*event))
	}
}

func (h *Handler) eventUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req eventUpsertRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		cmd, ok := h.buildEventCommand(w, r, req)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		event, err := h.eventService.Update(ctx, id, cmd)
		if err != nil {
			h.writeServerError(w, "イベントの更新に失敗しました", err)
			return
		}
		if event == nil {
			h.writeNotFound(w, "イベントが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, eventDomainToResponse(*event))
	}
}

func (h *Handler) eventDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.eventService.Delete(ctx, id); err != nil {
			h.writeServerError(w, "イベントの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "イベントを削除しました"})
	}
}

func (h *Handler) buildEventCommand(w http.ResponseWriter, r *http.Request, req eventUpsertRequest) (adminapp.UpsertEventCommand, bool) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		h.writeBadRequest(w, "タイトルは必須です")
		return adminapp.UpsertEventCommand{}, false
	}

	status, err := admindomain.NewEventStatus(req.Status)
	if err != nil {
		h.writeBadRequest(w, "イベントステータスの指定が不正です")
		return adminapp.UpsertEventCommand{}, false
	}

	startDate, err := time.Parse(time.RFC3339, strings.TrimSpace(req.StartDate))
	if err != nil {
		h.writeBadRequest(w, "開始日時の形式が不正です")
		return adminapp.UpsertEventCommand{}, false
	}
	endDate, err := parseOptionalTime(req.EndDate)
	if err != nil {
		h.writeBadRequest(w, "終了日時の形式が不正です")
		return adminapp.UpsertEventCommand{}, false
	}

	user, ok := common.UserFromContext(r.Context())
	if !ok {
		h.writeServerError(w, "認証情報の取得に失敗しました", nil)
		return adminapp.UpsertEventCommand{}, false
	}

	return adminapp.UpsertEventCommand{
		Title:         title,
		Slug:          strings.TrimSpace(req.Slug),
		Description:   req.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		Location:      strings.TrimSpace(req.Location),
		Status:        status,
		FeaturedImage: strings.TrimSpace(req.FeaturedImage),
		AuthorID:      user.ID,
		CategoryIDs:   req.CategoryIDs,
		TagIDs:        req.TagIDs,
	}, true
}
