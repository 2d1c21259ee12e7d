package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/go-chi/chi/v5"
)

const minPasswordRunes = 8

func (h *Handler) userListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		users, err := h.userService.List(ctx)
		if err != nil {
			h.writeServerError(w, "ユーザー一覧の取得に失敗しました", err)
			return
		}

		items := make([]userResponse, 0, len(users))
		for _, user := range users {
			items = append(items, userDomainToResponse(user))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) userDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := h.userService.Detail(ctx, id)
		if err != nil {
			h.writeServerError(w, "ユーザーの取得に失敗しました", err)
			return
		}
		if user == nil {
			h.writeNotFound(w, "ユーザーが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, userDomainToResponse(*user))
	}
}

func (h *Handler) userCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userCreateRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		if _, err := admindomain.NewEmail(req.Email); err != nil {
			h.writeBadRequest(w, "有効なメールアドレスを入力してください")
			return
		}
		if len([]rune(req.Password)) < minPasswordRunes {
			h.writeBadRequest(w, "パスワードは8文字以上で設定してください")
			return
		}
		role, err := admindomain.NewRole(req.Role)
		if err != nil {
			h.writeBadRequest(w, "ロールの指定が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := h.userService.Create(ctx, adminapp.CreateUserCommand{
			Email:     strings.TrimSpace(req.Email),
			Password:  req.Password,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Role:      role,
		})
		if err != nil {
			h.writeServerError(w, "ユーザーの作成に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, userDomainToResponse(*user))
	}
}

func (h *Handler) userUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req userUpdateRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		if _, err := admindomain.NewEmail(req.Email); err != nil {
			h.writeBadRequest(w, "有効なメールアドレスを入力してください")
			return
		}
		role, err := admindomain.NewRole(req.Role)
		if err != nil {
			h.writeBadRequest(w, "ロールの指定が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := h.userService.Update(ctx, id, adminapp.UpdateUserCommand{
			Email:          strings.TrimSpace(req.Email),
			FirstName:      strings.TrimSpace(req.FirstName),
			LastName:       strings.TrimSpace(req.LastName),
			ProfilePicture: strings.TrimSpace(req.ProfilePicture),
			Role:           role,
		})
		if err != nil {
			h.writeServerError(w, "ユーザーの更新に失敗しました", err)
			return
		}
		if user == nil {
			h.writeNotFound(w, "ユーザーが見つかりません")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, userDomainToResponse(*user))
	}
}

func (h *Handler) userPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		var req passwordChangeRequest
		if err := h.decodeJSONBody(r, &req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		if len([]rune(req.Password)) < minPasswordRunes {
			h.writeBadRequest(w, "パスワードは8文字以上で設定してください")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.userService.ChangePassword(ctx, id, req.Password); err != nil {
			if errors.Is(err, adminapp.ErrNotFound) {
				h.writeNotFound(w, "ユーザーが見つかりません")
				return
			}
			h.writeServerError(w, "パスワードの変更に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "パスワードを変更しました"})
	}
}

func (h *Handler) userDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))

		user, ok := common.UserFromContext(r.Context())
		if ok && user.ID == id {
			h.writeBadRequest(w, "自分自身のアカウントは削除できません")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.userService.Delete(ctx, id); err != nil {
			h.writeServerError(w, "ユーザーの削除に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"success": true, "message": "ユーザーを削除しました"})
	}
}
