package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginHandler はメールとパスワードを検証し、アクセストークンを発行する。
func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req loginRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}

		email := strings.TrimSpace(req.Email)
		if email == "" || req.Password == "" {
			h.writeBadRequest(w, "メールアドレスとパスワードを入力してください")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := h.userService.VerifyLogin(ctx, email, req.Password)
		if err != nil {
			if errors.Is(err, adminapp.ErrInvalidCredentials) {
				common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": adminapp.ErrInvalidCredentials.Error(),
				})
				return
			}
			h.writeServerError(w, "ログイン処理に失敗しました", err)
			return
		}

		token, expiresAt, err := h.issueToken(user.ID, user.Email, user.DisplayName(), string(user.Role))
		if err != nil {
			h.writeServerError(w, "トークンの発行に失敗しました", err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"token":     token,
			"expiresAt": expiresAt.Format(time.RFC3339),
			"user": map[string]any{
				"id":    user.ID,
				"email": user.Email,
				"name":  user.DisplayName(),
				"role":  string(user.Role),
			},
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報の取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}
