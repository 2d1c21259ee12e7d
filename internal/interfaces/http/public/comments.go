package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

// commentCreateHandler は読者コメントの投稿を受け付ける。
// コメントは未承認で保存され、管理画面での承認後に公開される。
func (h *Handler) commentCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			h.writeBadRequest(w, "スラグが指定されていません")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxFormRequestBody)
		if err := r.ParseForm(); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		values := form.NewValues(r.PostForm)

		name := values.Trimmed("name")
		email := values.Trimmed("email")
		content := values.Trimmed("content")

		errs := form.FieldErrors{}
		if name == "" {
			errs.Add("name", "お名前を入力してください")
		}
		checkCommentEmail(errs, email)
		if content == "" {
			errs.Add("content", "コメント内容を入力してください")
		}
		if errs.HasErrors() {
			h.metrics.RecordValidationFailure("comment")
			h.writeValidationError(w, errs)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		post, _, err := h.postQueries.DetailBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, publicapp.ErrPostNotFound) {
				h.writeNotFound(w, publicapp.ErrPostNotFound.Error())
				return
			}
			h.writeServerError(w, "コメントの投稿に失敗しました", err)
			return
		}

		comment, err := h.commentCommands.Submit(ctx, publicapp.SubmitCommentCommand{
			PostID:  post.ID,
			Name:    name,
			Email:   email,
			Content: content,
		})
		if err != nil {
			switch {
			case errors.Is(err, publicapp.ErrCommentsDisabled):
				h.metrics.RecordCommentSubmission("rejected")
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]any{
					"success": false,
					"message": publicapp.ErrCommentsDisabled.Error(),
				})
				return
			case errors.Is(err, publicapp.ErrPostNotFound):
				h.writeNotFound(w, publicapp.ErrPostNotFound.Error())
				return
			}
			h.metrics.RecordCommentSubmission("error")
			h.writeServerError(w, "コメントの投稿に失敗しました", err)
			return
		}

		h.metrics.RecordCommentSubmission("accepted")
		go h.notifyCommentReceipt(context.Background(), post.Title, comment.Name)

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "コメントを受け付けました。承認後に公開されます。",
			"data":    commentToResponse(*comment),
		})
	}
}

func checkCommentEmail(errs form.FieldErrors, email string) {
	if email == "" {
		errs.Add("email", "メールアドレスを入力してください")
		return
	}
	if _, err := admindomain.NewEmail(email); err != nil {
		errs.Add("email", "有効なメールアドレスを入力してください")
	}
}
