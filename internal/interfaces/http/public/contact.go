package public

import (
	"context"
	"net/http"
	"time"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

// contactSubmitHandler はお問い合わせフォームの送信を受け付ける。
func (h *Handler) contactSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxFormRequestBody)
		if err := r.ParseForm(); err != nil {
			h.writeBadRequest(w, "リクエストの形式が不正です")
			return
		}
		values := form.NewValues(r.PostForm)

		cmd := publicapp.SubmitContactCommand{
			Name:        values.Trimmed("name"),
			Email:       values.Trimmed("email"),
			Subject:     values.Trimmed("subject"),
			Message:     values.Trimmed("message"),
			InquiryType: values.Trimmed("inquiryType"),
		}

		errs := form.FieldErrors{}
		if cmd.Name == "" {
			errs.Add("name", "お名前を入力してください")
		}
		checkCommentEmail(errs, cmd.Email)
		if cmd.Subject == "" {
			errs.Add("subject", "件名を入力してください")
		}
		if cmd.Message == "" {
			errs.Add("message", "メッセージを入力してください")
		}
		if cmd.InquiryType == "" || cmd.InquiryType == "default" {
			errs.Add("inquiryType", "お問い合わせの種類を選択してください")
		}
		if errs.HasErrors() {
			h.metrics.RecordValidationFailure("contact")
			h.writeValidationError(w, errs)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		inquiry, err := h.contactCommands.Submit(ctx, cmd)
		if err != nil {
			h.writeServerError(w, "お問い合わせの送信に失敗しました", err)
			return
		}

		h.metrics.RecordContactSubmission(cmd.InquiryType)
		go h.notifyContactReceipt(context.Background(), cmd)

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "お問い合わせを受け付けました。担当者より折り返しご連絡いたします。",
			"data": map[string]any{
				"id":        inquiry.ID,
				"createdAt": inquiry.CreatedAt,
			},
		})
	}
}
