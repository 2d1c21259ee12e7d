package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

// notifyContactReceipt はお問い合わせ受信を管理者のメッセンジャーへ通知する。
// 通知設定で無効化されている場合は何もしない。
func (h *Handler) notifyContactReceipt(ctx context.Context, cmd publicapp.SubmitContactCommand) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !h.contactNotificationEnabled(ctx) {
		return
	}

	message := buildContactMessage(cmd)
	h.dispatchAdminNotification(ctx, "contact_inquiry", cmd.Email, message)
}

// notifyCommentReceipt は新着コメントを管理者へ通知する。
func (h *Handler) notifyCommentReceipt(ctx context.Context, postTitle, commenterName string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !h.commentNotificationEnabled(ctx) {
		return
	}

	var builder strings.Builder
	builder.WriteString("新しいコメントが投稿されました。\n")
	builder.WriteString(fmt.Sprintf("記事: %s\n", postTitle))
	builder.WriteString(fmt.Sprintf("投稿者: %s\n", commenterName))
	builder.WriteString("管理画面から承認してください。\n")

	h.dispatchAdminNotification(ctx, "comment_received", commenterName, builder.String())
}

func (h *Handler) contactNotificationEnabled(ctx context.Context) bool {
	settings, err := h.siteQueries.Settings(ctx)
	if err != nil {
		return true
	}
	return settings.Notifications.SendContactFormNotification
}

func (h *Handler) commentNotificationEnabled(ctx context.Context) bool {
	settings, err := h.siteQueries.Settings(ctx)
	if err != nil {
		return true
	}
	return settings.Notifications.SendCommentNotification
}

func buildContactMessage(cmd publicapp.SubmitContactCommand) string {
	var builder strings.Builder
	builder.WriteString("新しいお問い合わせが届きました。\n")
	builder.WriteString(fmt.Sprintf("お名前: %s\n", cmd.Name))
	builder.WriteString(fmt.Sprintf("メール: %s\n", cmd.Email))
	if cmd.InquiryType != "" {
		builder.WriteString(fmt.Sprintf("種類: %s\n", cmd.InquiryType))
	}
	builder.WriteString(fmt.Sprintf("件名: %s\n", cmd.Subject))
	builder.WriteString("> " + cmd.Message + "\n")
	return builder.String()
}

// dispatchAdminNotification は通知を3回まで再送し、失敗した場合は再送キューへ記録する。
func (h *Handler) dispatchAdminNotification(ctx context.Context, target, identifier, message string) {
	if strings.TrimSpace(h.notifyEndpoint) == "" {
		return
	}
	if strings.TrimSpace(identifier) == "" {
		identifier = "admin"
	}

	err := h.sendMessengerWithRetry(ctx, h.notifyDestination, identifier, message, 3, 200*time.Millisecond)
	if err == nil {
		h.metrics.RecordNotification(target, "sent")
		return
	}
	if h.logger != nil {
		h.logger.Printf("管理者通知の送信に失敗: %v", err)
	}
	h.metrics.RecordNotification(target, "failed")

	if h.failures == nil {
		return
	}
	payload, marshalErr := json.Marshal(map[string]string{
		"identifier": identifier,
		"message":    message,
	})
	if marshalErr != nil {
		return
	}
	if persistErr := h.failures.RecordNotificationFailure(ctx, target, string(payload), err.Error(), 3); persistErr != nil && h.logger != nil {
		h.logger.Printf("通知失敗レコードの保存に失敗: %v", persistErr)
	}
}

func (h *Handler) sendMessengerWithRetry(ctx context.Context, destination, userID, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := h.sendMessengerMessage(ctx, destination, userID, text); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

func (h *Handler) sendMessengerMessage(ctx context.Context, destination, userID, bodyText string) error {
	trimmedUserID := strings.TrimSpace(userID)
	if trimmedUserID == "" {
		return errors.New("userID is required")
	}

	payload := map[string]any{
		"userId": trimmedUserID,
		"text":   bodyText,
	}
	if dest := strings.TrimSpace(destination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("メッセンジャー送信用ペイロードの作成に失敗: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.notifyEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("メッセンジャー送信リクエストの作成に失敗: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("メッセンジャー送信リクエストに失敗: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("メッセンジャー送信でエラーが発生: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	return nil
}
