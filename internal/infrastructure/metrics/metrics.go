package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics はHTTP層と公開フォームの計測値を束ねる。
type APIMetrics struct {
	RequestsTotal   prometheus.CounterVec
	RequestDuration prometheus.HistogramVec

	ContactSubmissionsTotal prometheus.CounterVec
	CommentSubmissionsTotal prometheus.CounterVec

	SettingsUpdatesTotal prometheus.CounterVec
	ValidationFailures   prometheus.CounterVec

	NotificationsTotal prometheus.CounterVec
}

func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		RequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTPリクエストの総数",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTPリクエストの処理時間(秒)",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"method", "path"},
		),
		ContactSubmissionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "お問い合わせフォーム送信の総数",
			},
			[]string{"inquiry_type"},
		),
		CommentSubmissionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comment_submissions_total",
				Help: "読者コメント投稿の総数",
			},
			[]string{"result"},
		),
		SettingsUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settings_updates_total",
				Help: "サイト設定/店舗情報の更新総数",
			},
			[]string{"target", "result"},
		),
		ValidationFailures: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_validation_failures_total",
				Help: "フォームバリデーション失敗の総数",
			},
			[]string{"form"},
		),
		NotificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_notifications_total",
				Help: "管理者通知送信の総数",
			},
			[]string{"target", "result"},
		),
	}
}

// 各 Record メソッドは nil レシーバを許容する。
func (m *APIMetrics) RecordRequest(method, path, status string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

func (m *APIMetrics) RecordContactSubmission(inquiryType string) {
	if m == nil {
		return
	}
	if inquiryType == "" {
		inquiryType = "general"
	}
	m.ContactSubmissionsTotal.WithLabelValues(inquiryType).Inc()
}

func (m *APIMetrics) RecordCommentSubmission(result string) {
	if m == nil {
		return
	}
	m.CommentSubmissionsTotal.WithLabelValues(result).Inc()
}

func (m *APIMetrics) RecordSettingsUpdate(target, result string) {
	if m == nil {
		return
	}
	m.SettingsUpdatesTotal.WithLabelValues(target, result).Inc()
}

func (m *APIMetrics) RecordValidationFailure(form string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(form).Inc()
}

func (m *APIMetrics) RecordNotification(target, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(target, result).Inc()
}
