package repository

import (
	"context"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository はお問い合わせの受信記録と通知失敗ログを扱う。
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, inquiry *admindomain.ContactInquiry) error {
	inquiry.ID = uuid.NewString()
	model := models.ContactInquiryModel{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Subject:     inquiry.Subject,
		Message:     inquiry.Message,
		InquiryType: inquiry.InquiryType,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	inquiry.CreatedAt = model.CreatedAt
	return nil
}

// RecordNotificationFailure は通知送信の失敗を後追い再送用に記録する。
func (r *ContactRepository) RecordNotificationFailure(ctx context.Context, target, payload, cause string, attempts int) error {
	model := models.NotificationFailureModel{
		ID:          uuid.NewString(),
		Target:      target,
		Payload:     payload,
		Error:       cause,
		Attempts:    attempts,
		Status:      "pending",
		LastTriedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&model).Error
}
