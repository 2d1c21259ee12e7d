package repository

import (
	"context"
	"errors"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreRepository は stores シングルトン行と従属行を扱う。
type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Find は店舗行を住所・営業時間込みで返す。行が無ければ (nil, nil)。
func (r *StoreRepository) Find(ctx context.Context) (*admindomain.StoreInfo, error) {
	var model models.StoreModel
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("BusinessHours").
		Order("created_at").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return storeToDomain(&model), nil
}

// Save は店舗と住所を upsert し、営業時間を全置換する。
// 失敗時に旧セットと新セットが混在しないよう、全工程を1トランザクションで行う。
func (r *StoreRepository) Save(ctx context.Context, info *admindomain.StoreInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if info.ID == "" {
			info.ID = uuid.NewString()
		}

		store := models.StoreModel{
			ID:             info.ID,
			Name:           info.Name,
			Description:    info.Description,
			Phone:          info.Phone,
			Email:          info.Email,
			AccessInfo:     info.AccessInfo,
			ReservationURL: info.ReservationURL,
			CreatedAt:      info.CreatedAt,
		}
		if err := tx.Save(&store).Error; err != nil {
			return err
		}

		var address models.AddressModel
		err := tx.Where("store_id = ?", info.ID).First(&address).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			address = models.AddressModel{ID: uuid.NewString(), StoreID: info.ID}
		}
		address.ZipCode = info.Address.ZipCode
		address.Prefecture = info.Address.Prefecture
		address.City = info.Address.City
		address.Street = info.Address.Street
		address.Building = info.Address.Building
		if err := tx.Save(&address).Error; err != nil {
			return err
		}

		if err := tx.Where("store_id = ?", info.ID).Delete(&models.BusinessHourModel{}).Error; err != nil {
			return err
		}
		for _, hour := range info.BusinessHours {
			row := models.BusinessHourModel{
				ID:        uuid.NewString(),
				StoreID:   info.ID,
				Day:       hour.Day,
				IsOpen:    hour.IsOpen,
				OpenTime:  optionalString(hour.OpenTime),
				CloseTime: optionalString(hour.CloseTime),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountBusinessHours は指定店舗の営業時間行数を返す。全置換の検証用。
func (r *StoreRepository) CountBusinessHours(ctx context.Context, storeID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BusinessHourModel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return int(count), err
}

func storeToDomain(m *models.StoreModel) *admindomain.StoreInfo {
	info := &admindomain.StoreInfo{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Phone:          m.Phone,
		Email:          m.Email,
		AccessInfo:     m.AccessInfo,
		ReservationURL: m.ReservationURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Address != nil {
		info.Address = admindomain.Address{
			ZipCode:    m.Address.ZipCode,
			Prefecture: m.Address.Prefecture,
			City:       m.Address.City,
			Street:     m.Address.Street,
			Building:   m.Address.Building,
		}
	}
	info.BusinessHours = make([]admindomain.BusinessHour, 0, len(m.BusinessHours))
	for _, hour := range m.BusinessHours {
		info.BusinessHours = append(info.BusinessHours, admindomain.BusinessHour{
			Day:       hour.Day,
			IsOpen:    hour.IsOpen,
			OpenTime:  stringValue(hour.OpenTime),
			CloseTime: stringValue(hour.CloseTime),
		})
	}
	return info
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
