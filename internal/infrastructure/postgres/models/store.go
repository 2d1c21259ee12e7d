package models

import "time"

// StoreModel は店舗プロフィールのシングルトン行。
type StoreModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Name           string `gorm:"not null"`
	Description    string
	Phone          string
	Email          string
	AccessInfo     string
	ReservationURL string

	Address       *AddressModel       `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	BusinessHours []BusinessHourModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}

// AddressModel は店舗に 1:1 で従属する住所行。
type AddressModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	StoreID    string `gorm:"uniqueIndex;not null"`
	ZipCode    string
	Prefecture string
	City       string
	Street     string
	Building   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}

// BusinessHourModel は曜日ごとの営業時間。更新のたびに全行が入れ替わる。
type BusinessHourModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	StoreID   string `gorm:"index;not null"`
	Day       string `gorm:"not null"`
	IsOpen    bool
	OpenTime  *string
	CloseTime *string
	CreatedAt time.Time
}

func (BusinessHourModel) TableName() string {
	return "business_hours"
}
