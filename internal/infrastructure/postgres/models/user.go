package models

import "time"

// UserModel は管理画面アカウント。
// 旧スキーマの name 単一カラムは firstName/lastName に正規化済み。
type UserModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	FirstName      string
	LastName       string
	ProfilePicture string
	Role           string `gorm:"not null;default:'AUTHOR'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserModel) TableName() string {
	return "users"
}
