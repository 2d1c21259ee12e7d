package postgres

import (
	"log"

	"github.com/agenda23/restaurant-media-api/internal/config"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustInitDB は Postgres へ接続しスキーマを同期する。失敗時はプロセスを終了する。
func MustInitDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate db: %v\n", err.Error())
	}

	return db
}

// Migrate は全テーブルを AutoMigrate で同期する。テストの SQLite 初期化からも使う。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.PostModel{},
		&models.EventModel{},
		&models.CommentModel{},
		&models.MediaModel{},
		&models.SiteSettingsModel{},
		&models.StoreModel{},
		&models.AddressModel{},
		&models.BusinessHourModel{},
		&models.ContactInquiryModel{},
		&models.NotificationFailureModel{},
	)
}
