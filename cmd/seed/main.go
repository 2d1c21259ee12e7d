package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	pginit "github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/repository"
)

type seedOptions struct {
	adminEmail    string
	adminPassword string
	demoContent   bool
}

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)

	opts := seedOptions{}
	flag.StringVar(&opts.adminEmail, "admin-email", "admin@example.com", "初期管理者のメールアドレス")
	flag.StringVar(&opts.adminPassword, "admin-password", "", "初期管理者のパスワード (必須)")
	flag.BoolVar(&opts.demoContent, "demo", false, "デモ用の記事・イベント・カテゴリを投入する")
	flag.Parse()

	if opts.adminPassword == "" {
		logger.Fatal("-admin-password を指定してください")
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL を設定してください")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatalf("DB 接続に失敗: %v", err)
	}
	if err := pginit.Migrate(db); err != nil {
		logger.Fatalf("マイグレーションに失敗: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedAdminUser(ctx, db, opts, logger); err != nil {
		logger.Fatalf("管理者ユーザーの投入に失敗: %v", err)
	}
	if err := seedSettings(ctx, db, logger); err != nil {
		logger.Fatalf("サイト設定の投入に失敗: %v", err)
	}
	if err := seedStore(ctx, db, logger); err != nil {
		logger.Fatalf("店舗情報の投入に失敗: %v", err)
	}
	if opts.demoContent {
		if err := seedDemoContent(ctx, db, logger); err != nil {
			logger.Fatalf("デモコンテンツの投入に失敗: %v", err)
		}
	}

	logger.Println("シードが完了しました")
}

// seedAdminUser は管理者アカウントを投入する。同じメールのユーザーが既に存在する場合は何もしない。
func seedAdminUser(ctx context.Context, db *gorm.DB, opts seedOptions, logger *log.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", opts.adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Printf("管理者 %s は既に存在します。スキップします。", opts.adminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.UserModel{
		ID:           uuid.NewString(),
		Email:        opts.adminEmail,
		PasswordHash: string(hash),
		FirstName:    "管理者",
		Role:         string(admindomain.RoleAdmin),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}
	logger.Printf("管理者 %s を作成しました", opts.adminEmail)
	return nil
}

// seedSettings は設定行が無い場合に既定値で作成する。
func seedSettings(ctx context.Context, db *gorm.DB, logger *log.Logger) error {
	repo := repository.NewSettingsRepository(db)
	existing, err := repo.Find(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Println("サイト設定は既に存在します。スキップします。")
		return nil
	}
	settings := admindomain.DefaultSiteSettings()
	settings.ID = admindomain.SiteSettingsID
	if err := repo.Save(ctx, &settings); err != nil {
		return err
	}
	logger.Println("既定のサイト設定を作成しました")
	return nil
}

func seedStore(ctx context.Context, db *gorm.DB, logger *log.Logger) error {
	repo := repository.NewStoreRepository(db)
	existing, err := repo.Find(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Println("店舗情報は既に存在します。スキップします。")
		return nil
	}
	store := admindomain.DefaultStoreInfo()
	if err := repo.Save(ctx, &store); err != nil {
		return err
	}
	logger.Println("既定の店舗情報を作成しました")
	return nil
}

// seedDemoContent はローカル確認用のカテゴリ・タグ・記事・イベントを投入する。
func seedDemoContent(ctx context.Context, db *gorm.DB, logger *log.Logger) error {
	var admin models.UserModel
	if err := db.WithContext(ctx).Order("created_at ASC").First(&admin).Error; err != nil {
		return fmt.Errorf("著者となるユーザーが見つかりません: %w", err)
	}

	categories := []models.CategoryModel{
		{ID: uuid.NewString(), Name: "お知らせ", Slug: "news", Description: "店舗からのお知らせ"},
		{ID: uuid.NewString(), Name: "レシピ", Slug: "recipe", Description: "まかないレシピの紹介"},
	}
	for i := range categories {
		var count int64
		if err := db.WithContext(ctx).Model(&models.CategoryModel{}).
			Where("slug = ?", categories[i].Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			if err := db.WithContext(ctx).
				Where("slug = ?", categories[i].Slug).First(&categories[i]).Error; err != nil {
				return err
			}
			continue
		}
		if err := db.WithContext(ctx).Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	tag := models.TagModel{ID: uuid.NewString(), Name: "季節限定", Slug: "seasonal"}
	var tagCount int64
	if err := db.WithContext(ctx).Model(&models.TagModel{}).
		Where("slug = ?", tag.Slug).Count(&tagCount).Error; err != nil {
		return err
	}
	if tagCount == 0 {
		if err := db.WithContext(ctx).Create(&tag).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	posts := []models.PostModel{
		{
			ID:          uuid.NewString(),
			Title:       "リニューアルオープンのお知らせ",
			Slug:        "renewal-open",
			Content:     "店内改装を終え、本日より営業を再開しました。",
			Excerpt:     "店内改装を終えて営業再開",
			Status:      string(admindomain.PostPublished),
			PublishedAt: &now,
			AuthorID:    admin.ID,
			CategoryID:  &categories[0].ID,
		},
		{
			ID:         uuid.NewString(),
			Title:      "下書きの記事",
			Slug:       "draft-example",
			Content:    "公開前の下書きです。",
			Status:     string(admindomain.PostDraft),
			AuthorID:   admin.ID,
			CategoryID: &categories[1].ID,
		},
	}
	for i := range posts {
		var count int64
		if err := db.WithContext(ctx).Model(&models.PostModel{}).
			Where("slug = ?", posts[i].Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&posts[i]).Error; err != nil {
			return err
		}
	}

	start := now.AddDate(0, 0, 14)
	event := models.EventModel{
		ID:          uuid.NewString(),
		Title:       "秋の収穫祭ディナー",
		Slug:        "autumn-harvest-dinner",
		Description: "地元農家の食材を使った一夜限りのコースディナーです。",
		StartDate:   start,
		Location:    "店舗2Fホール",
		Status:      string(admindomain.EventPublished),
		AuthorID:    admin.ID,
	}
	var eventCount int64
	if err := db.WithContext(ctx).Model(&models.EventModel{}).
		Where("slug = ?", event.Slug).Count(&eventCount).Error; err != nil {
		return err
	}
	if eventCount == 0 {
		if err := db.WithContext(ctx).Create(&event).Error; err != nil {
			return err
		}
	}

	logger.Println("デモコンテンツを投入しました")
	return nil
}
