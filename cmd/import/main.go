package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	pginit "github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
)

// 旧システム (Prisma スキーマ) の Postgres から現行スキーマへの一括移行ツール。
// 依存順 (ユーザー → 分類 → 記事 → イベント → コメント → 店舗 → メディア → サイト設定) に移行する。

func main() {
	logger := log.New(os.Stdout, "[import] ", log.LstdFlags)

	var sourceDSN string
	flag.StringVar(&sourceDSN, "source", "", "移行元 Postgres の DSN (必須)")
	flag.Parse()

	if strings.TrimSpace(sourceDSN) == "" {
		logger.Fatal("-source を指定してください")
	}

	_ = godotenv.Load()
	targetDSN := os.Getenv("DATABASE_URL")
	if targetDSN == "" {
		logger.Fatal("DATABASE_URL を設定してください")
	}

	source, err := sql.Open("postgres", sourceDSN)
	if err != nil {
		logger.Fatalf("移行元への接続に失敗: %v", err)
	}
	defer source.Close()
	if err := source.Ping(); err != nil {
		logger.Fatalf("移行元への疎通確認に失敗: %v", err)
	}

	target, err := gorm.Open(postgres.Open(targetDSN), &gorm.Config{})
	if err != nil {
		logger.Fatalf("移行先への接続に失敗: %v", err)
	}
	if err := pginit.Migrate(target); err != nil {
		logger.Fatalf("移行先のマイグレーションに失敗: %v", err)
	}

	imp := &importer{source: source, target: target, logger: logger}

	steps := []struct {
		name string
		run  func() error
	}{
		{"ユーザー", imp.importUsers},
		{"カテゴリ", imp.importCategories},
		{"タグ", imp.importTags},
		{"記事", imp.importPosts},
		{"記事タグ", imp.importPostTags},
		{"イベント", imp.importEvents},
		{"イベントタグ", imp.importEventTags},
		{"コメント", imp.importComments},
		{"店舗", imp.importStore},
		{"メディア", imp.importMedia},
		{"サイト設定", imp.importSiteSettings},
	}
	for _, step := range steps {
		logger.Printf("%sの移行を開始します...", step.name)
		if err := step.run(); err != nil {
			logger.Fatalf("%sの移行に失敗: %v", step.name, err)
		}
	}

	logger.Println("データ移行が完了しました")
}

type importer struct {
	source *sql.DB
	target *gorm.DB
	logger *log.Logger
}

func (i *importer) importUsers() error {
	rows, err := i.source.Query(`SELECT id, email, "passwordHash", COALESCE(name, ''), COALESCE("profilePicture", ''), role, "createdAt", "updatedAt" FROM "User"`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.UserModel
		var name string
		if err := rows.Scan(&m.ID, &m.Email, &m.PasswordHash, &name, &m.ProfilePicture, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		// 旧スキーマは氏名が単一カラム。姓・名の区別がないため FirstName へ寄せる。
		m.FirstName = strings.TrimSpace(name)
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d人のユーザーを移行しました", count)
	return rows.Err()
}

func (i *importer) importCategories() error {
	rows, err := i.source.Query(`SELECT id, name, slug, COALESCE(description, ''), "createdAt", "updatedAt" FROM "Category"`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.CategoryModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Slug, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d件のカテゴリを移行しました", count)
	return rows.Err()
}

func (i *importer) importTags() error {
	rows, err := i.source.Query(`SELECT id, name, slug, "createdAt", "updatedAt" FROM "Tag"`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.TagModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Slug, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d件のタグを移行しました", count)
	return rows.Err()
}

func (i *importer) importPosts() error {
	rows, err := i.source.Query(`SELECT id, title, slug, COALESCE(content, ''), COALESCE(excerpt, ''), COALESCE("featuredImage", ''), status, "publishedAt", "categoryId", "authorId", "createdAt", "updatedAt" FROM "Post"`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.PostModel
		var publishedAt sql.NullTime
		var categoryID sql.NullString
		if err := rows.Scan(&m.ID, &m.Title, &m.Slug, &m.Content, &m.Excerpt, &m.FeaturedImage, &m.Status, &publishedAt, &categoryID, &m.AuthorID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		if publishedAt.Valid {
			t := publishedAt.Time
			m.PublishedAt = &t
		}
		if categoryID.Valid && categoryID.String != "" {
			v := categoryID.String
			m.CategoryID = &v
		}
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d件の記事を移行しました", count)
	return rows.Err()
}

func (i *importer) importPostTags() error {
	return i.importJoinTable(`SELECT "postId", "tagId" FROM "PostToTag"`, "post_tags", "post_model_id", "tag_model_id")
}

func (i *importer) importEvents() error {
	rows, err := i.source.Query(`SELECT id, title, slug, COALESCE(excerpt, content, ''), "startDate", "endDate", COALESCE(location, ''), status, COALESCE("featuredImage", ''), "authorId", "createdAt", "updatedAt" FROM "Event"`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.EventModel
		var endDate sql.NullTime
		if err := rows.Scan(&m.ID, &m.Title, &m.Slug, &m.Description, &m.StartDate, &endDate, &m.Location, &m.Status, &m.FeaturedImage, &m.AuthorID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		if endDate.Valid {
			t := endDate.Time
			m.EndDate = &t
		}
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d件のイベントを移行しました", count)

	// Prisma の暗黙リレーションからイベント-カテゴリの対応を移す。
	if err := i.importJoinTable(`SELECT "A", "B" FROM "_CategoryToEvent"`, "event_categories", "category_model_id", "event_model_id"); err != nil {
		i.logger.Printf("イベントカテゴリの移行をスキップ: %v", err)
	}
	return nil
}

func (i *importer) importEventTags() error {
	return i.importJoinTable(`SELECT "eventId", "tagId" FROM "EventToTag"`, "event_tags", "event_model_id", "tag_model_id")
}

// importComments は記事コメントのみを対象にする。現行スキーマはイベントコメントと返信スレッドを持たない。
func (i *importer) importComments() error {
	rows, err := i.source.Query(`
		SELECT c.id, c.content, c.status, c."postId", COALESCE(u.name, ''), COALESCE(u.email, ''), c."createdAt", c."updatedAt"
		FROM "Comment" c
		LEFT JOIN "User" u ON u.id = c."authorId"
		WHERE c."postId" IS NOT NULL AND c."parentId" IS NULL`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.CommentModel
		var status string
		if err := rows.Scan(&m.ID, &m.Content, &status, &m.PostID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		if m.Name == "" {
			m.Name = "匿名"
		}
		m.IsApproved = status == "APPROVED"
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d件のコメントを移行しました", count)
	return rows.Err()
}

func (i *importer) importStore() error {
	row := i.source.QueryRow(`SELECT id, name, COALESCE(description, ''), COALESCE(phone, ''), COALESCE(email, ''), COALESCE("accessInfo", ''), COALESCE("reservationUrl", ''), "createdAt", "updatedAt" FROM "Store" LIMIT 1`)

	var store models.StoreModel
	if err := row.Scan(&store.ID, &store.Name, &store.Description, &store.Phone, &store.Email, &store.AccessInfo, &store.ReservationURL, &store.CreatedAt, &store.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			i.logger.Println("店舗データが存在しません。スキップします。")
			return nil
		}
		return err
	}
	if err := i.upsert(&store); err != nil {
		return err
	}

	addrRow := i.source.QueryRow(`SELECT id, COALESCE("zipCode", ''), COALESCE(prefecture, ''), COALESCE(city, ''), COALESCE(street, ''), COALESCE(building, ''), "createdAt", "updatedAt" FROM "Address" WHERE "storeId" = $1`, store.ID)
	var addr models.AddressModel
	err := addrRow.Scan(&addr.ID, &addr.ZipCode, &addr.Prefecture, &addr.City, &addr.Street, &addr.Building, &addr.CreatedAt, &addr.UpdatedAt)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil {
		addr.StoreID = store.ID
		if err := i.upsert(&addr); err != nil {
			return err
		}
	}

	hourRows, err := i.source.Query(`SELECT id, day, "isOpen", COALESCE("openTime", ''), COALESCE("closeTime", ''), "createdAt" FROM "BusinessHour" WHERE "storeId" = $1`, store.ID)
	if err != nil {
		return err
	}
	defer hourRows.Close()

	hours := 0
	for hourRows.Next() {
		var hour models.BusinessHourModel
		if err := hourRows.Scan(&hour.ID, &hour.Day, &hour.IsOpen, &hour.OpenTime, &hour.CloseTime, &hour.CreatedAt); err != nil {
			return err
		}
		hour.StoreID = store.ID
		if !admindomain.IsValidWeekday(hour.Day) {
			i.logger.Printf("不正な曜日 %q の営業時間をスキップしました", hour.Day)
			continue
		}
		if err := i.upsert(&hour); err != nil {
			return err
		}
		hours++
	}
	i.logger.Printf("店舗と営業時間 %d件を移行しました", hours)
	return hourRows.Err()
}

func (i *importer) importMedia() error {
	rows, err := i.source.Query(`SELECT id, filename, COALESCE(originalname, filename), path, COALESCE(mimetype, ''), COALESCE(size, 0), "createdAt", "updatedAt" FROM "Media"`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m models.MediaModel
		if err := rows.Scan(&m.ID, &m.Filename, &m.Title, &m.Path, &m.Type, &m.Size, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		if err := i.upsert(&m); err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%d件のメディアを移行しました", count)
	return rows.Err()
}

func (i *importer) importSiteSettings() error {
	row := i.source.QueryRow(`SELECT id, "siteName", COALESCE("siteDescription", ''), COALESCE("adminEmail", ''), COALESCE("postsPerPage", 10), COALESCE("showAuthorInfo", true), COALESCE("enableComments", true), COALESCE("primaryColor", ''), COALESCE("secondaryColor", ''), "createdAt", "updatedAt" FROM "SiteSettings" WHERE id = '1'`)

	var m models.SiteSettingsModel
	if err := row.Scan(&m.ID, &m.SiteName, &m.SiteDescription, &m.AdminEmail, &m.PostsPerPage, &m.ShowAuthorInfo, &m.EnableComments, &m.PrimaryColor, &m.SecondaryColor, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			i.logger.Println("サイト設定が存在しません。スキップします。")
			return nil
		}
		return err
	}
	if err := i.upsert(&m); err != nil {
		return err
	}
	i.logger.Println("サイト設定を移行しました")
	return nil
}

// importJoinTable は中間テーブルの対応行を現行スキーマの結合テーブルへ写す。
func (i *importer) importJoinTable(query, table, leftCol, rightCol string) error {
	rows, err := i.source.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var left, right string
		if err := rows.Scan(&left, &right); err != nil {
			return err
		}
		insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?) ON CONFLICT DO NOTHING`, table, leftCol, rightCol)
		if err := i.target.Exec(insert, left, right).Error; err != nil {
			return err
		}
		count++
	}
	i.logger.Printf("%s へ %d件を移行しました", table, count)
	return rows.Err()
}

// upsert は主キー重複時に既存行を維持し、再実行しても安全にする。
func (i *importer) upsert(model any) error {
	return i.target.Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error
}
