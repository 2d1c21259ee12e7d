package application

import (
	"context"
	"errors"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// ErrNotFound は更新・削除対象の行が存在しないことを示す。
var ErrNotFound = errors.New("対象のレコードが見つかりません")

// SettingsRepository exposes the singleton site-settings row.
type SettingsRepository interface {
	Find(ctx context.Context) (*admindomain.SiteSettings, error)
	Save(ctx context.Context, settings *admindomain.SiteSettings) error
}

// StoreRepository exposes the singleton store row with its owned children.
type StoreRepository interface {
	Find(ctx context.Context) (*admindomain.StoreInfo, error)
	// Save upserts the store/address rows and replaces the business-hour set
	// in one transaction.
	Save(ctx context.Context, info *admindomain.StoreInfo) error
	CountBusinessHours(ctx context.Context, storeID string) (int, error)
}

// PostRepository exposes admin operations on posts.
type PostRepository interface {
	Find(ctx context.Context, filter PostFilter, paging Paging) ([]admindomain.Post, int64, error)
	FindByID(ctx context.Context, id string) (*admindomain.Post, error)
	Create(ctx context.Context, post *admindomain.Post, categoryID string, tagIDs []string) error
	Update(ctx context.Context, post *admindomain.Post, categoryID string, tagIDs []string) error
	Delete(ctx context.Context, id string) error
}

// EventRepository exposes admin operations on events.
type EventRepository interface {
	Find(ctx context.Context, filter EventFilter, paging Paging) ([]admindomain.Event, int64, error)
	FindByID(ctx context.Context, id string) (*admindomain.Event, error)
	Create(ctx context.Context, event *admindomain.Event, categoryIDs, tagIDs []string) error
	Update(ctx context.Context, event *admindomain.Event, categoryIDs, tagIDs []string) error
	Delete(ctx context.Context, id string) error
}

// TaxonomyRepository exposes category/tag CRUD with usage counts.
type TaxonomyRepository interface {
	Categories(ctx context.Context) ([]admindomain.Category, error)
	CategoryByID(ctx context.Context, id string) (*admindomain.Category, error)
	SaveCategory(ctx context.Context, category *admindomain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	Tags(ctx context.Context) ([]admindomain.Tag, error)
	TagByID(ctx context.Context, id string) (*admindomain.Tag, error)
	SaveTag(ctx context.Context, tag *admindomain.Tag) error
	DeleteTag(ctx context.Context, id string) error
}

// CommentRepository exposes moderation operations on comments.
type CommentRepository interface {
	Find(ctx context.Context, filter CommentFilter, paging Paging) ([]admindomain.Comment, int64, error)
	FindByID(ctx context.Context, id string) (*admindomain.Comment, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}

// MediaRepository exposes the uploaded-file registry.
type MediaRepository interface {
	Find(ctx context.Context, filter MediaFilter, paging Paging) ([]admindomain.Media, int64, error)
	FindByID(ctx context.Context, id string) (*admindomain.Media, error)
	Create(ctx context.Context, media *admindomain.Media) error
	Update(ctx context.Context, media *admindomain.Media) error
	Delete(ctx context.Context, id string) error
}

// UserRepository exposes account management. パスワードハッシュはこの境界の内側に留める。
type UserRepository interface {
	Find(ctx context.Context) ([]admindomain.User, error)
	FindByID(ctx context.Context, id string) (*admindomain.User, error)
	FindByEmail(ctx context.Context, email string) (*admindomain.User, error)
	Create(ctx context.Context, user *admindomain.User, passwordHash string) error
	Update(ctx context.Context, user *admindomain.User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	PasswordHashByEmail(ctx context.Context, email string) (string, *admindomain.User, error)
	Delete(ctx context.Context, id string) error
}

// DashboardRepository supplies admin-index counters.
type DashboardRepository interface {
	Counts(ctx context.Context) (DashboardCounts, error)
}

// PostFilter expresses admin search criteria for posts.
type PostFilter struct {
	Statuses   []admindomain.PostStatus
	CategoryID string
	TagID      string
	Keyword    string
	AuthorID   string
}

// EventFilter expresses admin search criteria for events.
type EventFilter struct {
	Statuses   []admindomain.EventStatus
	CategoryID string
	TagID      string
	Keyword    string
	Upcoming   bool
}

// CommentFilter expresses moderation criteria.
type CommentFilter struct {
	// Status は "approved" / "pending" / "" (全件)。
	Status  string
	Keyword string
	PostID  string
}

// MediaFilter expresses media-library criteria.
type MediaFilter struct {
	Type    string
	Keyword string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// Offset は GORM の Offset 句に渡す値を返す。
func (p Paging) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit
}

// DashboardCounts は管理トップに表示する集計値。
type DashboardCounts struct {
	Posts           int64
	PublishedPosts  int64
	Events          int64
	UpcomingEvents  int64
	PendingComments int64
	Media           int64
	Users           int64
}

// SettingsService describes site-settings use-cases.
type SettingsService interface {
	Get(ctx context.Context) (admindomain.SiteSettings, error)
	Update(ctx context.Context, cmd UpdateSiteSettingsCommand) (*admindomain.SiteSettings, error)
	SetValue(ctx context.Context, key, value string) (bool, error)
	GetValue(ctx context.Context, key string) (string, bool, error)
	AllValues(ctx context.Context) ([]SettingEntry, error)
}

// StoreService describes store-info use-cases.
type StoreService interface {
	Get(ctx context.Context) (admindomain.StoreInfo, error)
	Update(ctx context.Context, cmd UpdateStoreInfoCommand) (*admindomain.StoreInfo, error)
}

// PostService describes admin post use-cases.
type PostService interface {
	List(ctx context.Context, filter PostFilter, paging Paging) ([]admindomain.Post, int64, error)
	Detail(ctx context.Context, id string) (*admindomain.Post, error)
	Create(ctx context.Context, cmd UpsertPostCommand) (*admindomain.Post, error)
	Update(ctx context.Context, id string, cmd UpsertPostCommand) (*admindomain.Post, error)
	Delete(ctx context.Context, id string) error
}

// EventService describes admin event use-cases.
type EventService interface {
	List(ctx context.Context, filter EventFilter, paging Paging) ([]admindomain.Event, int64, error)
	Detail(ctx context.Context, id string) (*admindomain.Event, error)
	Create(ctx context.Context, cmd UpsertEventCommand) (*admindomain.Event, error)
	Update(ctx context.Context, id string, cmd UpsertEventCommand) (*admindomain.Event, error)
	Delete(ctx context.Context, id string) error
}

// TaxonomyService describes category/tag use-cases.
type TaxonomyService interface {
	Categories(ctx context.Context) ([]admindomain.Category, error)
	CategoryDetail(ctx context.Context, id string) (*admindomain.Category, error)
	CreateCategory(ctx context.Context, cmd UpsertTaxonomyCommand) (*admindomain.Category, error)
	UpdateCategory(ctx context.Context, id string, cmd UpsertTaxonomyCommand) (*admindomain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	Tags(ctx context.Context) ([]admindomain.Tag, error)
	TagDetail(ctx context.Context, id string) (*admindomain.Tag, error)
	CreateTag(ctx context.Context, cmd UpsertTaxonomyCommand) (*admindomain.Tag, error)
	UpdateTag(ctx context.Context, id string, cmd UpsertTaxonomyCommand) (*admindomain.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

// CommentService describes moderation use-cases.
type CommentService interface {
	List(ctx context.Context, filter CommentFilter, paging Paging) ([]admindomain.Comment, int64, error)
	Detail(ctx context.Context, id string) (*admindomain.Comment, error)
	SetApproved(ctx context.Context, id string, approved bool) (*admindomain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// MediaService describes media-library use-cases.
type MediaService interface {
	List(ctx context.Context, filter MediaFilter, paging Paging) ([]admindomain.Media, int64, error)
	Detail(ctx context.Context, id string) (*admindomain.Media, error)
	Register(ctx context.Context, cmd RegisterMediaCommand) (*admindomain.Media, error)
	Update(ctx context.Context, id string, cmd UpdateMediaCommand) (*admindomain.Media, error)
	Delete(ctx context.Context, id string) error
}

// UserService describes account use-cases.
type UserService interface {
	List(ctx context.Context) ([]admindomain.User, error)
	Detail(ctx context.Context, id string) (*admindomain.User, error)
	Create(ctx context.Context, cmd CreateUserCommand) (*admindomain.User, error)
	Update(ctx context.Context, id string, cmd UpdateUserCommand) (*admindomain.User, error)
	ChangePassword(ctx context.Context, id string, plain string) error
	VerifyLogin(ctx context.Context, email, password string) (*admindomain.User, error)
	Delete(ctx context.Context, id string) error
}

// DashboardService describes the admin-index summary.
type DashboardService interface {
	Counts(ctx context.Context) (DashboardCounts, error)
}

// UpdateSiteSettingsCommand contains validated inputs for the settings upsert.
type UpdateSiteSettingsCommand struct {
	SiteName        string
	SiteDescription string
	LogoURL         string
	FaviconURL      string

	MetaTitle         string
	MetaDescription   string
	OGImageURL        string
	GoogleAnalyticsID string

	SocialMedia   admindomain.SocialMediaLinks
	Notifications admindomain.NotificationSettings
	Display       admindomain.DisplaySettings
}

// UpdateStoreInfoCommand contains validated inputs for the store upsert.
type UpdateStoreInfoCommand struct {
	Name           string
	Description    string
	Phone          string
	Email          string
	Address        admindomain.Address
	BusinessHours  []admindomain.BusinessHour
	AccessInfo     string
	ReservationURL string
}

// UpsertPostCommand contains inputs for post CRUD.
type UpsertPostCommand struct {
	Title          string
	Slug           string
	Content        string
	Excerpt        string
	Status         admindomain.PostStatus
	PublishedAt    *time.Time
	FeaturedImage  string
	SEOTitle       string
	SEODescription string
	AuthorID       string
	CategoryID     string
	TagIDs         []string
}

// UpsertEventCommand contains inputs for event CRUD.
type UpsertEventCommand struct {
	Title         string
	Slug          string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	Location      string
	Status        admindomain.EventStatus
	FeaturedImage string
	AuthorID      string
	CategoryIDs   []string
	TagIDs        []string
}

// UpsertTaxonomyCommand contains inputs for category/tag CRUD.
type UpsertTaxonomyCommand struct {
	Name        string
	Slug        string
	Description string
}

// RegisterMediaCommand contains inputs for registering an uploaded file.
type RegisterMediaCommand struct {
	Title       string
	Filename    string
	Path        string
	Type        string
	Size        int64
	Alt         string
	Description string
}

// UpdateMediaCommand contains editable media metadata.
type UpdateMediaCommand struct {
	Title       string
	Alt         string
	Description string
}

// CreateUserCommand contains inputs for account creation.
type CreateUserCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      admindomain.Role
}

// UpdateUserCommand contains editable profile fields.
type UpdateUserCommand struct {
	Email          string
	FirstName      string
	LastName       string
	ProfilePicture string
	Role           admindomain.Role
}

// SettingEntry はキー/バリュー形式の設定一覧エントリ。
type SettingEntry struct {
	Key   string
	Value string
}
