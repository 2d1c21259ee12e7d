package application

import (
	"context"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// SettingsReader abstracts read access to the site-settings singleton.
// SettingsReader は Public コンテキストからサイト設定を読み取るためのポート。
type SettingsReader interface {
	Find(ctx context.Context) (*admindomain.SiteSettings, error)
}

// StoreReader abstracts read access to the store singleton.
type StoreReader interface {
	Find(ctx context.Context) (*admindomain.StoreInfo, error)
}

// PostReader handles public post reads.
type PostReader interface {
	FindPublished(ctx context.Context, filter PostFilter, paging Paging) ([]admindomain.Post, int64, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*admindomain.Post, error)
	ApprovedComments(ctx context.Context, postID string) ([]admindomain.Comment, error)
}

// EventReader handles public event reads.
type EventReader interface {
	FindPublished(ctx context.Context, filter EventFilter, paging Paging) ([]admindomain.Event, int64, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*admindomain.Event, error)
}

// TaxonomyReader handles public category/tag reads.
type TaxonomyReader interface {
	Categories(ctx context.Context) ([]admindomain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*admindomain.Category, error)
	Tags(ctx context.Context) ([]admindomain.Tag, error)
	TagBySlug(ctx context.Context, slug string) (*admindomain.Tag, error)
}

// CommentWriter persists reader comments.
type CommentWriter interface {
	Create(ctx context.Context, comment *admindomain.Comment) error
	PostByID(ctx context.Context, postID string) (*admindomain.Post, error)
}

// ContactWriter persists contact inquiries.
type ContactWriter interface {
	Create(ctx context.Context, inquiry *admindomain.ContactInquiry) error
}

// PostFilter expresses public search criteria.
type PostFilter struct {
	CategorySlug string
	TagSlug      string
	Keyword      string
}

// EventFilter expresses public search criteria.
type EventFilter struct {
	CategorySlug string
	TagSlug      string
	Keyword      string
	Upcoming     bool
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// SiteQueryService describes read use-cases for site-wide settings.
type SiteQueryService interface {
	Settings(ctx context.Context) (admindomain.SiteSettings, error)
}

// StoreQueryService describes read use-cases for the store profile.
type StoreQueryService interface {
	Info(ctx context.Context) (admindomain.StoreInfo, error)
}

// PostQueryService describes public post use-cases.
type PostQueryService interface {
	List(ctx context.Context, filter PostFilter, paging Paging) ([]admindomain.Post, int64, error)
	DetailBySlug(ctx context.Context, slug string) (*admindomain.Post, []admindomain.Comment, error)
}

// EventQueryService describes public event use-cases.
type EventQueryService interface {
	List(ctx context.Context, filter EventFilter, paging Paging) ([]admindomain.Event, int64, error)
	DetailBySlug(ctx context.Context, slug string) (*admindomain.Event, error)
}

// TaxonomyQueryService describes public taxonomy use-cases.
type TaxonomyQueryService interface {
	Categories(ctx context.Context) ([]admindomain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*admindomain.Category, error)
	Tags(ctx context.Context) ([]admindomain.Tag, error)
	TagBySlug(ctx context.Context, slug string) (*admindomain.Tag, error)
}

// CommentCommandService describes public comment submission.
type CommentCommandService interface {
	Submit(ctx context.Context, cmd SubmitCommentCommand) (*admindomain.Comment, error)
}

// ContactCommandService describes contact-form submission.
type ContactCommandService interface {
	Submit(ctx context.Context, cmd SubmitContactCommand) (*admindomain.ContactInquiry, error)
}

// SubmitCommentCommand contains validated comment inputs.
type SubmitCommentCommand struct {
	PostID  string
	Name    string
	Email   string
	Content string
}

// SubmitContactCommand contains validated contact-form inputs.
type SubmitContactCommand struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	InquiryType string
}
