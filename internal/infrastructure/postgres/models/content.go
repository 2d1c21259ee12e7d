package models

import "time"

// PostModel は記事行。カテゴリは単一参照、タグは多対多。
type PostModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Title          string `gorm:"not null"`
	Slug           string `gorm:"uniqueIndex;not null"`
	Content        string
	Excerpt        string
	Status         string `gorm:"index;not null;default:'DRAFT'"`
	PublishedAt    *time.Time
	FeaturedImage  string
	SEOTitle       string `gorm:"column:seo_title"`
	SEODescription string `gorm:"column:seo_description"`

	AuthorID   string     `gorm:"index;not null"`
	Author     *UserModel `gorm:"foreignKey:AuthorID"`
	CategoryID *string
	Category   *CategoryModel `gorm:"foreignKey:CategoryID"`
	Tags       []TagModel     `gorm:"many2many:post_tags"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

// EventModel はイベント行。カテゴリもタグも多対多。
type EventModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Title         string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Description   string
	StartDate     time.Time `gorm:"index;not null"`
	EndDate       *time.Time
	Location      string
	Status        string `gorm:"index;not null;default:'DRAFT'"`
	FeaturedImage string

	AuthorID   string          `gorm:"index;not null"`
	Author     *UserModel      `gorm:"foreignKey:AuthorID"`
	Categories []CategoryModel `gorm:"many2many:event_categories"`
	Tags       []TagModel      `gorm:"many2many:event_tags"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EventModel) TableName() string {
	return "events"
}

type CategoryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

type TagModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TagModel) TableName() string {
	return "tags"
}

// CommentModel は読者コメント。承認されるまで公開側には出ない。
type CommentModel struct {
	ID         string     `gorm:"primaryKey;type:uuid"`
	PostID     string     `gorm:"index;not null"`
	Post       *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Name       string     `gorm:"not null"`
	Email      string     `gorm:"not null"`
	Content    string     `gorm:"not null"`
	IsApproved bool       `gorm:"index;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

// MediaModel はアップロード済みファイルのレジストリ。
type MediaModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Title       string `gorm:"not null"`
	Filename    string `gorm:"not null"`
	Path        string `gorm:"not null"`
	Type        string `gorm:"index"`
	Size        int64
	Alt         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MediaModel) TableName() string {
	return "media"
}

// ContactInquiryModel はお問い合わせフォームの受信記録。
type ContactInquiryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Subject     string
	Message     string
	InquiryType string
	CreatedAt   time.Time
}

func (ContactInquiryModel) TableName() string {
	return "contact_inquiries"
}

// NotificationFailureModel は管理者通知の送信失敗を後追い再送用に残す。
type NotificationFailureModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Target      string `gorm:"index"`
	Payload     string
	Error       string
	Attempts    int
	Status      string `gorm:"index;default:'pending'"`
	CreatedAt   time.Time
	LastTriedAt time.Time
}

func (NotificationFailureModel) TableName() string {
	return "notification_failures"
}
