package domain

import (
	"fmt"
	"strings"
	"time"
)

// PostStatus は記事の公開状態。
type PostStatus string

const (
	PostDraft     PostStatus = "DRAFT"
	PostPublished PostStatus = "PUBLISHED"
	PostScheduled PostStatus = "SCHEDULED"
)

func NewPostStatus(value string) (PostStatus, error) {
	switch PostStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case PostDraft:
		return PostDraft, nil
	case PostPublished:
		return PostPublished, nil
	case PostScheduled:
		return PostScheduled, nil
	}
	return "", fmt.Errorf("invalid post status: %s", value)
}

// EventStatus はイベントの公開状態。記事と違い中止(CANCELLED)を持つ。
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPublished EventStatus = "PUBLISHED"
	EventScheduled EventStatus = "SCHEDULED"
	EventCancelled EventStatus = "CANCELLED"
)

func NewEventStatus(value string) (EventStatus, error) {
	switch EventStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case EventDraft:
		return EventDraft, nil
	case EventPublished:
		return EventPublished, nil
	case EventScheduled:
		return EventScheduled, nil
	case EventCancelled:
		return EventCancelled, nil
	}
	return "", fmt.Errorf("invalid event status: %s", value)
}

// Post aggregates an article with its taxonomy and author attribution.
type Post struct {
	ID             string
	Title          string
	Slug           string
	Content        string
	Excerpt        string
	Status         PostStatus
	PublishedAt    *time.Time
	FeaturedImage  string
	SEOTitle       string
	SEODescription string
	Author         User
	Category       *Category
	Tags           []Tag
	CommentCount   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Event aggregates a scheduled happening at the restaurant.
type Event struct {
	ID            string
	Title         string
	Slug          string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	Location      string
	Status        EventStatus
	FeaturedImage string
	Author        User
	Categories    []Category
	Tags          []Tag
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Category groups posts and events; PostCount/EventCount は一覧画面の利用数表示用。
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	PostCount   int
	EventCount  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is free-form taxonomy shared by posts and events.
type Tag struct {
	ID         string
	Name       string
	Slug       string
	PostCount  int
	EventCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Comment is a reader comment awaiting moderation.
type Comment struct {
	ID         string
	PostID     string
	PostTitle  string
	PostSlug   string
	Name       string
	Email      string
	Content    string
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Media is an uploaded file's registry entry.
type Media struct {
	ID          string
	Title       string
	Filename    string
	Path        string
	Type        string
	Size        int64
	Alt         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactInquiry はお問い合わせフォームの受信記録。
type ContactInquiry struct {
	ID          string
	Name        string
	Email       string
	Subject     string
	Message     string
	InquiryType string
	CreatedAt   time.Time
}

// GenerateSlug はタイトル文字列をURLスラグへ変換する。
func GenerateSlug(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
