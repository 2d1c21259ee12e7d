package application

import (
	"context"
	"errors"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// ErrCommentsDisabled はサイト設定でコメント受付が無効な場合に返る。
var ErrCommentsDisabled = errors.New("コメントの受け付けは現在停止しています")

// ErrPostNotFound は公開記事が見つからない場合に返る。
var ErrPostNotFound = errors.New("記事が見つかりません")

// postQueryService implements PostQueryService.
type postQueryService struct {
	posts    PostReader
	settings SettingsReader
}

func NewPostQueryService(posts PostReader, settings SettingsReader) PostQueryService {
	return &postQueryService{posts: posts, settings: settings}
}

// List は公開済み記事の一覧を返す。1ページ件数が未指定の場合はサイト設定の postsPerPage に従う。
func (s *postQueryService) List(ctx context.Context, filter PostFilter, paging Paging) ([]admindomain.Post, int64, error) {
	if paging.Limit <= 0 {
		paging.Limit = admindomain.DefaultPostsPerPage
		if settings, err := s.settings.Find(ctx); err == nil && settings != nil && settings.Display.PostsPerPage > 0 {
			paging.Limit = settings.Display.PostsPerPage
		}
	}
	return s.posts.FindPublished(ctx, filter, paging)
}

func (s *postQueryService) DetailBySlug(ctx context.Context, slug string) (*admindomain.Post, []admindomain.Comment, error) {
	post, err := s.posts.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}
	comments, err := s.posts.ApprovedComments(ctx, post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// eventQueryService implements EventQueryService.
type eventQueryService struct {
	events EventReader
}

func NewEventQueryService(events EventReader) EventQueryService {
	return &eventQueryService{events: events}
}

func (s *eventQueryService) List(ctx context.Context, filter EventFilter, paging Paging) ([]admindomain.Event, int64, error) {
	if paging.Limit <= 0 {
		paging.Limit = admindomain.DefaultPostsPerPage
	}
	return s.events.FindPublished(ctx, filter, paging)
}

func (s *eventQueryService) DetailBySlug(ctx context.Context, slug string) (*admindomain.Event, error) {
	return s.events.FindPublishedBySlug(ctx, slug)
}

// taxonomyQueryService implements TaxonomyQueryService.
type taxonomyQueryService struct {
	taxonomy TaxonomyReader
}

func NewTaxonomyQueryService(taxonomy TaxonomyReader) TaxonomyQueryService {
	return &taxonomyQueryService{taxonomy: taxonomy}
}

func (s *taxonomyQueryService) Categories(ctx context.Context) ([]admindomain.Category, error) {
	return s.taxonomy.Categories(ctx)
}

func (s *taxonomyQueryService) CategoryBySlug(ctx context.Context, slug string) (*admindomain.Category, error) {
	return s.taxonomy.CategoryBySlug(ctx, slug)
}

func (s *taxonomyQueryService) Tags(ctx context.Context) ([]admindomain.Tag, error) {
	return s.taxonomy.Tags(ctx)
}

func (s *taxonomyQueryService) TagBySlug(ctx context.Context, slug string) (*admindomain.Tag, error) {
	return s.taxonomy.TagBySlug(ctx, slug)
}

// commentCommandService implements CommentCommandService.
type commentCommandService struct {
	comments CommentWriter
	settings SettingsReader
}

func NewCommentCommandService(comments CommentWriter, settings SettingsReader) CommentCommandService {
	return &commentCommandService{comments: comments, settings: settings}
}

// Submit は読者コメントを未承認状態で保存する。
// サイト設定でコメントが無効化されている場合は受け付けない。
func (s *commentCommandService) Submit(ctx context.Context, cmd SubmitCommentCommand) (*admindomain.Comment, error) {
	settings, err := s.settings.Find(ctx)
	if err != nil {
		return nil, err
	}
	enabled := true
	if settings != nil {
		enabled = settings.Display.EnableComments
	}
	if !enabled {
		return nil, ErrCommentsDisabled
	}

	post, err := s.comments.PostByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != admindomain.PostPublished {
		return nil, ErrPostNotFound
	}

	comment := &admindomain.Comment{
		PostID:     cmd.PostID,
		PostTitle:  post.Title,
		PostSlug:   post.Slug,
		Name:       cmd.Name,
		Email:      cmd.Email,
		Content:    cmd.Content,
		IsApproved: false,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// contactCommandService implements ContactCommandService.
type contactCommandService struct {
	contacts ContactWriter
}

func NewContactCommandService(contacts ContactWriter) ContactCommandService {
	return &contactCommandService{contacts: contacts}
}

func (s *contactCommandService) Submit(ctx context.Context, cmd SubmitContactCommand) (*admindomain.ContactInquiry, error) {
	inquiry := &admindomain.ContactInquiry{
		Name:        cmd.Name,
		Email:       cmd.Email,
		Subject:     cmd.Subject,
		Message:     cmd.Message,
		InquiryType: cmd.InquiryType,
	}
	if err := s.contacts.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}
