package application

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/jaevor/go-nanoid"
)

// newSlugID は日本語タイトルなどスラグ化できない文字列のフォールバック。
var newSlugID, _ = nanoid.CustomASCII("abcdefghijklmnopqrstuvwxyz0123456789", 12)

// newMediaName は保存先パス未指定のメディアに割り当てる格納名。
var newMediaName, _ = nanoid.CustomASCII("abcdefghijklmnopqrstuvwxyz0123456789", 16)

// slugFor はタイトルからスラグを生成し、空になる場合はランダムIDで代替する。
func slugFor(title string) string {
	if slug := admindomain.GenerateSlug(title); slug != "" {
		return slug
	}
	return newSlugID()
}

// postService implements PostService.
type postService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) List(ctx context.Context, filter PostFilter, paging Paging) ([]admindomain.Post, int64, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *postService) Detail(ctx context.Context, id string) (*admindomain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, cmd UpsertPostCommand) (*admindomain.Post, error) {
	post := postFromCommand(cmd)
	// 公開ステータスで公開日時未指定なら現在時刻を補う。
	if post.Status == admindomain.PostPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.repo.Create(ctx, post, cmd.CategoryID, cmd.TagIDs); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, cmd UpsertPostCommand) (*admindomain.Post, error) {
	post := postFromCommand(cmd)
	post.ID = id
	if post.Status == admindomain.PostPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.repo.Update(ctx, post, cmd.CategoryID, cmd.TagIDs); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func postFromCommand(cmd UpsertPostCommand) *admindomain.Post {
	slug := cmd.Slug
	if slug == "" {
		slug = slugFor(cmd.Title)
	}
	return &admindomain.Post{
		Title:          cmd.Title,
		Slug:           slug,
		Content:        cmd.Content,
		Excerpt:        cmd.Excerpt,
		Status:         cmd.Status,
		PublishedAt:    cmd.PublishedAt,
		FeaturedImage:  cmd.FeaturedImage,
		SEOTitle:       cmd.SEOTitle,
		SEODescription: cmd.SEODescription,
		Author:         admindomain.User{ID: cmd.AuthorID},
	}
}

// eventService implements EventService.
type eventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context, filter EventFilter, paging Paging) ([]admindomain.Event, int64, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *eventService) Detail(ctx context.Context, id string) (*admindomain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, cmd UpsertEventCommand) (*admindomain.Event, error) {
	event := eventFromCommand(cmd)
	if err := s.repo.Create(ctx, event, cmd.CategoryIDs, cmd.TagIDs); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id string, cmd UpsertEventCommand) (*admindomain.Event, error) {
	event := eventFromCommand(cmd)
	event.ID = id
	if err := s.repo.Update(ctx, event, cmd.CategoryIDs, cmd.TagIDs); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func eventFromCommand(cmd UpsertEventCommand) *admindomain.Event {
	slug := cmd.Slug
	if slug == "" {
		slug = slugFor(cmd.Title)
	}
	return &admindomain.Event{
		Title:         cmd.Title,
		Slug:          slug,
		Description:   cmd.Description,
		StartDate:     cmd.StartDate,
		EndDate:       cmd.EndDate,
		Location:      cmd.Location,
		Status:        cmd.Status,
		FeaturedImage: cmd.FeaturedImage,
		Author:        admindomain.User{ID: cmd.AuthorID},
	}
}

// taxonomyService implements TaxonomyService.
type taxonomyService struct {
	repo TaxonomyRepository
}

func NewTaxonomyService(repo TaxonomyRepository) TaxonomyService {
	return &taxonomyService{repo: repo}
}

func (s *taxonomyService) Categories(ctx context.Context) ([]admindomain.Category, error) {
	return s.repo.Categories(ctx)
}

func (s *taxonomyService) CategoryDetail(ctx context.Context, id string) (*admindomain.Category, error) {
	return s.repo.CategoryByID(ctx, id)
}

func (s *taxonomyService) CreateCategory(ctx context.Context, cmd UpsertTaxonomyCommand) (*admindomain.Category, error) {
	category := &admindomain.Category{
		Name:        cmd.Name,
		Slug:        taxonomySlug(cmd),
		Description: cmd.Description,
	}
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) UpdateCategory(ctx context.Context, id string, cmd UpsertTaxonomyCommand) (*admindomain.Category, error) {
	category := &admindomain.Category{
		ID:          id,
		Name:        cmd.Name,
		Slug:        taxonomySlug(cmd),
		Description: cmd.Description,
	}
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *taxonomyService) Tags(ctx context.Context) ([]admindomain.Tag, error) {
	return s.repo.Tags(ctx)
}

func (s *taxonomyService) TagDetail(ctx context.Context, id string) (*admindomain.Tag, error) {
	return s.repo.TagByID(ctx, id)
}

func (s *taxonomyService) CreateTag(ctx context.Context, cmd UpsertTaxonomyCommand) (*admindomain.Tag, error) {
	tag := &admindomain.Tag{Name: cmd.Name, Slug: taxonomySlug(cmd)}
	if err := s.repo.SaveTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *taxonomyService) UpdateTag(ctx context.Context, id string, cmd UpsertTaxonomyCommand) (*admindomain.Tag, error) {
	tag := &admindomain.Tag{ID: id, Name: cmd.Name, Slug: taxonomySlug(cmd)}
	if err := s.repo.SaveTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *taxonomyService) DeleteTag(ctx context.Context, id string) error {
	return s.repo.DeleteTag(ctx, id)
}

func taxonomySlug(cmd UpsertTaxonomyCommand) string {
	if cmd.Slug != "" {
		return cmd.Slug
	}
	return slugFor(cmd.Name)
}

// commentService implements CommentService.
type commentService struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) List(ctx context.Context, filter CommentFilter, paging Paging) ([]admindomain.Comment, int64, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *commentService) Detail(ctx context.Context, id string) (*admindomain.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *commentService) SetApproved(ctx context.Context, id string, approved bool) (*admindomain.Comment, error) {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// mediaService implements MediaService.
type mediaService struct {
	repo MediaRepository
}

func NewMediaService(repo MediaRepository) MediaService {
	return &mediaService{repo: repo}
}

func (s *mediaService) List(ctx context.Context, filter MediaFilter, paging Paging) ([]admindomain.Media, int64, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *mediaService) Detail(ctx context.Context, id string) (*admindomain.Media, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *mediaService) Register(ctx context.Context, cmd RegisterMediaCommand) (*admindomain.Media, error) {
	media := &admindomain.Media{
		Title:       cmd.Title,
		Filename:    cmd.Filename,
		Path:        cmd.Path,
		Type:        cmd.Type,
		Size:        cmd.Size,
		Alt:         cmd.Alt,
		Description: cmd.Description,
	}
	// 保存先未指定の場合は元ファイル名の拡張子を引き継いだ格納名を生成する。
	if media.Path == "" {
		media.Path = newMediaName() + strings.ToLower(filepath.Ext(cmd.Filename))
	}
	if err := s.repo.Create(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *mediaService) Update(ctx context.Context, id string, cmd UpdateMediaCommand) (*admindomain.Media, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.Title = cmd.Title
	existing.Alt = cmd.Alt
	existing.Description = cmd.Description
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// dashboardService implements DashboardService.
type dashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Counts(ctx context.Context) (DashboardCounts, error) {
	return s.repo.Counts(ctx)
}
