package public

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"testing"
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostQueries struct {
	post *admindomain.Post
}

func (s *stubPostQueries) List(ctx context.Context, filter publicapp.PostFilter, paging publicapp.Paging) ([]admindomain.Post, int64, error) {
	return nil, 0, nil
}

func (s *stubPostQueries) DetailBySlug(ctx context.Context, slug string) (*admindomain.Post, []admindomain.Comment, error) {
	if s.post == nil || s.post.Slug != slug {
		return nil, nil, publicapp.ErrPostNotFound
	}
	return s.post, nil, nil
}

type stubCommentCommands struct {
	submitted []publicapp.SubmitCommentCommand
	err       error
}

func (s *stubCommentCommands) Submit(ctx context.Context, cmd publicapp.SubmitCommentCommand) (*admindomain.Comment, error) {
	s.submitted = append(s.submitted, cmd)
	if s.err != nil {
		return nil, s.err
	}
	return &admindomain.Comment{
		ID:        "cmt-1",
		PostID:    cmd.PostID,
		Name:      cmd.Name,
		Email:     cmd.Email,
		Content:   cmd.Content,
		CreatedAt: time.Now(),
	}, nil
}

func newCommentTestRouter(posts *stubPostQueries, comments *stubCommentCommands) chi.Router {
	h := NewHandler(Config{
		Logger:          log.New(io.Discard, "", 0),
		SiteQueries:     silentSiteQueries(),
		PostQueries:     posts,
		CommentCommands: comments,
	})
	r := chi.NewRouter()
	r.Post("/posts/{slug}/comments", h.commentCreateHandler())
	return r
}

func commentForm() url.Values {
	form := url.Values{}
	form.Set("name", "佐藤 花子")
	form.Set("email", "hanako@example.com")
	form.Set("content", "先日のディナー、とても美味しかったです。")
	return form
}

func TestCommentCreateHandlerSuccess(t *testing.T) {
	posts := &stubPostQueries{post: &admindomain.Post{ID: "post-1", Slug: "autumn-menu", Title: "秋の新メニュー"}}
	comments := &stubCommentCommands{}
	router := newCommentTestRouter(posts, comments)

	rec := postFormRequest(router.ServeHTTP, "/posts/autumn-menu/comments", commentForm())

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, comments.submitted, 1)
	assert.Equal(t, "post-1", comments.submitted[0].PostID)
	assert.Equal(t, "佐藤 花子", comments.submitted[0].Name)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "コメントを受け付けました。承認後に公開されます。", body.Message)
	assert.Equal(t, "cmt-1", body.Data.ID)
	assert.Equal(t, "佐藤 花子", body.Data.Name)
}

func TestCommentCreateHandlerValidation(t *testing.T) {
	posts := &stubPostQueries{post: &admindomain.Post{ID: "post-1", Slug: "autumn-menu"}}
	comments := &stubCommentCommands{}
	router := newCommentTestRouter(posts, comments)

	form := url.Values{}
	form.Set("email", "hanako at example")

	rec := postFormRequest(router.ServeHTTP, "/posts/autumn-menu/comments", form)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, comments.submitted)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["name"], "お名前を入力してください")
	assert.Contains(t, body.Errors["email"], "有効なメールアドレスを入力してください")
	assert.Contains(t, body.Errors["content"], "コメント内容を入力してください")
}

func TestCommentCreateHandlerUnknownPost(t *testing.T) {
	posts := &stubPostQueries{}
	comments := &stubCommentCommands{}
	router := newCommentTestRouter(posts, comments)

	rec := postFormRequest(router.ServeHTTP, "/posts/no-such-post/comments", commentForm())

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, comments.submitted)
}

func TestCommentCreateHandlerCommentsDisabled(t *testing.T) {
	posts := &stubPostQueries{post: &admindomain.Post{ID: "post-1", Slug: "autumn-menu"}}
	comments := &stubCommentCommands{err: publicapp.ErrCommentsDisabled}
	router := newCommentTestRouter(posts, comments)

	rec := postFormRequest(router.ServeHTTP, "/posts/autumn-menu/comments", commentForm())

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "コメントの受け付けは現在停止しています", body.Message)
}

func TestCheckCommentEmail(t *testing.T) {
	cases := []struct {
		name    string
		email   string
		message string
	}{
		{"正しいアドレス", "hanako@example.com", ""},
		{"未入力", "", "メールアドレスを入力してください"},
		{"アットマーク重複", "foo@@bar.com", "有効なメールアドレスを入力してください"},
		{"空白を含む", "hanako at example", "有効なメールアドレスを入力してください"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			errs := form.FieldErrors{}
			checkCommentEmail(errs, c.email)

			if c.message == "" {
				assert.False(t, errs.HasErrors())
				return
			}
			assert.Contains(t, errs["email"], c.message)
		})
	}
}
