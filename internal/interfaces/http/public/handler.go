package public

import (
	"log"
	"net/http"
	"time"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/metrics"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/repository"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
	"github.com/go-chi/chi/v5"
)

// TokenIssuer は認証成功時にアクセストークンを発行する。
type TokenIssuer func(userID, email, name, role string) (string, time.Time, error)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger          *log.Logger
	siteQueries     publicapp.SiteQueryService
	storeQueries    publicapp.StoreQueryService
	postQueries     publicapp.PostQueryService
	eventQueries    publicapp.EventQueryService
	taxonomyQueries publicapp.TaxonomyQueryService
	commentCommands publicapp.CommentCommandService
	contactCommands publicapp.ContactCommandService
	userService     adminapp.UserService
	issueToken      TokenIssuer
	location        *time.Location

	httpClient        *http.Client
	notifyEndpoint    string
	notifyDestination string
	failures          *repository.ContactRepository
	metrics           *metrics.APIMetrics
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger          *log.Logger
	SiteQueries     publicapp.SiteQueryService
	StoreQueries    publicapp.StoreQueryService
	PostQueries     publicapp.PostQueryService
	EventQueries    publicapp.EventQueryService
	TaxonomyQueries publicapp.TaxonomyQueryService
	CommentCommands publicapp.CommentCommandService
	ContactCommands publicapp.ContactCommandService
	UserService     adminapp.UserService
	IssueToken      TokenIssuer
	Location        *time.Location

	HTTPClient        *http.Client
	NotifyEndpoint    string
	NotifyDestination string
	Failures          *repository.ContactRepository
	Metrics           *metrics.APIMetrics
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:            cfg.Logger,
		siteQueries:       cfg.SiteQueries,
		storeQueries:      cfg.StoreQueries,
		postQueries:       cfg.PostQueries,
		eventQueries:      cfg.EventQueries,
		taxonomyQueries:   cfg.TaxonomyQueries,
		commentCommands:   cfg.CommentCommands,
		contactCommands:   cfg.ContactCommands,
		userService:       cfg.UserService,
		issueToken:        cfg.IssueToken,
		location:          cfg.Location,
		httpClient:        cfg.HTTPClient,
		notifyEndpoint:    cfg.NotifyEndpoint,
		notifyDestination: cfg.NotifyDestination,
		failures:          cfg.Failures,
		metrics:           cfg.Metrics,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/site", h.siteSettingsHandler())
	r.Get("/store", h.storeInfoHandler())

	r.Get("/posts", h.postListHandler())
	r.Get("/posts/{slug}", h.postDetailHandler())
	r.Post("/posts/{slug}/comments", h.commentCreateHandler())

	r.Get("/events", h.eventListHandler())
	r.Get("/events/{slug}", h.eventDetailHandler())

	r.Get("/categories", h.categoryListHandler())
	r.Get("/categories/{slug}", h.categoryDetailHandler())
	r.Get("/tags", h.tagListHandler())
	r.Get("/tags/{slug}", h.tagDetailHandler())

	r.Post("/contact", h.contactSubmitHandler())

	r.Post("/auth/login", h.loginHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}
