package admin

import (
	"log"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/metrics"
	"github.com/go-chi/chi/v5"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger           *log.Logger
	settingsService  adminapp.SettingsService
	storeService     adminapp.StoreService
	postService      adminapp.PostService
	eventService     adminapp.EventService
	taxonomyService  adminapp.TaxonomyService
	commentService   adminapp.CommentService
	mediaService     adminapp.MediaService
	userService      adminapp.UserService
	dashboardService adminapp.DashboardService
	metrics          *metrics.APIMetrics
	mediaBaseURL     string
	maxUploadSize    int64
}

// Config provides dependencies for Handler.
type Config struct {
	Logger           *log.Logger
	SettingsService  adminapp.SettingsService
	StoreService     adminapp.StoreService
	PostService      adminapp.PostService
	EventService     adminapp.EventService
	TaxonomyService  adminapp.TaxonomyService
	CommentService   adminapp.CommentService
	MediaService     adminapp.MediaService
	UserService      adminapp.UserService
	DashboardService adminapp.DashboardService
	Metrics          *metrics.APIMetrics
	MediaBaseURL     string
	MaxUploadSize    int64
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:           cfg.Logger,
		settingsService:  cfg.SettingsService,
		storeService:     cfg.StoreService,
		postService:      cfg.PostService,
		eventService:     cfg.EventService,
		taxonomyService:  cfg.TaxonomyService,
		commentService:   cfg.CommentService,
		mediaService:     cfg.MediaService,
		userService:      cfg.UserService,
		dashboardService: cfg.DashboardService,
		metrics:          cfg.Metrics,
		mediaBaseURL:     cfg.MediaBaseURL,
		maxUploadSize:    cfg.MaxUploadSize,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard", h.dashboardHandler())

	r.Get("/settings", h.settingsGetHandler())
	r.Put("/settings", h.settingsUpdateHandler())
	r.Get("/settings/values", h.settingValuesHandler())
	r.Get("/settings/values/{key}", h.settingValueGetHandler())
	r.Put("/settings/values/{key}", h.settingValueSetHandler())
	r.Delete("/settings/values/{key}", h.settingValueDeleteHandler())

	r.Get("/store", h.storeGetHandler())
	r.Put("/store", h.storeUpdateHandler())

	r.Get("/posts", h.postListHandler())
	r.Get("/posts/{id}", h.postDetailHandler())
	r.Post("/posts", h.postCreateHandler())
	r.Put("/posts/{id}", h.postUpdateHandler())
	r.Delete("/posts/{id}", h.postDeleteHandler())

	r.Get("/events", h.eventListHandler())
	r.Get("/events/{id}", h.eventDetailHandler())
	r.Post("/events", h.eventCreateHandler())
	r.Put("/events/{id}", h.eventUpdateHandler())
	r.Delete("/events/{id}", h.eventDeleteHandler())

	r.Get("/categories", h.categoryListHandler())
	r.Get("/categories/{id}", h.categoryDetailHandler())
	r.Post("/categories", h.categoryCreateHandler())
	r.Put("/categories/{id}", h.categoryUpdateHandler())
	r.Delete("/categories/{id}", h.categoryDeleteHandler())

	r.Get("/tags", h.tagListHandler())
	r.Get("/tags/{id}", h.tagDetailHandler())
	r.Post("/tags", h.tagCreateHandler())
	r.Put("/tags/{id}", h.tagUpdateHandler())
	r.Delete("/tags/{id}", h.tagDeleteHandler())

	r.Get("/comments", h.commentListHandler())
	r.Get("/comments/{id}", h.commentDetailHandler())
	r.Patch("/comments/{id}/approval", h.commentApprovalHandler())
	r.Delete("/comments/{id}", h.commentDeleteHandler())

	r.Get("/media", h.mediaListHandler())
	r.Get("/media/{id}", h.mediaDetailHandler())
	r.Post("/media", h.mediaRegisterHandler())
	r.Put("/media/{id}", h.mediaUpdateHandler())
	r.Delete("/media/{id}", h.mediaDeleteHandler())

	r.Get("/users", h.userListHandler())
	r.Get("/users/{id}", h.userDetailHandler())
	r.Post("/users", h.userCreateHandler())
	r.Put("/users/{id}", h.userUpdateHandler())
	r.Put("/users/{id}/password", h.userPasswordHandler())
	r.Delete("/users/{id}", h.userDeleteHandler())
}
