package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/config"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/metrics"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/repository"
	adminhttp "github.com/agenda23/restaurant-media-api/internal/interfaces/http/admin"
	commonhttp "github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	publichttp "github.com/agenda23/restaurant-media-api/internal/interfaces/http/public"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
// DDD の Interface 層に相当し、アプリケーションサービスをルータへ接続する責務を担う。
type Server struct {
	logger   *log.Logger
	db       *gorm.DB
	location *time.Location

	settingsService  adminapp.SettingsService
	storeService     adminapp.StoreService
	postService      adminapp.PostService
	eventService     adminapp.EventService
	taxonomyService  adminapp.TaxonomyService
	commentService   adminapp.CommentService
	mediaService     adminapp.MediaService
	userService      adminapp.UserService
	dashboardService adminapp.DashboardService

	siteQueryService     publicapp.SiteQueryService
	storeQueryService    publicapp.StoreQueryService
	postQueryService     publicapp.PostQueryService
	eventQueryService    publicapp.EventQueryService
	taxonomyQueryService publicapp.TaxonomyQueryService
	commentCommands      publicapp.CommentCommandService
	contactCommands      publicapp.ContactCommandService
	contactRepo          *repository.ContactRepository

	metrics *metrics.APIMetrics

	jwtSecret   []byte
	jwtIssuer   string
	jwtAudience string
	tokenTTL    time.Duration

	httpClient        *http.Client
	notifyEndpoint    string
	notifyDestination string

	addr           string
	allowedOrigins []string

	mediaUploadDir string
	mediaBaseURL   string
	maxUploadSize  int64
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run はHTTPサーバーを起動し、Public/Adminのルーティングやミドルウェアを組み立てる。
// インフラ初期化に限定し、ドメインロジックをここに書かないことで層の責務を守る。
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))
	router.Use(s.metricsMiddleware)

	router.Get("/healthz", s.healthHandler())
	router.Handle("/metrics", promhttp.Handler())

	// 配信ベースURLがこのサーバー配下のパスの場合のみ、アップロード済みファイルを静的配信する。
	if s.mediaUploadDir != "" && strings.HasPrefix(s.mediaBaseURL, "/") {
		prefix := strings.TrimRight(s.mediaBaseURL, "/")
		fileServer := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(s.mediaUploadDir)))
		router.Handle(prefix+"/*", fileServer)
	}

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:            s.logger,
		SiteQueries:       s.siteQueryService,
		StoreQueries:      s.storeQueryService,
		PostQueries:       s.postQueryService,
		EventQueries:      s.eventQueryService,
		TaxonomyQueries:   s.taxonomyQueryService,
		CommentCommands:   s.commentCommands,
		ContactCommands:   s.contactCommands,
		UserService:       s.userService,
		IssueToken:        s.issueToken,
		Location:          s.location,
		HTTPClient:        s.httpClient,
		NotifyEndpoint:    s.notifyEndpoint,
		NotifyDestination: s.notifyDestination,
		Failures:          s.contactRepo,
		Metrics:           s.metrics,
	})
	publicHandler.Register(router, s.authMiddleware)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:           s.logger,
		SettingsService:  s.settingsService,
		StoreService:     s.storeService,
		PostService:      s.postService,
		EventService:     s.eventService,
		TaxonomyService:  s.taxonomyService,
		CommentService:   s.commentService,
		MediaService:     s.mediaService,
		UserService:      s.userService,
		DashboardService: s.dashboardService,
		Metrics:          s.metrics,
		MediaBaseURL:     s.mediaBaseURL,
		MaxUploadSize:    s.maxUploadSize,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.requireContentManager)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// metricsMiddleware はルートパターン単位でリクエスト数とレイテンシを記録する。
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}
		s.metrics.RecordRequest(r.Method, pattern, strconv.Itoa(ww.Status()), time.Since(start).Seconds())
	})
}

// healthHandler は Postgres への疎通確認を行い、監視系からのヘルスチェック要求に応える。
// ドメインの状態ではなくインフラ状態のみを返す設計。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		sqlDB, err := s.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// authMiddleware は Authorization ヘッダーから JWT を検証し、認証済みユーザーをコンテキストへ詰める。
// Public/Admin 双方のルートで利用するため Server に集約している。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization ヘッダーがありません"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Bearer トークンを指定してください"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "アクセストークンが空です"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:    claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
			Role:  claims.Role,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireContentManager は管理APIを ADMIN/EDITOR ロールに制限する。
func (s *Server) requireContentManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := commonhttp.UserFromContext(r.Context())
		if !ok || !admindomain.Role(user.Role).CanManageContent() {
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "この操作を行う権限がありません"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// parseAuthToken は署名検証と Issuer/Audience の整合性を確認する。
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtSecret) == 0 {
		return nil, fmt.Errorf("認証設定が構成されていません")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.jwtSecret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}

	if s.jwtIssuer != "" && claims.Issuer != s.jwtIssuer {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}

	return claims, nil
}

// issueToken はログイン成功時に HS256 署名のアクセストークンを発行する。
func (s *Server) issueToken(userID, email, name, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := &authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.jwtIssuer,
			Audience:  jwt.ClaimStrings{s.jwtAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  name,
		Role:  role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// contains は Audience 等の検証で利用する単純な包含チェック。
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// writeJSON は JSON レスポンスの共通書き込み処理。
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// shutdown は DB コネクションプールを閉じ、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(_ context.Context) {
	sqlDB, err := s.db.DB()
	if err != nil {
		s.logger.Printf("DB ハンドルの取得に失敗: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		s.logger.Printf("DB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
// アプリケーションの外側で扱うべき OS 依存の関心事をここへ閉じ込める。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と GORM クライアントを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
// 依存解決の起点となるファクトリとして機能する。
func New(cfg *config.Config, db *gorm.DB) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("JST", 9*60*60)
		cfg.ServerLog.Printf("タイムゾーン %s の読み込みに失敗: %v, JST を使用します", cfg.Timezone, err)
	}

	srv := &Server{
		logger:            cfg.ServerLog,
		db:                db,
		location:          loc,
		metrics:           metrics.NewAPIMetrics(),
		jwtSecret:         []byte(cfg.Auth.JWTSecret),
		jwtIssuer:         cfg.Auth.JWTIssuer,
		jwtAudience:       cfg.Auth.JWTAudience,
		tokenTTL:          cfg.Auth.TokenTTL,
		httpClient:        &http.Client{Timeout: cfg.Notify.Timeout},
		notifyEndpoint:    strings.TrimRight(strings.TrimSpace(cfg.Notify.Endpoint), "/"),
		notifyDestination: cfg.Notify.Destination,
		addr:              cfg.Addr,
		allowedOrigins:    append([]string(nil), cfg.AllowedOrigins...),
		mediaUploadDir:    cfg.Media.UploadDir,
		mediaBaseURL:      cfg.Media.PublicBaseURL,
		maxUploadSize:     cfg.Media.MaxUploadSize,
	}

	settingsRepo := repository.NewSettingsRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	postRepo := repository.NewPostRepository(db)
	eventRepo := repository.NewEventRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	userRepo := repository.NewUserRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	srv.contactRepo = repository.NewContactRepository(db)

	srv.settingsService = adminapp.NewSettingsService(settingsRepo)
	srv.storeService = adminapp.NewStoreService(storeRepo)
	srv.postService = adminapp.NewPostService(postRepo)
	srv.eventService = adminapp.NewEventService(eventRepo)
	srv.taxonomyService = adminapp.NewTaxonomyService(taxonomyRepo)
	srv.commentService = adminapp.NewCommentService(commentRepo)
	srv.mediaService = adminapp.NewMediaService(mediaRepo)
	srv.userService = adminapp.NewUserService(userRepo)
	srv.dashboardService = adminapp.NewDashboardService(dashboardRepo)

	srv.siteQueryService = publicapp.NewSiteQueryService(settingsRepo)
	srv.storeQueryService = publicapp.NewStoreQueryService(storeRepo)
	srv.postQueryService = publicapp.NewPostQueryService(postRepo, settingsRepo)
	srv.eventQueryService = publicapp.NewEventQueryService(eventRepo)
	srv.taxonomyQueryService = publicapp.NewTaxonomyQueryService(taxonomyRepo)
	srv.commentCommands = publicapp.NewCommentCommandService(commentRepo, settingsRepo)
	srv.contactCommands = publicapp.NewContactCommandService(srv.contactRepo)

	return srv
}
