package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr     string `env:"HTTP_ADDR" env-default:":8080"`
	Timezone string `env:"TIMEZONE" env-default:"Asia/Tokyo"`

	Database DatabaseConfig
	Auth     AuthConfig
	Media    MediaConfig
	Notify   NotifyConfig

	AllowedOrigins []string `env:"API_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`

	ServerLog *log.Logger
}

// DatabaseConfig defines the primary Postgres connection.
type DatabaseConfig struct {
	DSN            string        `env:"DATABASE_URL" env-default:"host=localhost user=postgres dbname=webmedia port=5432 sslmode=disable"`
	ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" env-default:"10s"`
}

// AuthConfig defines JWT issuing/verification parameters for the admin API.
type AuthConfig struct {
	JWTSecret   string        `env:"AUTH_JWT_SECRET"`
	JWTIssuer   string        `env:"AUTH_JWT_ISSUER" env-default:"restaurant-media-api"`
	JWTAudience string        `env:"AUTH_JWT_AUDIENCE" env-default:"restaurant-media-admin"`
	TokenTTL    time.Duration `env:"AUTH_TOKEN_TTL" env-default:"24h"`
}

// MediaConfig defines where uploaded files are stored and served from.
type MediaConfig struct {
	UploadDir     string `env:"MEDIA_UPLOAD_DIR" env-default:"./uploads"`
	PublicBaseURL string `env:"MEDIA_BASE_URL" env-default:"/uploads"`
	MaxUploadSize int64  `env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// NotifyConfig defines the messenger gateway used for admin notifications.
type NotifyConfig struct {
	Endpoint    string        `env:"MESSENGER_GATEWAY_URL"`
	Destination string        `env:"MESSENGER_GATEWAY_DESTINATION" env-default:"line"`
	Timeout     time.Duration `env:"MESSENGER_GATEWAY_TIMEOUT" env-default:"3s"`
}

// MustLoad は .env と環境変数から設定を読み込む。必須項目が欠けている場合はプロセスを終了する。
func MustLoad() *Config {
	// .env はローカル開発用。存在しなければ無視する。
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	cfg.ServerLog = log.New(os.Stdout, "[restaurant-media-api] ", log.LstdFlags|log.Lshortfile)
	return &cfg
}
