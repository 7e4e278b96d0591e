package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Bootstrap BootstrapConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Audit     AuditConfig

	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES, default=15728640"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET,      default=dev-secret-change-me"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,       default=8h"`
	TokenTransport string        `env:"TOKEN_TRANSPORT, default=cookie"`
	CookieName     string        `env:"COOKIE_NAME,     default=mmp_token"`
	BcryptCost     int           `env:"BCRYPT_COST,     default=10"`

	LoginMaxFailures int           `env:"LOGIN_MAX_FAILURES, default=5"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

type BootstrapConfig struct {
	Username string `env:"BOOTSTRAP_ADMIN_USERNAME, default=admin"`
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD, default=admin-change-me"`
}

type MongoConfig struct {
	URI         string        `env:"MONGO_URI,           default=mongodb://localhost:27017"`
	Database    string        `env:"MONGO_DB,            default=mmp"`
	MaxPoolSize uint64        `env:"MONGO_MAX_POOL_SIZE, default=5"`
	Timeout     time.Duration `env:"MONGO_TIMEOUT,       default=10s"`
}

// RedisConfig backs the login throttle. An empty Addr disables it.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// IsProduction selects secure cookie attributes and JSON logs.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Auth.TokenTransport != "cookie" && cfg.Auth.TokenTransport != "body" {
		return nil, fmt.Errorf("config: TOKEN_TRANSPORT must be cookie or body, got %q", cfg.Auth.TokenTransport)
	}
	return &cfg, nil
}
