package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config carries every runtime setting. It is loaded once at startup and
// passed explicitly into construction; nothing reads the environment later.
type Config struct {
	Port     string `env:"PORT,       default=8080"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	JWTSecret     string        `env:"JWT_SECRET"`
	JWTTTL        time.Duration `env:"JWT_TTL,         default=168h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL, default=1h"`

	// AuthorEmails is the allow-list of identities granted the author role
	// at registration and login.
	AuthorEmails []string `env:"AUTHOR_EMAILS"`

	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:5173"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
	RateLimitMax    int64         `env:"RATE_LIMIT_MAX,    default=100"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=content_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Development reports whether the process runs in development mode; error
// responses include details only then.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
