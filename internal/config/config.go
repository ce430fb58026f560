package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	App       AppConfig
	Codes     CodesConfig
	Clicks    ClicksConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Pprof     PprofConfig
	TLS       TLSConfig
}

type ServerConfig struct {
	Host               string `env:"SERVER_HOST" envDefault:"localhost"`
	Port               int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections     int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string `env:"SERVER_MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shortlinks"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// CodesConfig fixes the short-code generation contract: code length and the
// retry budget for collision handling. Exhausting the budget means the code
// space is saturating and is surfaced as an operational failure.
type CodesConfig struct {
	Length      int `env:"CODE_LENGTH" envDefault:"7"`
	MaxAttempts int `env:"CODE_MAX_ATTEMPTS" envDefault:"10"`
}

// ClicksConfig drives the asynchronous click recorder and the simulated
// fraud gate. FraudCheckDelayMs models the fraud-check round-trip and is the
// dominant latency of click processing.
type ClicksConfig struct {
	Workers           int   `env:"CLICK_WORKERS" envDefault:"10"`
	QueueSize         int   `env:"CLICK_QUEUE_SIZE" envDefault:"1000"`
	FraudCheckDelayMs int   `env:"FRAUD_CHECK_DELAY_MS" envDefault:"500"`
	CreditHundredths  int64 `env:"CLICK_CREDIT_HUNDREDTHS" envDefault:"5"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET" envDefault:""`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"500"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET" envDefault:""`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE" envDefault:""`
	KeyFile  string `env:"TLS_KEY_FILE" envDefault:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
