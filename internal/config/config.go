package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, API authentication,
// the advisory channel, tax table selection and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// It must exceed Advisor.Timeout or advisory answers are cut off.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of JSON request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigin is the value of Access-Control-Allow-Origin
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
	} `yaml:"http"`

	// JWT configures bearer authentication for the v1 API.
	JWT struct {
		// PublicKey is the PEM-encoded RSA public key used to verify tokens.
		// When empty, the API is served without authentication.
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM-encoded RSA private key used by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Advisor configures the free-text advisory channel.
	Advisor struct {
		// APIKey is the default credential used when a request does not carry one.
		APIKey string `env:"OPENAI_API_KEY" env-default:"" yaml:"apiKey"`
		// BaseURL is the root of the chat-completions API
		BaseURL string `env:"ADVISOR_BASE_URL" env-default:"https://api.openai.com/v1" yaml:"baseURL"`
		// Model is the chat model name
		Model string `env:"ADVISOR_MODEL" env-default:"gpt-4o-mini" yaml:"model"`
		// Temperature is the sampling temperature
		Temperature float64 `env:"ADVISOR_TEMPERATURE" env-default:"0.2" yaml:"temperature"`
		// MaxTokens caps the answer length
		MaxTokens int `env:"ADVISOR_MAX_TOKENS" env-default:"1024" yaml:"maxTokens"`
		// Timeout bounds a single advisory request
		Timeout time.Duration `env:"ADVISOR_TIMEOUT" env-default:"60s" yaml:"timeout"`
	} `yaml:"advisor"`

	// Tax selects the schedules used by the calculator.
	Tax struct {
		// IncomeTable is the income bracket table: "jp-income" (seven tiers, up to 45%)
		// or "jp-income-legacy" (six tiers, capped at 40%).
		IncomeTable string `env:"TAX_INCOME_TABLE" env-default:"jp-income" yaml:"incomeTable"`
	} `yaml:"tax"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Environment variables override file values. When the file does not exist,
// the configuration is read from the environment alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
