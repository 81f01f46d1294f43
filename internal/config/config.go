package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/origin-lookup/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// Remid is the long-lived "remid" session cookie issued by the identity provider.
	Remid string `mapstructure:"remid"`
	// SID is the long-lived "sid" session cookie issued by the identity provider.
	SID string `mapstructure:"sid"`
	// AccessToken is an optional pre-minted bearer token; when set, no mint happens at startup.
	AccessToken string `mapstructure:"access_token"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout applied to every HTTP request (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength limits the size of request/response dumps in debug logs (e.g., "64KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// UsersCacheSize is the number of user records kept in memory. 0 disables the cache.
	UsersCacheSize int `mapstructure:"users_cache_size"`
	// AuthURL is the token mint endpoint.
	AuthURL string `mapstructure:"auth_url"`
	// UsersURL is the user lookup endpoint.
	UsersURL string `mapstructure:"users_url"`
	// EnvFile is the dotenv file the credentials are read from and written back to.
	EnvFile string `mapstructure:"env_file"`
	// OutputFormat selects how users are printed: table, json or yaml.
	OutputFormat string `mapstructure:"output_format"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent"`
	// ConfigFile is the settings file that was actually read (empty if none).
	ConfigFile string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed maximum dump length in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultConfigFilename is the default name of the settings file.
	DefaultConfigFilename = ".origin-lookup.yaml"

	// DefaultEnvFilename is the default name of the dotenv credentials file.
	DefaultEnvFilename = ".env"

	// DefaultAuthURL is the identity provider endpoint that mints access tokens from session cookies.
	DefaultAuthURL = "https://accounts.ea.com/connect/auth" +
		"?client_id=ORIGIN_JS_SDK&response_type=token&redirect_uri=nucleus:rest&prompt=none&release_type=prod"

	// DefaultUsersURL is the user lookup endpoint.
	DefaultUsersURL = "https://api3.origin.com/atom/users"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged request or response.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultRequestTimeout is the default timeout of a single HTTP request.
	DefaultRequestTimeout = "60s"

	// DefaultUsersCacheSize is the default number of cached user records.
	DefaultUsersCacheSize = 256

	// DefaultOutputFormat is the default presentation format.
	DefaultOutputFormat = "table"

	// envPrefix prefixes environment overrides of settings, e.g. ORIGIN_LOOKUP_LOG_LEVEL.
	envPrefix = "ORIGIN_LOOKUP"
)

// Environment variable names of the credentials.
const (
	EnvRemid       = "REMID"
	EnvSID         = "SID"
	EnvAccessToken = "ACCESS_TOKEN"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyRemid indicates that the remid cookie is missing.
	ErrEmptyRemid = errors.New("remid cannot be empty")
	// ErrEmptySID indicates that the sid cookie is missing.
	ErrEmptySID = errors.New("sid cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidCacheSize indicates that the users cache size is negative.
	ErrInvalidCacheSize = errors.New("users_cache_size cannot be negative")
	// ErrUnknownOutputFormat indicates that the output format is not supported.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrInvalidURL indicates that an endpoint URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid endpoint URL")
)

// OutputFormats lists the supported presentation formats.
//
//nolint:gochecknoglobals // Immutable list used for validation and flag help.
var OutputFormats = []string{"table", "json", "yaml"}

// LoadConfig loads settings from an optional YAML file and the environment.
// An explicitly named file must exist; the default file is optional.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials use the bare names shared with the dotenv file.
	for key, env := range map[string]string{
		"remid":        EnvRemid,
		"sid":          EnvSID,
		"access_token": EnvAccessToken,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	configFileUsed := ""

	if _, err := os.Stat(configFilename); err == nil || isExplicit {
		v.SetConfigFile(configFilename)

		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		configFileUsed = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFile = configFileUsed

	return &cfg, nil
}

// ValidateConfig checks the settings for validity and sets derived fields.
// Credentials are checked separately by ValidateCredentials.
func ValidateConfig(cfg *Config) error {
	var err error

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.MaxLogLength); maxLogLength != "" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.UsersCacheSize < 0 {
		return ErrInvalidCacheSize
	}

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if !isKnownOutputFormat(cfg.OutputFormat) {
		return fmt.Errorf("%w: '%s' (expected one of %s)",
			ErrUnknownOutputFormat, cfg.OutputFormat, strings.Join(OutputFormats, ", "))
	}

	if err = validateEndpoint(cfg.AuthURL); err != nil {
		return fmt.Errorf("auth_url: %w", err)
	}

	if err = validateEndpoint(cfg.UsersURL); err != nil {
		return fmt.Errorf("users_url: %w", err)
	}

	return nil
}

// ValidateCredentials checks that both session cookies are present.
func ValidateCredentials(cfg *Config) error {
	cfg.Remid = strings.TrimSpace(cfg.Remid)
	cfg.SID = strings.TrimSpace(cfg.SID)
	cfg.AccessToken = strings.TrimSpace(cfg.AccessToken)

	if cfg.Remid == "" {
		return ErrEmptyRemid
	}

	if cfg.SID == "" {
		return ErrEmptySID
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("max_log_length", humanize.IBytes(DefaultMaxLogLength))
	v.SetDefault("users_cache_size", DefaultUsersCacheSize)
	v.SetDefault("auth_url", DefaultAuthURL)
	v.SetDefault("users_url", DefaultUsersURL)
	v.SetDefault("env_file", DefaultEnvFilename)
	v.SetDefault("output_format", DefaultOutputFormat)
	v.SetDefault("user_agent", "")
}

func isKnownOutputFormat(format string) bool {
	for _, known := range OutputFormats {
		if format == known {
			return true
		}
	}

	return false
}

func validateEndpoint(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidURL, rawURL)
	}

	return nil
}
