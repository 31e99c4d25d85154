package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/caarlos0/env/v11"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	koanfenv "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 5000
	defaultDatabase           = "water-drops"
	defaultScheme             = "mongodb+srv"
	defaultConnectTimeout     = 10 * time.Second
	defaultOperationTimeout   = 5 * time.Second
)

var (
	// ErrMissingCredentials is returned when no database username or password is configured.
	ErrMissingCredentials = errors.New("database credentials are not configured")
	// ErrInvalidPort is returned when the HTTP port is outside the valid range.
	ErrInvalidPort = errors.New("http port must be between 1 and 65535")
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotating log file next to stdout when set.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	Scheme   string `json:"scheme" yaml:"scheme"`
	Host     string `json:"host" yaml:"host"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	// Options is appended to the connection URI as its query string.
	Options string `json:"options" yaml:"options"`

	MaxPoolSize      uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
	ConnectTimeout   time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
}

// AuthConfig defines authorization-related configuration
type AuthConfig struct {
	AdminGuard struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"adminGuard" yaml:"adminGuard"`
}

// legacyEnv holds the variables the storefront has always been deployed with.
type legacyEnv struct {
	DBUser string `env:"DB_USER"`
	DBPass string `env:"DB_PASS"`
	Port   int    `env:"PORT"`
}

// URI builds the connection string for the configured deployment.
func (m *MongoConfig) URI() string {
	u := url.URL{
		Scheme:   m.Scheme,
		User:     url.UserPassword(m.Username, m.Password),
		Host:     m.Host,
		Path:     "/",
		RawQuery: m.Options,
	}

	return u.String()
}

// Redacted is the connection string with the password masked, safe for logs.
func (m *MongoConfig) Redacted() string {
	u := url.URL{
		Scheme: m.Scheme,
		User:   url.User(m.Username),
		Host:   m.Host,
		Path:   "/" + m.Database,
	}

	return u.String()
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Variables matching no YAML key (PATH, HOME, ...) are skipped.
	if err := koanfInstance.Load(koanfenv.Provider(".", koanfenv.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key, ok := canonicalizeEnvKey(k, existingConfigMap)
			if !ok {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	legacy, err := env.ParseAs[legacyEnv]()
	if err != nil {
		return nil, errors.Wrap(err, "parse legacy env variables failed")
	}

	applyDefaults(cfg, legacy)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config, legacy legacyEnv) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = legacy.Port
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.Username == "" {
		cfg.Mongo.Username = legacy.DBUser
	}
	if cfg.Mongo.Password == "" {
		cfg.Mongo.Password = legacy.DBPass
	}
	if cfg.Mongo.Scheme == "" {
		cfg.Mongo.Scheme = defaultScheme
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultDatabase
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.Mongo.OperationTimeout <= 0 {
		cfg.Mongo.OperationTimeout = defaultOperationTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
}

// Validate reports configuration that must stop the process from starting.
func (c *Config) Validate() error {
	if c.Mongo == nil || strings.TrimSpace(c.Mongo.Username) == "" || strings.TrimSpace(c.Mongo.Password) == "" {
		return errors.WithStack(ErrMissingCredentials)
	}
	if strings.TrimSpace(c.Mongo.Host) == "" {
		return errors.New("mongo host is not configured")
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return errors.WithStack(ErrInvalidPort)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) (string, bool) {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing
	matchedAny := false

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
			matchedAny = true
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	if !matchedAny {
		return "", false
	}

	return strings.Join(canonical, "."), true
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
