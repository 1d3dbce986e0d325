package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath                 = "."
	defaultMaxRequestBodySize   = "100KB"
	defaultCredentialTTL        = 24 * time.Hour
	defaultRefreshTTL           = 7 * 24 * time.Hour
	defaultSessionCacheTTL      = time.Hour
	defaultSessionCacheCapacity = 10000
	defaultOdooTimeout          = 30 * time.Second
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
		// TrustForwardedHost makes the origin check read X-Forwarded-Host set by a trusted proxy.
		TrustForwardedHost bool     `json:"trustForwardedHost" yaml:"trustForwardedHost"`
		CORSAllowOrigins   []string `json:"corsAllowOrigins" yaml:"corsAllowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	SessionCache *SessionCacheConfig `json:"sessionCache" yaml:"sessionCache"`

	Odoo *OdooConfig `json:"odoo" yaml:"odoo"`

	Resolver *ResolverConfig `json:"resolver" yaml:"resolver"`

	// PubSub configuration for audit event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines credential issuing configuration
type AuthConfig struct {
	// CredentialTTL is the expiry given to a credential minted at login.
	CredentialTTL time.Duration `json:"credentialTtl" yaml:"credentialTtl"`
	// RefreshTTL is the lifetime of refresh tokens.
	RefreshTTL time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
	// DefaultGrants are seeded onto every new credential. Empty unless configured.
	DefaultGrants DefaultGrantsConfig `json:"defaultGrants" yaml:"defaultGrants"`
}

type DefaultGrantsConfig struct {
	AllowedOrigins   []string             `json:"allowedOrigins" yaml:"allowedOrigins"`
	AllowedEndpoints []string             `json:"allowedEndpoints" yaml:"allowedEndpoints"`
	PermissionScopes []DefaultScopeConfig `json:"permissionScopes" yaml:"permissionScopes"`
}

type DefaultScopeConfig struct {
	ModelName  string `json:"modelName" yaml:"modelName"`
	CanCreate  bool   `json:"canCreate" yaml:"canCreate"`
	CanRead    bool   `json:"canRead" yaml:"canRead"`
	CanUpdate  bool   `json:"canUpdate" yaml:"canUpdate"`
	CanDelete  bool   `json:"canDelete" yaml:"canDelete"`
	CanApprove bool   `json:"canApprove" yaml:"canApprove"`
	CanReject  bool   `json:"canReject" yaml:"canReject"`
}

// SessionCacheConfig selects the backing store of the login cache
type SessionCacheConfig struct {
	// Provider type: "memory" (in-process) or "redis"
	Provider string        `json:"provider" yaml:"provider"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Capacity int           `json:"capacity" yaml:"capacity"`
	Redis    RedisConfig   `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// OdooConfig points at the remote JSON-RPC backend
type OdooConfig struct {
	URL     string        `json:"url" yaml:"url"`
	DB      string        `json:"db" yaml:"db"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ResolverConfig tunes the generic resolver
type ResolverConfig struct {
	// ReadFields lists extra fields returned by read, keyed by resource type.
	ReadFields map[string][]string `json:"readFields" yaml:"readFields"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty or "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.CredentialTTL <= 0 {
		cfg.Auth.CredentialTTL = defaultCredentialTTL
	}
	if cfg.Auth.RefreshTTL <= 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}

	if cfg.SessionCache == nil {
		cfg.SessionCache = &SessionCacheConfig{}
	}
	if cfg.SessionCache.Provider == "" {
		cfg.SessionCache.Provider = "memory"
	}
	if cfg.SessionCache.TTL <= 0 {
		cfg.SessionCache.TTL = defaultSessionCacheTTL
	}
	if cfg.SessionCache.Capacity <= 0 {
		cfg.SessionCache.Capacity = defaultSessionCacheCapacity
	}
	if cfg.SessionCache.Redis.KeyPrefix == "" {
		cfg.SessionCache.Redis.KeyPrefix = "erpgate:"
	}

	if cfg.Odoo == nil {
		cfg.Odoo = &OdooConfig{}
	}
	if cfg.Odoo.Timeout <= 0 {
		cfg.Odoo.Timeout = defaultOdooTimeout
	}

	if cfg.Resolver == nil {
		cfg.Resolver = &ResolverConfig{}
	}
	if cfg.Resolver.ReadFields == nil {
		cfg.Resolver.ReadFields = map[string][]string{
			"hr.employee":    {"job_id", "department_id"},
			"purchase.order": {"state"},
		}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

func (cfg *Config) validate() error {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return errors.New("secretKey.access and secretKey.refresh are required")
	}
	if cfg.Odoo.URL == "" {
		return errors.New("odoo.url is required")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
