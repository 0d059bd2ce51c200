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
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultRecentWindow      = 200
	defaultLookupChunkSize   = 10
	defaultNotifyConcurrency = 10
	defaultSendTimeout       = 15 * time.Second
	defaultMongoTimeout      = 10 * time.Second
	defaultRecentWindowTTL   = 30 * time.Second
	defaultPresignExpiry     = 7 * 24 * time.Hour
	defaultStorageRegion     = "us-east-1"
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

	App AppConfig `json:"app" yaml:"app"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Mongo holds zones, listings, listing locations and users.
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Postgres holds the alert delivery log.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis caches the recent listing-location window. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// SMTP is the alert mail transport. Optional; alerts are only logged without it.
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// ObjectStorage holds listing photos linked from alerts. Optional.
	ObjectStorage *ObjectStorageConfig `json:"objectStorage" yaml:"objectStorage"`

	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AppConfig describes the public web application the alerts link to.
type AppConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// SecretKeyConfig holds the HMAC secrets for access and refresh tokens.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI      string        `json:"uri" yaml:"uri"`
	Database string        `json:"database" yaml:"database"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig defines the cache connection.
type RedisConfig struct {
	Address         string        `json:"address" yaml:"address"`
	Password        string        `json:"password" yaml:"password"`
	DB              int           `json:"db" yaml:"db"`
	RecentWindowTTL time.Duration `json:"recentWindowTtl" yaml:"recentWindowTtl"`
}

// SMTPConfig defines the outgoing mail server.
type SMTPConfig struct {
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	SenderEmail string `json:"senderEmail" yaml:"senderEmail"`
	SenderName  string `json:"senderName" yaml:"senderName"`
	ReplyTo     string `json:"replyTo" yaml:"replyTo"`
	// Encryption is one of "none", "ssl" or "starttls".
	Encryption string `json:"encryption" yaml:"encryption"`
}

// ObjectStorageConfig defines the S3-compatible bucket holding listing photos.
type ObjectStorageConfig struct {
	Endpoint      string        `json:"endpoint" yaml:"endpoint"`
	AccessKey     string        `json:"accessKey" yaml:"accessKey"`
	SecretKey     string        `json:"secretKey" yaml:"secretKey"`
	Bucket        string        `json:"bucket" yaml:"bucket"`
	Region        string        `json:"region" yaml:"region"`
	UseSSL        bool          `json:"useSSL" yaml:"useSSL"`
	PresignExpiry time.Duration `json:"presignExpiry" yaml:"presignExpiry"`
}

// ProximityConfig bounds the matcher and the alert fan-out.
type ProximityConfig struct {
	// Number of most recent listing locations scanned by the dashboard query.
	RecentWindow int `json:"recentWindow" yaml:"recentWindow"`

	// Listing ids per lookup when resolving the dashboard matches.
	LookupChunkSize int `json:"lookupChunkSize" yaml:"lookupChunkSize"`

	// Maximum concurrent mail sends per publish.
	NotifyConcurrency int `json:"notifyConcurrency" yaml:"notifyConcurrency"`

	// Upper bound for a single mail send.
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills optional values and rejects configs missing a required store.
func (c *Config) applyDefaults() error {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Mongo == nil || c.Mongo.URI == "" || c.Mongo.Database == "" {
		return errors.New("mongo.uri and mongo.database are required")
	}
	if c.Mongo.Timeout <= 0 {
		c.Mongo.Timeout = defaultMongoTimeout
	}

	if c.Postgres == nil {
		return errors.New("postgres config is required")
	}

	if c.Proximity == nil {
		c.Proximity = &ProximityConfig{}
	}
	c.Proximity.applyDefaults()

	if c.Redis != nil && c.Redis.RecentWindowTTL <= 0 {
		c.Redis.RecentWindowTTL = defaultRecentWindowTTL
	}

	if c.ObjectStorage != nil {
		if c.ObjectStorage.PresignExpiry <= 0 {
			c.ObjectStorage.PresignExpiry = defaultPresignExpiry
		}
		if c.ObjectStorage.Region == "" {
			c.ObjectStorage.Region = defaultStorageRegion
		}
	}

	c.App.BaseURL = strings.TrimRight(c.App.BaseURL, "/")

	return nil
}

func (p *ProximityConfig) applyDefaults() {
	if p.RecentWindow <= 0 {
		p.RecentWindow = defaultRecentWindow
	}
	if p.LookupChunkSize <= 0 {
		p.LookupChunkSize = defaultLookupChunkSize
	}
	if p.NotifyConcurrency <= 0 {
		p.NotifyConcurrency = defaultNotifyConcurrency
	}
	if p.SendTimeout <= 0 {
		p.SendTimeout = defaultSendTimeout
	}
}

// Enabled reports whether enough SMTP settings are present to dial a server.
func (s *SMTPConfig) Enabled() bool {
	return s != nil && strings.TrimSpace(s.Host) != ""
}

// Enabled reports whether object storage is configured.
func (o *ObjectStorageConfig) Enabled() bool {
	return o != nil && o.Endpoint != "" && o.Bucket != ""
}

// Enabled reports whether a cache is configured.
func (r *RedisConfig) Enabled() bool {
	return r != nil && r.Address != ""
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
