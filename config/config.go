package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for env.location
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
	defaultLocation           = "Europe/Istanbul"
	defaultBackend            = "bolt"
	DefaultBoltPath           = "motovibe.db"
	defaultTokenTTL           = 24 * time.Hour
	DefaultCodeAttempts       = 5
	defaultRetentionDays      = 90
	defaultRetentionSchedule  = "@daily"
	defaultStorefrontMode     = "local"
	defaultStorefrontTimeout  = 10 * time.Second
	defaultStorefrontDataPath = "storefront.db"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		// IANA zone used for calendar days (visit counter, dashboard buckets).
		Location string `json:"location" yaml:"location"`
		Log      Log    `json:"log" yaml:"log"`
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
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// ActivityLog configuration for the audit log retention job
	ActivityLog *ActivityLogConfig `json:"activityLog" yaml:"activityLog"`

	// QRCode configuration for order tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storefront configuration for the CLI client
	Storefront *StorefrontConfig `json:"storefront" yaml:"storefront"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Backend is one of "mongo", "postgres" or "bolt"
	Backend  string           `json:"backend" yaml:"backend"`
	Mongo    *MongoConfig     `json:"mongo" yaml:"mongo"`
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
	Bolt     *BoltConfig      `json:"bolt" yaml:"bolt"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// BoltConfig defines the embedded store file
type BoltConfig struct {
	Path        string        `json:"path" yaml:"path"`
	OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	// Admin is created at startup when no account holds its email
	Admin *AdminConfig `json:"admin" yaml:"admin"`
}

// AdminConfig is the bootstrap administrator account
type AdminConfig struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// CheckoutConfig defines order placement rules
type CheckoutConfig struct {
	EnforceStock bool `json:"enforceStock" yaml:"enforceStock"`
	CodeAttempts int  `json:"codeAttempts" yaml:"codeAttempts"`
}

// ActivityLogConfig defines the audit log retention job
type ActivityLogConfig struct {
	RetentionDays int    `json:"retentionDays" yaml:"retentionDays"`
	Schedule      string `json:"schedule" yaml:"schedule"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables rotation to the given path in addition to stdout.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StorefrontConfig defines how the CLI reaches its data
type StorefrontConfig struct {
	// Mode is "local" (embedded store in DataPath) or "remote" (HTTP against APIURL)
	Mode           string        `json:"mode" yaml:"mode"`
	APIURL         string        `json:"apiUrl" yaml:"apiUrl"`
	DataPath       string        `json:"dataPath" yaml:"dataPath"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
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

	cfg.applyDefaults()

	// Build replicas from environment variables (STORAGE_POSTGRES_REPLICAS_0_HOST, ...)
	if cfg.Storage.Postgres != nil {
		cfg.Storage.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Env.Location == "" {
		c.Env.Location = defaultLocation
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	if c.Storage.Bolt == nil {
		c.Storage.Bolt = &BoltConfig{}
	}
	if c.Storage.Bolt.Path == "" {
		c.Storage.Bolt.Path = DefaultBoltPath
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if c.Checkout == nil {
		c.Checkout = &CheckoutConfig{EnforceStock: true}
	}
	if c.Checkout.CodeAttempts <= 0 {
		c.Checkout.CodeAttempts = DefaultCodeAttempts
	}
	if c.ActivityLog == nil {
		c.ActivityLog = &ActivityLogConfig{}
	}
	if c.ActivityLog.RetentionDays <= 0 {
		c.ActivityLog.RetentionDays = defaultRetentionDays
	}
	if c.ActivityLog.Schedule == "" {
		c.ActivityLog.Schedule = defaultRetentionSchedule
	}
	if c.Storefront == nil {
		c.Storefront = &StorefrontConfig{}
	}
	if c.Storefront.Mode == "" {
		c.Storefront.Mode = defaultStorefrontMode
	}
	if c.Storefront.RequestTimeout <= 0 {
		c.Storefront.RequestTimeout = defaultStorefrontTimeout
	}
	if c.Storefront.DataPath == "" {
		c.Storefront.DataPath = defaultStorefrontDataPath
	}
}

// LoadLocation resolves env.location.
func (c *Config) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Env.Location)
	if err != nil {
		return nil, errors.Wrapf(err, "load location %q", c.Env.Location)
	}

	return loc, nil
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
// Environment variable format: STORAGE_POSTGRES_REPLICAS_{index}_{field}
// Example: STORAGE_POSTGRES_REPLICAS_0_HOST, STORAGE_POSTGRES_REPLICAS_0_PORT
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "STORAGE_POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

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
