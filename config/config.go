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
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Pub/Sub providers. An empty provider disables publishing.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Otp *OtpConfig `json:"otp" yaml:"otp"`

	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	Places *PlacesConfig `json:"places" yaml:"places"`

	CheckIn *CheckInConfig `json:"checkIn" yaml:"checkIn"`

	Location *LocationConfig `json:"location" yaml:"location"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for friend invite QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for dispatch events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the dispatcher push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	// Driver is "postgres" (default) or "memory". Memory keeps everything in process and is meant for local runs.
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate applies embedded goose migrations on API start.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// OTP rate limit scopes.
const (
	OtpScopeIdentifier = "identifier"
	OtpScopePurpose    = "purpose"
)

// OtpConfig controls one-time code issuance.
type OtpConfig struct {
	Length       int           `json:"length" yaml:"length"`
	TTL          time.Duration `json:"ttl" yaml:"ttl"`
	Window       time.Duration `json:"window" yaml:"window"`
	MaxPerWindow int           `json:"maxPerWindow" yaml:"maxPerWindow"`
	// Scope is "identifier" (count every purpose) or "purpose" (count per identifier and purpose).
	Scope string `json:"scope" yaml:"scope"`
}

// DiscoveryConfig controls friend discovery.
type DiscoveryConfig struct {
	NearbyLimit   int           `json:"nearbyLimit" yaml:"nearbyLimit"`
	HistoryWindow time.Duration `json:"historyWindow" yaml:"historyWindow"`
}

// PlacesConfig controls place ranking and search.
type PlacesConfig struct {
	PopularLimit        int     `json:"popularLimit" yaml:"popularLimit"`
	PopularRadiusKm     float64 `json:"popularRadiusKm" yaml:"popularRadiusKm"`
	SearchRadiusMeters  float64 `json:"searchRadiusMeters" yaml:"searchRadiusMeters"`
	CheckInRadiusMeters float64 `json:"checkInRadiusMeters" yaml:"checkInRadiusMeters"`
}

// CheckInConfig controls the one-check-in-per-day rule.
type CheckInConfig struct {
	// Timezone is an IANA name. The calendar day of a check-in is taken in this zone. Empty means server local.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// LocationConfig controls location retention.
type LocationConfig struct {
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
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

// WorkerConfig defines the dispatcher push endpoint.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// VerifyToken enables Google OIDC verification of push requests.
	VerifyToken bool `json:"verifyToken" yaml:"verifyToken"`
	// Audience is the expected OIDC audience, usually the push endpoint URL.
	Audience string `json:"audience" yaml:"audience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is matched segment by segment against the YAML keys,
	// e.g. OTP_MAXPERWINDOW -> otp.maxPerWindow.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

func findConfigFile(name string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers can dereference them.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	c.Auth.ApplyDefaults()
	if c.Otp == nil {
		c.Otp = &OtpConfig{}
	}
	c.Otp.ApplyDefaults()
	if c.Discovery == nil {
		c.Discovery = &DiscoveryConfig{}
	}
	c.Discovery.ApplyDefaults()
	if c.Places == nil {
		c.Places = &PlacesConfig{}
	}
	c.Places.ApplyDefaults()
	if c.CheckIn == nil {
		c.CheckIn = &CheckInConfig{}
	}
	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	if c.Location.Retention <= 0 {
		c.Location.Retention = 30 * 24 * time.Hour
	}
	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = 8081
	}
}

// ApplyDefaults fills unset auth settings.
func (a *AuthConfig) ApplyDefaults() {
	if a.BcryptCost == 0 {
		a.BcryptCost = 12
	}
	if a.AccessTokenTTL <= 0 {
		a.AccessTokenTTL = 15 * time.Minute
	}
	if a.RefreshTokenTTL <= 0 {
		a.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if a.MinPasswordLength <= 0 {
		a.MinPasswordLength = 6
	}
}

// ApplyDefaults fills unset OTP settings.
func (o *OtpConfig) ApplyDefaults() {
	if o.Length <= 0 {
		o.Length = 6
	}
	if o.TTL <= 0 {
		o.TTL = 5 * time.Minute
	}
	if o.Window <= 0 {
		o.Window = time.Hour
	}
	if o.MaxPerWindow <= 0 {
		o.MaxPerWindow = 5
	}
	if o.Scope != OtpScopePurpose {
		o.Scope = OtpScopeIdentifier
	}
}

// ApplyDefaults fills unset discovery settings.
func (d *DiscoveryConfig) ApplyDefaults() {
	if d.NearbyLimit <= 0 {
		d.NearbyLimit = 20
	}
	if d.HistoryWindow <= 0 {
		d.HistoryWindow = 24 * time.Hour
	}
}

// ApplyDefaults fills unset places settings.
func (p *PlacesConfig) ApplyDefaults() {
	if p.PopularLimit <= 0 {
		p.PopularLimit = 10
	}
	if p.PopularRadiusKm <= 0 {
		p.PopularRadiusKm = 10
	}
	if p.SearchRadiusMeters <= 0 {
		p.SearchRadiusMeters = 5000
	}
	if p.CheckInRadiusMeters <= 0 {
		p.CheckInRadiusMeters = 100
	}
}

// Location returns the configured check-in zone, falling back to time.Local.
func (c *CheckInConfig) Location() (*time.Location, error) {
	if c == nil || c.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load check-in timezone %q", c.Timezone)
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
