package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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
	defaultLeadTimeDays         = 3
	defaultMaxUnitCount         = 99
	defaultConsultationLocation = "상담 요청"
	defaultMaxUploadBytes       = 10 << 20
	defaultSideEffectTimeout    = 10 * time.Second
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
		// AllowOrigins for CORS; empty means any origin.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Reservation configuration for the funnel rules
	Reservation *ReservationConfig `json:"reservation" yaml:"reservation"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for partner referral QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Sheets configuration for attribution logging
	Sheets *SheetsConfig `json:"sheets" yaml:"sheets"`

	// Storage configuration for uploaded documents
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// SideEffects configuration for fire-and-forget work
	SideEffects *SideEffectsConfig `json:"sideEffects" yaml:"sideEffects"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ReservationConfig defines the reservation funnel rules
type ReservationConfig struct {
	// IANA zone used to decide "today"
	Timezone string `json:"timezone" yaml:"timezone"`

	// Minimum days between today and the first normally selectable date
	LeadTimeDays int `json:"leadTimeDays" yaml:"leadTimeDays"`

	// Cap for outdoorCount and indoorCount
	MaxUnitCount int `json:"maxUnitCount" yaml:"maxUnitCount"`

	// installLocation stored for consultations without a location
	ConsultationLocation string `json:"consultationLocation" yaml:"consultationLocation"`
}

// Location returns the configured zone, falling back to UTC when it cannot be loaded.
func (c *ReservationConfig) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
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
	// Landing page the referral code is appended to
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty or "none" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens (notifier, google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// SheetsConfig defines the attribution spreadsheet
type SheetsConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	SpreadsheetID   string `json:"spreadsheetId" yaml:"spreadsheetId"`
	SheetName       string `json:"sheetName" yaml:"sheetName"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StorageConfig defines document upload storage
type StorageConfig struct {
	// gocloud bucket URL, e.g. file:///var/funnel/documents or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Prefix used to build public references to stored objects
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Maximum accepted upload size in bytes
	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`

	// Accepted MIME types
	AllowedContentTypes []string `json:"allowedContentTypes" yaml:"allowedContentTypes"`
}

// SideEffectsConfig defines limits for fire-and-forget work
type SideEffectsConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
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
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

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

	if cfg.Reservation == nil {
		cfg.Reservation = &ReservationConfig{}
	}
	if cfg.Reservation.LeadTimeDays <= 0 {
		cfg.Reservation.LeadTimeDays = defaultLeadTimeDays
	}
	if cfg.Reservation.MaxUnitCount <= 0 {
		cfg.Reservation.MaxUnitCount = defaultMaxUnitCount
	}
	if strings.TrimSpace(cfg.Reservation.ConsultationLocation) == "" {
		cfg.Reservation.ConsultationLocation = defaultConsultationLocation
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}
	if len(cfg.Storage.AllowedContentTypes) == 0 {
		cfg.Storage.AllowedContentTypes = []string{"image/jpeg", "image/png", "image/heic", "application/pdf"}
	}

	if cfg.SideEffects == nil {
		cfg.SideEffects = &SideEffectsConfig{}
	}
	if cfg.SideEffects.Timeout <= 0 {
		cfg.SideEffects.Timeout = defaultSideEffectTimeout
	}
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
