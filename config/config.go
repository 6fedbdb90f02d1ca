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
	defaultCurrency           = "USD"
	defaultAutoRelease        = 14 * 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int          `json:"port" yaml:"port"`
		MaxRequestBodySize string       `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Supabase project the backend runs against (auth tokens, realtime)
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Email *EmailConfig `json:"email" yaml:"email"`

	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage configuration for uploaded documents
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Payments *PaymentsConfig `json:"payments" yaml:"payments"`

	Escrow *EscrowConfig `json:"escrow" yaml:"escrow"`

	Notifications *NotificationsConfig `json:"notifications" yaml:"notifications"`

	Currency *CurrencyConfig `json:"currency" yaml:"currency"`

	Listings *ListingsConfig `json:"listings" yaml:"listings"`

	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// QRCode configuration for payment reference QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// HTTPTimeouts bounds the API server's connection phases.
type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SupabaseConfig holds the project URL, API keys and JWT settings.
// The service-role key is only ever used server side.
type SupabaseConfig struct {
	URL            string         `json:"url" yaml:"url"`
	AnonKey        string         `json:"anonKey" yaml:"anonKey"`
	ServiceRoleKey string         `json:"serviceRoleKey" yaml:"serviceRoleKey"`
	JWTSecret      string         `json:"jwtSecret" yaml:"jwtSecret"`
	JWTAudience    string         `json:"jwtAudience" yaml:"jwtAudience"`
	Realtime       RealtimeConfig `json:"realtime" yaml:"realtime"`
}

// RealtimeConfig controls the postgres-changes listener in the worker
type RealtimeConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	Schema            string        `json:"schema" yaml:"schema"`
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	ReconnectDelay    time.Duration `json:"reconnectDelay" yaml:"reconnectDelay"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
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

// EmailConfig configures the transactional email API
type EmailConfig struct {
	APIURL  string        `json:"apiUrl" yaml:"apiUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	From    string        `json:"from" yaml:"from"`
	ReplyTo string        `json:"replyTo" yaml:"replyTo"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SMSConfig configures the SMS gateway (form-encoded API with basic auth)
type SMSConfig struct {
	APIURL     string        `json:"apiUrl" yaml:"apiUrl"`
	AccountSID string        `json:"accountSid" yaml:"accountSid"`
	AuthToken  string        `json:"authToken" yaml:"authToken"`
	From       string        `json:"from" yaml:"from"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// "local" posts straight to the worker, "google" publishes to Cloud Pub/Sub.
	Provider  string `json:"provider" yaml:"provider"`
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
	// OrderingEnabled publishes with ordering keys. The subscription must
	// have message ordering enabled too.
	OrderingEnabled bool          `json:"orderingEnabled" yaml:"orderingEnabled"`
	PublishTimeout  time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
	LocalEndpoint   string        `json:"localEndpoint" yaml:"localEndpoint"`
}

// StorageConfig points at a gocloud.dev bucket URL (file://, gs://, s3://)
type StorageConfig struct {
	BucketURL       string `json:"bucketUrl" yaml:"bucketUrl"`
	KYCPrefix       string `json:"kycPrefix" yaml:"kycPrefix"`
	MaxDocumentSize int64  `json:"maxDocumentSize" yaml:"maxDocumentSize"`
}

type PaymentsConfig struct {
	DefaultCurrency string `json:"defaultCurrency" yaml:"defaultCurrency"`
	// Where hosted checkout and the mock provider send the buyer afterwards
	SuccessURL   string             `json:"successUrl" yaml:"successUrl"`
	CancelURL    string             `json:"cancelUrl" yaml:"cancelUrl"`
	MockEnabled  bool               `json:"mockEnabled" yaml:"mockEnabled"`
	Checkout     CheckoutConfig     `json:"checkout" yaml:"checkout"`
	BankTransfer BankTransferConfig `json:"bankTransfer" yaml:"bankTransfer"`
	Cash         CashConfig         `json:"cash" yaml:"cash"`
}

// CheckoutConfig configures the hosted checkout provider
type CheckoutConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	WebhookSecret string        `json:"webhookSecret" yaml:"webhookSecret"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

type BankTransferConfig struct {
	BankName      string `json:"bankName" yaml:"bankName"`
	AccountName   string `json:"accountName" yaml:"accountName"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber"`
	IBAN          string `json:"iban" yaml:"iban"`
	SwiftCode     string `json:"swiftCode" yaml:"swiftCode"`
}

type CashConfig struct {
	Instructions string `json:"instructions" yaml:"instructions"`
}

type EscrowConfig struct {
	// AutoReleaseAfter is counted from funding; the order must also be delivered
	AutoReleaseAfter  time.Duration `json:"autoReleaseAfter" yaml:"autoReleaseAfter"`
	ReleaseCodeLength int           `json:"releaseCodeLength" yaml:"releaseCodeLength"`
}

// NotificationsConfig controls queue processing and retries
type NotificationsConfig struct {
	BatchSize      int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryBaseDelay time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`
	RetryMaxDelay  time.Duration `json:"retryMaxDelay" yaml:"retryMaxDelay"`
	PushBatchSize  int           `json:"pushBatchSize" yaml:"pushBatchSize"`

	// ProcessingLease is how long a claimed row may stay PROCESSING before
	// another poll reclaims it.
	ProcessingLease time.Duration `json:"processingLease" yaml:"processingLease"`
}

// CurrencyConfig controls exchange rates
type CurrencyConfig struct {
	BaseCurrency string `json:"baseCurrency" yaml:"baseCurrency"`
	// Provider: "http" queries RatesURL, "static" only uses StaticRates
	Provider    string             `json:"provider" yaml:"provider"`
	RatesURL    string             `json:"ratesUrl" yaml:"ratesUrl"`
	APIKey      string             `json:"apiKey" yaml:"apiKey"`
	CacheTTL    time.Duration      `json:"cacheTtl" yaml:"cacheTtl"`
	Timeout     time.Duration      `json:"timeout" yaml:"timeout"`
	StaticRates map[string]float64 `json:"staticRates" yaml:"staticRates"`
}

// ListingsConfig defines nearby search limits in kilometers
type ListingsConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// SchedulerConfig holds cron specs for worker jobs
type SchedulerConfig struct {
	NotificationQueue string `json:"notificationQueue" yaml:"notificationQueue"`
	EscrowAutoRelease string `json:"escrowAutoRelease" yaml:"escrowAutoRelease"`
	GroupBuyExpiry    string `json:"groupBuyExpiry" yaml:"groupBuyExpiry"`
}

type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	CleanupInterval   time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil pointers.
func applyDefaults(cfg *Config) {
	if cfg.Supabase == nil {
		cfg.Supabase = &SupabaseConfig{}
	}
	if cfg.Supabase.Realtime.Schema == "" {
		cfg.Supabase.Realtime.Schema = "public"
	}
	if cfg.Supabase.Realtime.HeartbeatInterval <= 0 {
		cfg.Supabase.Realtime.HeartbeatInterval = 30 * time.Second
	}
	if cfg.Supabase.Realtime.ReconnectDelay <= 0 {
		cfg.Supabase.Realtime.ReconnectDelay = 5 * time.Second
	}

	if cfg.Payments == nil {
		cfg.Payments = &PaymentsConfig{MockEnabled: true}
	}
	if cfg.Payments.DefaultCurrency == "" {
		cfg.Payments.DefaultCurrency = defaultCurrency
	}

	if cfg.Escrow == nil {
		cfg.Escrow = &EscrowConfig{}
	}
	if cfg.Escrow.AutoReleaseAfter <= 0 {
		cfg.Escrow.AutoReleaseAfter = defaultAutoRelease
	}
	if cfg.Escrow.ReleaseCodeLength <= 0 {
		cfg.Escrow.ReleaseCodeLength = 6
	}

	if cfg.Notifications == nil {
		cfg.Notifications = &NotificationsConfig{}
	}
	if cfg.Notifications.BatchSize <= 0 {
		cfg.Notifications.BatchSize = 50
	}
	if cfg.Notifications.MaxAttempts <= 0 {
		cfg.Notifications.MaxAttempts = 5
	}
	if cfg.Notifications.RetryBaseDelay <= 0 {
		cfg.Notifications.RetryBaseDelay = 30 * time.Second
	}
	if cfg.Notifications.RetryMaxDelay <= 0 {
		cfg.Notifications.RetryMaxDelay = time.Hour
	}
	if cfg.Notifications.ProcessingLease <= 0 {
		cfg.Notifications.ProcessingLease = 10 * time.Minute
	}
	if cfg.Notifications.PushBatchSize <= 0 || cfg.Notifications.PushBatchSize > 500 {
		cfg.Notifications.PushBatchSize = 500
	}

	if cfg.Currency == nil {
		cfg.Currency = &CurrencyConfig{Provider: "static"}
	}
	if cfg.Currency.BaseCurrency == "" {
		cfg.Currency.BaseCurrency = defaultCurrency
	}
	if cfg.Currency.CacheTTL <= 0 {
		cfg.Currency.CacheTTL = time.Hour
	}

	if cfg.Listings == nil {
		cfg.Listings = &ListingsConfig{}
	}
	if cfg.Listings.DefaultRadiusKm <= 0 {
		cfg.Listings.DefaultRadiusKm = 10
	}
	if cfg.Listings.MaxRadiusKm <= 0 {
		cfg.Listings.MaxRadiusKm = 100
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	if cfg.Scheduler.NotificationQueue == "" {
		cfg.Scheduler.NotificationQueue = "@every 10s"
	}
	if cfg.Scheduler.EscrowAutoRelease == "" {
		cfg.Scheduler.EscrowAutoRelease = "@every 15m"
	}
	if cfg.Scheduler.GroupBuyExpiry == "" {
		cfg.Scheduler.GroupBuyExpiry = "@every 5m"
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{BucketURL: "file:///tmp/expatmart"}
	}
	if cfg.Storage.KYCPrefix == "" {
		cfg.Storage.KYCPrefix = "kyc/"
	}
	if cfg.Storage.MaxDocumentSize <= 0 {
		cfg.Storage.MaxDocumentSize = 10 << 20
	}

	if cfg.PubSub != nil && cfg.PubSub.PublishTimeout <= 0 {
		cfg.PubSub.PublishTimeout = 10 * time.Second
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
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
