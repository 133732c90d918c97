package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Redis       RedisConfig
	Pricing     PricingConfig
	Inventory   InventoryConfig
	Reservation ReservationConfig
	PayHere     PayHereConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Colombo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Colombo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60

	// Rotating file sink, disabled when FilePath is empty
	FilePath   string `envconfig:"LOG_FILE_PATH" default:""`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
	MaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"30"`
	Compress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"true"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"15s"`
}

type PricingConfig struct {
	// per_night | flat
	Policy         string   `envconfig:"PRICING_POLICY" default:"per_night"`
	TaxBasisPoints int64    `envconfig:"PRICING_TAX_BASIS_POINTS" default:"1000"`
	Currency       string   `envconfig:"PRICING_CURRENCY" default:"LKR"`
	WeekendNights  []string `envconfig:"PRICING_WEEKEND_NIGHTS" default:"FRI,SAT"`
}

type InventoryConfig struct {
	// all | exclude_maintenance
	CountPolicy string `envconfig:"INVENTORY_COUNT_POLICY" default:"all"`
}

type ReservationConfig struct {
	EnforceCheckInWindow bool          `envconfig:"RESERVATION_ENFORCE_CHECKIN_WINDOW" default:"true"`
	IdempotencyTTL       time.Duration `envconfig:"RESERVATION_IDEMPOTENCY_TTL" default:"24h"`
	// capped at 365 by the stay period itself
	MaxNights int `envconfig:"RESERVATION_MAX_NIGHTS" default:"365"`
}

type PayHereConfig struct {
	MerchantID     string `envconfig:"PAYHERE_MERCHANT_ID" required:"true"`
	MerchantSecret string `envconfig:"PAYHERE_MERCHANT_SECRET" required:"true"`
	CheckoutURL    string `envconfig:"PAYHERE_CHECKOUT_URL" default:"https://sandbox.payhere.lk/pay/checkout"`
	ReturnURL      string `envconfig:"PAYHERE_RETURN_URL" default:"http://localhost:3000/public/payment/success"`
	CancelURL      string `envconfig:"PAYHERE_CANCEL_URL" default:"http://localhost:3000/public/payment/cancel"`
	NotifyURL      string `envconfig:"PAYHERE_NOTIFY_URL" default:"http://localhost:8080/api/payments/notify"`
}

type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"hotel_reservation"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file before processing the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Colombo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Colombo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			LockTTL: 15 * time.Second,
		},
		Pricing: PricingConfig{
			Policy:         "per_night",
			TaxBasisPoints: 1000,
			Currency:       "LKR",
			WeekendNights:  []string{"FRI", "SAT"},
		},
		Inventory: InventoryConfig{
			CountPolicy: "all",
		},
		Reservation: ReservationConfig{
			EnforceCheckInWindow: false,
			IdempotencyTTL:       24 * time.Hour,
			MaxNights:            365,
		},
		PayHere: PayHereConfig{
			MerchantID:     "1211149",
			MerchantSecret: "test-merchant-secret",
			CheckoutURL:    "https://sandbox.payhere.lk/pay/checkout",
			ReturnURL:      "http://localhost:3000/public/payment/success",
			CancelURL:      "http://localhost:3000/public/payment/cancel",
			NotifyURL:      "http://localhost:8889/api/payments/notify",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "hotel_reservation_test",
		},
	}
}
