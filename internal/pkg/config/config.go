package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), credentials
// - default: Values common across all environments (timeouts, intervals), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	WhatsApp    WhatsAppConfig
	MercadoPago MercadoPagoConfig
	Delivery    DeliveryConfig
	Shipping    ShippingConfig
	SMTP        SMTPConfig
	Kafka       KafkaConfig
	Sweep       SweepConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// WhatsAppConfig drives both the checkout deep link and the outbound message
// sender. StoreNumber is the number that receives order summaries; leaving it
// empty makes whatsapp checkout fail with a configuration error.
type WhatsAppConfig struct {
	StoreNumber string        `envconfig:"WHATSAPP_STORE_NUMBER" default:""`
	APIBaseURL  string        `envconfig:"WHATSAPP_API_BASE_URL" default:""`
	APIToken    string        `envconfig:"WHATSAPP_API_TOKEN" default:""`
	Timeout     time.Duration `envconfig:"WHATSAPP_TIMEOUT" default:"10s"`
}

type MercadoPagoConfig struct {
	AccessToken string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN" default:""`
	BaseURL     string        `envconfig:"MERCADOPAGO_BASE_URL" default:"https://api.mercadopago.com"`
	Sandbox     bool          `envconfig:"MERCADOPAGO_SANDBOX" default:"true"`
	Timeout     time.Duration `envconfig:"MERCADOPAGO_TIMEOUT" default:"15s"`
}

type DeliveryConfig struct {
	BaseURL string        `envconfig:"DELIVERY_BASE_URL" default:""`
	APIKey  string        `envconfig:"DELIVERY_API_KEY" default:""`
	Timeout time.Duration `envconfig:"DELIVERY_TIMEOUT" default:"15s"`
}

type ShippingConfig struct {
	BaseURL          string        `envconfig:"SHIPPING_BASE_URL" default:""`
	APIKey           string        `envconfig:"SHIPPING_API_KEY" default:""`
	OriginPostalCode string        `envconfig:"SHIPPING_ORIGIN_POSTAL_CODE" default:""`
	Timeout          time.Duration `envconfig:"SHIPPING_TIMEOUT" default:"10s"`
}

type SMTPConfig struct {
	Host string `envconfig:"SMTP_HOST" default:""`
	Port string `envconfig:"SMTP_PORT" default:"587"`
	User string `envconfig:"SMTP_USER" default:""`
	Pass string `envconfig:"SMTP_PASS" default:""`
	From string `envconfig:"SMTP_FROM" default:""`
}

// KafkaConfig is optional; with no brokers configured the order event
// producer is a no-op.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"order-events"`
}

type SweepConfig struct {
	Interval    time.Duration `envconfig:"SWEEP_INTERVAL" default:"2m"`
	BatchSize   int           `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
	MaxAttempts int           `envconfig:"SWEEP_MAX_ATTEMPTS" default:"3"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig processes only the database variables; the migrate CLI runs
// without the rest of the server environment.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
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
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		WhatsApp: WhatsAppConfig{
			StoreNumber: "5511999990000",
			Timeout:     time.Second,
		},
		Sweep: SweepConfig{
			Interval:    time.Minute,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
