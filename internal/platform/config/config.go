package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// StrictReservation locks the applicant row while the pending-amount
	// aggregation runs, serializing concurrent submissions per account.
	StrictReservation bool
	// PendingSweepAge is how old a PENDING ledger intent must be before the
	// recovery sweep abandons it.
	PendingSweepAge time.Duration
	// PendingSweepSchedule is the cron expression driving the sweep.
	PendingSweepSchedule string

	// Kafka event publishing. Disabled when brokers are empty.
	KafkaBrokers    []string
	KafkaEventTopic string

	// SendGrid transactional mail. Simulated (logged only) when the key is empty.
	SendGridAPIKey string
	MailFromEmail  string
	MailFromName   string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "share-registry-app")
	viper.SetDefault("STRICT_RESERVATION", true)
	viper.SetDefault("PENDING_SWEEP_AGE", "10m")
	viper.SetDefault("PENDING_SWEEP_SCHEDULE", "*/5 * * * *")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_EVENT_TOPIC", "share-registry.events")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("MAIL_FROM_EMAIL", "no-reply@share-registry.local")
	viper.SetDefault("MAIL_FROM_NAME", "Share Registry")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.StrictReservation = viper.GetBool("STRICT_RESERVATION")

	sweepAgeStr := viper.GetString("PENDING_SWEEP_AGE")
	sweepAge, err := time.ParseDuration(sweepAgeStr)
	if err != nil {
		sweepAge = 10 * time.Minute
		log.Printf("Warning: Invalid value for PENDING_SWEEP_AGE ('%s'). Defaulting to %s.\n", sweepAgeStr, sweepAge.String())
	}
	cfg.PendingSweepAge = sweepAge
	cfg.PendingSweepSchedule = viper.GetString("PENDING_SWEEP_SCHEDULE")

	if brokers := viper.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = viper.GetStringSlice("KAFKA_BROKERS")
	}
	cfg.KafkaEventTopic = viper.GetString("KAFKA_EVENT_TOPIC")
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS not set. Domain events will not be published.")
	}

	cfg.SendGridAPIKey = viper.GetString("SENDGRID_API_KEY")
	cfg.MailFromEmail = viper.GetString("MAIL_FROM_EMAIL")
	cfg.MailFromName = viper.GetString("MAIL_FROM_NAME")
	if cfg.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Recovery mail will be simulated.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
