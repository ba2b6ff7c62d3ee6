package config

import (
	"fmt"
	"os"

	"github.com/divi1127/BackendDeepF/internal/utils"
)

const AppName = "deepforge-api"

type Config struct {
	AppName string
	AppPort string

	// Frontend origin allowed by CORS; empty means any origin.
	AppURL string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Email transport (optional; missing creds disable the notifier)
	EmailService string
	EmailUser    string
	EmailPass    string
	TeamEmail    string

	// Auth
	JWTSecret []byte

	// Uploads
	UploadDir string

	// Optional Twilio phone lookups
	TwilioAccountSID string
	TwilioAuthToken  string

	SeedDemoData bool
}

// LoadConfig reads the configuration from environment variables. Required
// values are fatal when missing; optional ones fall back to logged defaults.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("PORT")
	if appPort == "" {
		appPort = "5000"
		utils.Logger.Infof("PORT not set, defaulting to %s", appPort)
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		utils.Logger.Fatal("DB_HOST env var is missing")
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		utils.Logger.Fatal("DB_USER env var is missing")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		utils.Logger.Fatal("DB_NAME env var is missing")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	teamEmail := os.Getenv("TEAM_EMAIL")
	if teamEmail == "" {
		teamEmail = "team@deepforge.dev"
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Info("APP_URL not set, allowing all CORS origins")
	}

	return &Config{
		AppName:          AppName,
		AppPort:          appPort,
		AppURL:           appURL,
		DBHost:           dbHost,
		DBPort:           dbPort,
		DBUser:           dbUser,
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           dbName,
		EmailService:     os.Getenv("EMAIL_SERVICE"),
		EmailUser:        os.Getenv("EMAIL_USER"),
		EmailPass:        os.Getenv("EMAIL_PASS"),
		TeamEmail:        teamEmail,
		JWTSecret:        []byte(jwtSecret),
		UploadDir:        uploadDir,
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		SeedDemoData:     os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

// AllowedOrigins lists the CORS origins the server accepts.
func (c *Config) AllowedOrigins() []string {
	if c.AppURL == "" {
		return []string{"*"}
	}
	return []string{c.AppURL}
}

// DBUrl assembles the connection string the pool is created from.
func (c *Config) DBUrl() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}
