package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	UploadDir     string
	PublicBaseURL string // optional, overrides the request host in static URLs

	MailProvider   string // smtp or sendgrid
	SMTPHost       string
	SMTPPort       string
	EmailSender    string
	EmailPassword  string // SMTP app password
	SendGridAPIKey string
	SendGridURL    string

	FFmpegPath    string
	FFprobePath   string
	VideoSegments int // 0 disables segmentation

	CertFontPath     string
	CertFontBoldPath string
	CertLogoPath     string
	CertLocale       string

	OTPTTL           time.Duration
	ResetCleanupSpec string
}

// LoadConfig builds the configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3006"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_DATABASE", "elearning_it"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		UploadDir:     getEnv("UPLOAD_DIR", "./data"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		MailProvider:   getEnv("MAIL_PROVIDER", "smtp"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		EmailSender:    getEnv("EMAIL_USER", ""),
		EmailPassword:  getEnv("EMAIL_PASS", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SendGridURL:    getEnv("SENDGRID_API_URL", "https://api.sendgrid.com/v3/mail/send"),

		FFmpegPath:    getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:   getEnv("FFPROBE_PATH", "ffprobe"),
		VideoSegments: getEnvInt("VIDEO_SEGMENTS", 0),

		CertFontPath:     getEnv("CERT_FONT_PATH", "./assets/fonts/Sarabun-Regular.ttf"),
		CertFontBoldPath: getEnv("CERT_FONT_BOLD_PATH", "./assets/fonts/Sarabun-Bold.ttf"),
		CertLogoPath:     getEnv("CERT_LOGO_PATH", "./assets/logo.png"),
		CertLocale:       getEnv("CERT_LOCALE", "th"),

		OTPTTL:           getEnvDuration("OTP_TTL", 10*time.Minute),
		ResetCleanupSpec: getEnv("RESET_CLEANUP_SPEC", "@every 30m"),
	}

	if cfg.EmailSender == "" && cfg.MailProvider == "smtp" {
		log.Println("Warning: EMAIL_USER is empty. Password reset emails will fail.")
	}
	if cfg.MailProvider == "sendgrid" && cfg.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY is empty. Password reset emails will fail.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
