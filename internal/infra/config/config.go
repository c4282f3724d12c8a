// internal/infra/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// Config holds the environment-derived settings of the API.
type Config struct {
	Port                     string
	GCPProjectID             string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string
	FirebaseProjectID        string

	// Bucket holding public inventory images.
	GCSBucket string

	// Optional Postgres sales ledger. Empty means reports read Firestore.
	DatabaseURL string

	// Mail. SENDGRID_API_KEY wins over the secret name.
	SendGridAPIKey       string
	SendGridAPIKeySecret string
	MailFrom             string
	SiteURL              string

	CORSAllowOrigin string
	StoreBackend    string
	LogFile         string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] WARN: .env not loaded: %v", err)
	}

	defaultProject := getenvDefault("GCP_PROJECT_ID", "efficient-clothing")

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		GCPProjectID:             defaultProject,
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		GCSBucket:   getenvDefault("GCS_BUCKET", "efficient-clothing-images"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),

		SendGridAPIKey:       strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		SendGridAPIKeySecret: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY_SECRET")),
		MailFrom:             strings.TrimSpace(os.Getenv("MAIL_FROM")),
		SiteURL:              strings.TrimRight(strings.TrimSpace(os.Getenv("SITE_URL")), "/"),

		CORSAllowOrigin: getenvDefault("CORS_ALLOW_ORIGIN", "*"),
		StoreBackend:    strings.ToLower(getenvDefault("STORE_BACKEND", BackendFirestore)),
		LogFile:         os.Getenv("LOG_FILE"),
	}

	if cfg.StoreBackend != BackendFirestore && cfg.StoreBackend != BackendMemory {
		log.Printf("[config] WARN: unknown STORE_BACKEND=%q, using %s", cfg.StoreBackend, BackendFirestore)
		cfg.StoreBackend = BackendFirestore
	}
	return cfg
}

// CredentialsFile returns the explicit credentials file, if any.
func (c *Config) CredentialsFile() string {
	if v := strings.TrimSpace(c.FirestoreCredentialsFile); v != "" {
		return v
	}
	return strings.TrimSpace(c.GCPCreds)
}

func (c *Config) UseMemory() bool { return c.StoreBackend == BackendMemory }

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
