// internal/platform/di/infra.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "github.com/daniuniv/Efficient-Clothing/internal/infra/config"
	"github.com/daniuniv/Efficient-Clothing/internal/infra/database"
	firestoreinfra "github.com/daniuniv/Efficient-Clothing/internal/infra/firestore"
	"github.com/daniuniv/Efficient-Clothing/internal/infra/secret"
)

// Infra owns the external clients of the firestore backend.
// Firestore, GCS and Firebase Auth are strict; Secret Manager and
// Postgres are best-effort (warn + continue).
type Infra struct {
	Firestore     *firestoreinfra.ClientWrapper
	GCS           *storage.Client
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client
	DB            *database.DB
}

func NewInfra(ctx context.Context, cfg *appcfg.Config) (*Infra, error) {
	if cfg == nil {
		return nil, errors.New("di.infra: config is nil")
	}
	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	credFile := cfg.CredentialsFile()
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] Using credentials file for GCP clients: %s", redactPath(credFile))
	} else {
		log.Printf("[di.infra] Using Application Default Credentials (no credentials file configured)")
	}

	inf := &Infra{}

	// 1) Firestore (strict)
	fs, err := firestoreinfra.NewClient(ctx, projectID, credFile)
	if err != nil {
		return nil, fmt.Errorf("di.infra: %w", err)
	}
	inf.Firestore = fs

	// 2) GCS (strict)
	gcsClient, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		_ = inf.Close()
		return nil, fmt.Errorf("di.infra: storage.NewClient failed: %w", err)
	}
	inf.GCS = gcsClient
	log.Printf("[di.infra] GCS storage client initialized bucket=%s", cfg.GCSBucket)

	// 3) Firebase Auth (strict: every signed-in route depends on it)
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, clientOpts...)
	if err != nil {
		_ = inf.Close()
		return nil, fmt.Errorf("di.infra: firebase app init failed: %w", err)
	}
	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		_ = inf.Close()
		return nil, fmt.Errorf("di.infra: firebase auth init failed: %w", err)
	}
	inf.FirebaseAuth = authClient
	log.Printf("[di.infra] Firebase Auth initialized project=%s", cfg.FirebaseProjectID)

	// 4) Secret Manager (only needed to resolve the SendGrid key)
	if cfg.SendGridAPIKey == "" && cfg.SendGridAPIKeySecret != "" {
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: secretmanager.NewClient failed: %v (mail disabled)", err)
		} else {
			inf.SecretManager = sm
		}
	}

	// 5) Postgres sales ledger (optional)
	if cfg.DatabaseURL != "" {
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("[di.infra] WARN: postgres unavailable: %v (reports read Firestore)", err)
		} else {
			inf.DB = db
		}
	}

	return inf, nil
}

// SendGridAPIKey returns the configured key, or the secret's payload.
func (i *Infra) SendGridAPIKey(ctx context.Context, cfg *appcfg.Config) string {
	if cfg.SendGridAPIKey != "" {
		return cfg.SendGridAPIKey
	}
	if cfg.SendGridAPIKeySecret == "" || i == nil || i.SecretManager == nil {
		return ""
	}
	key, err := secret.NewProviderSM(i.SecretManager, cfg.GCPProjectID).Access(ctx, cfg.SendGridAPIKeySecret)
	if err != nil {
		log.Printf("[di.infra] WARN: could not read SendGrid key: %v", err)
		return ""
	}
	return key
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
	return nil
}

func redactPath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***/" + last
}
