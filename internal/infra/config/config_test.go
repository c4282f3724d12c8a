package config

import "testing"

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("GCP_PROJECT_ID", "proj-x")
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("SITE_URL", "https://shop.example.com/")
	t.Setenv("FIRESTORE_CREDENTIALS_FILE", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %s", cfg.Port)
	}
	if cfg.FirestoreProjectID != "proj-x" {
		t.Fatalf("firestore project = %s", cfg.FirestoreProjectID)
	}
	if !cfg.UseMemory() {
		t.Fatalf("backend = %s", cfg.StoreBackend)
	}
	if cfg.SiteURL != "https://shop.example.com" {
		t.Fatalf("site url = %s", cfg.SiteURL)
	}
	if cfg.CredentialsFile() != "/tmp/creds.json" {
		t.Fatalf("creds = %s", cfg.CredentialsFile())
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	if got := Load().StoreBackend; got != BackendFirestore {
		t.Fatalf("backend = %s", got)
	}
}
