// internal/infra/secret/secret_provider_sm.go
package secret

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var ErrNotConfigured = errors.New("secret: provider not configured")

// ProviderSM reads secret payloads from Google Secret Manager.
type ProviderSM struct {
	SM        *secretmanager.Client
	ProjectID string
}

func NewProviderSM(sm *secretmanager.Client, projectID string) *ProviderSM {
	return &ProviderSM{SM: sm, ProjectID: strings.TrimSpace(projectID)}
}

// Access returns the trimmed payload of secretID. secretID may also be a
// full "projects/.../secrets/.../versions/..." resource name.
func (p *ProviderSM) Access(ctx context.Context, secretID string) (string, error) {
	if p == nil || p.SM == nil {
		return "", ErrNotConfigured
	}
	name, err := ResourceName(p.ProjectID, secretID, "")
	if err != nil {
		return "", err
	}

	resp, err := p.SM.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("secret: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("secret: empty payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}

// ResourceName builds the secret version name. version defaults to "latest".
func ResourceName(projectID, secretID, version string) (string, error) {
	sid := strings.TrimSpace(secretID)
	if sid == "" {
		return "", errors.New("secret: secretID is empty")
	}
	if strings.HasPrefix(sid, "projects/") {
		if !strings.Contains(sid, "/versions/") {
			sid += "/versions/latest"
		}
		return sid, nil
	}
	prj := strings.TrimSpace(projectID)
	if prj == "" {
		return "", errors.New("secret: projectID is empty")
	}
	ver := strings.TrimSpace(version)
	if ver == "" {
		ver = "latest"
	}
	return "projects/" + prj + "/secrets/" + sid + "/versions/" + ver, nil
}
