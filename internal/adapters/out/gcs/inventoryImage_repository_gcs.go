// internal/adapters/out/gcs/inventoryImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	gcscommon "github.com/daniuniv/Efficient-Clothing/internal/adapters/out/gcs/common"
	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// InventoryImageRepositoryGCS uploads product photos to a publicly
// readable bucket and hands back their storage.googleapis.com URL.
type InventoryImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

var _ usecase.ImageStore = (*InventoryImageRepositoryGCS)(nil)

func NewInventoryImageRepositoryGCS(client *storage.Client, bucket string) *InventoryImageRepositoryGCS {
	return &InventoryImageRepositoryGCS{Client: client, Bucket: strings.TrimSpace(bucket)}
}

func (r *InventoryImageRepositoryGCS) Upload(ctx context.Context, objectPath, contentType string, body io.Reader) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("inventoryImage_repository_gcs: storage client is nil")
	}
	if r.Bucket == "" {
		return "", errors.New("inventoryImage_repository_gcs: bucket is empty")
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if obj == "" {
		return "", errors.New("inventoryImage_repository_gcs: objectPath is empty")
	}

	w := r.Client.Bucket(r.Bucket).Object(obj).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	w.CacheControl = "public, max-age=3600"
	w.Metadata = map[string]string{
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	}
	n, err := io.Copy(w, body)
	if err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	log.Printf("[inventory_image_gcs] uploaded bucket=%s object=%s bytes=%d", r.Bucket, obj, n)
	return gcscommon.GCSPublicURL(r.Bucket, obj, ""), nil
}
