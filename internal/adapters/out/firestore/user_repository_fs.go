// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// UserRepositoryFS stores profiles in "users", docId = Firebase uid.
type UserRepositoryFS struct {
	Client *firestore.Client
}

var _ userdom.Repository = (*UserRepositoryFS)(nil)

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *UserRepositoryFS) GetByUID(ctx context.Context, uid string) (userdom.Profile, error) {
	if r == nil || r.Client == nil {
		return userdom.Profile{}, errors.New("user repo: firestore client is nil")
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return userdom.Profile{}, userdom.ErrNotFound
	}
	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return userdom.Profile{}, userdom.ErrNotFound
		}
		return userdom.Profile{}, err
	}
	return profileFromSnapshot(snap), nil
}

func (r *UserRepositoryFS) Save(ctx context.Context, p userdom.Profile) error {
	if r == nil || r.Client == nil {
		return errors.New("user repo: firestore client is nil")
	}
	doc := map[string]any{
		"email":       p.Email,
		"role":        string(p.Role),
		"approved":    p.Approved,
		"contactInfo": p.ContactInfo,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
	if p.StoreName != "" {
		doc["storeName"] = p.StoreName
	}
	_, err := r.col().Doc(p.UID).Set(ctx, doc, firestore.MergeAll)
	return err
}

// ListPendingManagers queries by role only; profiles written without an
// approved field count as not approved.
func (r *UserRepositoryFS) ListPendingManagers(ctx context.Context) ([]userdom.Profile, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user repo: firestore client is nil")
	}
	it := r.col().Where("role", "==", string(userdom.RoleStoreManager)).Documents(ctx)
	defer it.Stop()

	var out []userdom.Profile
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if p := profileFromSnapshot(snap); p.PendingApproval() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *UserRepositoryFS) Delete(ctx context.Context, uid string) error {
	if r == nil || r.Client == nil {
		return errors.New("user repo: firestore client is nil")
	}
	_, err := r.col().Doc(strings.TrimSpace(uid)).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return userdom.ErrNotFound
	}
	return err
}

func profileFromSnapshot(snap *firestore.DocumentSnapshot) userdom.Profile {
	raw := snap.Data()
	p := userdom.Profile{
		UID:         snap.Ref.ID,
		Email:       asString(raw["email"]),
		StoreName:   asString(raw["storeName"]),
		ContactInfo: asString(raw["contactInfo"]),
		Approved:    asBool(raw["approved"]),
	}
	if role, err := userdom.ParseRole(asString(raw["role"])); err == nil {
		p.Role = role
	} else {
		p.Role = userdom.RoleCustomer
	}
	if _, ok := raw["approved"]; !ok && p.Role != userdom.RoleStoreManager {
		p.Approved = true
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		p.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		p.UpdatedAt = t
	}
	return p
}
