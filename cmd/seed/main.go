// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	fs "github.com/daniuniv/Efficient-Clothing/internal/adapters/out/firestore"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
	appcfg "github.com/daniuniv/Efficient-Clothing/internal/infra/config"
	firestoreinfra "github.com/daniuniv/Efficient-Clothing/internal/infra/firestore"
)

func main() {
	ownerUID := flag.String("owner-uid", "", "Firebase uid to register as the platform owner")
	ownerEmail := flag.String("owner-email", "", "email of the owner account")
	skipCatalog := flag.Bool("skip-catalog", false, "only write the owner profile")
	flag.Parse()

	ctx := context.Background()
	cfg := appcfg.Load()

	cw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile())
	if err != nil {
		log.Fatalf("[seed] %v", err)
	}
	defer cw.Close()

	now := time.Now().UTC()

	if !*skipCatalog {
		items := sampleCatalog(now)
		if err := fs.NewInventoryRepositoryFS(cw.Client).SeedBatch(ctx, items); err != nil {
			log.Fatalf("[seed] inventory batch: %v", err)
		}
		log.Printf("[seed] inventory seeded items=%d", len(items))
	}

	if uid := strings.TrimSpace(*ownerUID); uid != "" {
		p, err := userdom.NewProfile(uid, *ownerEmail, userdom.RoleOwner, "", "", now)
		if err != nil {
			log.Fatalf("[seed] owner profile: %v", err)
		}
		if err := fs.NewUserRepositoryFS(cw.Client).Save(ctx, p); err != nil {
			log.Fatalf("[seed] save owner: %v", err)
		}
		log.Printf("[seed] owner profile written uid=%s", uid)
	}
}

func sampleCatalog(now time.Time) []invdom.Item {
	tracked := func(pairs ...any) []invdom.SizeStock {
		out := make([]invdom.SizeStock, 0, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			out = append(out, invdom.SizeStock{Size: pairs[i].(string), Quantity: pairs[i+1].(int)})
		}
		return out
	}
	return []invdom.Item{
		{
			ID: "seed-chino", Name: "Classic Chino", Category: "Pants", Price: 45,
			Sizes: tracked("30", 4, "32", 6, "34", 3), SizesTracked: true,
			StoreName: "Urban Threads", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "seed-jogger", Name: "Fleece Jogger", Category: "Sweatpants", Price: 30,
			Sizes: tracked("S", 5, "M", 8, "L", 2), SizesTracked: true,
			StoreName: "Urban Threads", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "seed-raw-denim", Name: "Raw Denim", Category: "Jeans", Price: 80,
			Sizes: tracked("31", 2, "33", 2), SizesTracked: true,
			StoreName: "Denim Co", CreatedAt: now, UpdatedAt: now,
		},
		{
			// legacy shape: sizes as a plain string, stock shared by all sizes
			ID: "seed-tee", Name: "Pocket Tee", Category: "Shirts", Price: 15,
			Sizes: invdom.ParseLegacySizes("S,M,L"), Stock: 20,
			StoreName: "Denim Co", CreatedAt: now, UpdatedAt: now,
		},
	}
}
