package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/memory"
	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []usecase.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, ev usecase.OrderEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func customer(uid string) usecase.Session {
	return usecase.Session{UID: uid, Email: uid + "@example.com", Role: userdom.RoleCustomer, Approved: true}
}

func manager(uid, store string) usecase.Session {
	return usecase.Session{UID: uid, Email: uid + "@example.com", Role: userdom.RoleStoreManager, StoreName: store, Approved: true}
}

func seedItem(t *testing.T, st *memory.Store, it invdom.Item) invdom.Item {
	t.Helper()
	it.Normalize()
	created, err := st.Inventory().Create(context.Background(), it)
	if err != nil {
		t.Fatalf("seed item %s: %v", it.ID, err)
	}
	return created
}

// twoStoreCatalog seeds A's tee at 10 and B's cap at 5.
func twoStoreCatalog(t *testing.T, st *memory.Store) {
	seedItem(t, st, invdom.Item{
		ID: "tee", Name: "Tee", Category: "Shirts", Price: 10, StoreName: "A", Images: "tee1.jpg,tee2.jpg",
		SizesTracked: true, Sizes: []invdom.SizeStock{{Size: "M", Quantity: 5}},
	})
	seedItem(t, st, invdom.Item{
		ID: "cap", Name: "Cap", Category: "Hats", Price: 5, StoreName: "B",
		Sizes: invdom.ParseLegacySizes("One"), Stock: 3,
	})
}
