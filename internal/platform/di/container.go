// internal/platform/di/container.go
package di

import (
	"context"
	"log"

	httpin "github.com/daniuniv/Efficient-Clothing/internal/adapters/in/http"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/in/http/middleware"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/in/ws"
	authadapter "github.com/daniuniv/Efficient-Clothing/internal/adapters/out/auth"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/db"
	fs "github.com/daniuniv/Efficient-Clothing/internal/adapters/out/firestore"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/gcs"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/mail"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/memory"
	catalog "github.com/daniuniv/Efficient-Clothing/internal/application/query/catalog"
	uc "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	cartdom "github.com/daniuniv/Efficient-Clothing/internal/domain/cart"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	reviewdom "github.com/daniuniv/Efficient-Clothing/internal/domain/review"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
	appcfg "github.com/daniuniv/Efficient-Clothing/internal/infra/config"
)

// ports is the set of outbound adapters a backend provides.
type ports struct {
	carts    cartdom.Repository
	items    invdom.Repository
	orders   orderdom.Repository
	reviews  reviewdom.Repository
	users    userdom.Repository
	checkout uc.CheckoutStore
	ledger   uc.SalesLedger
	identity uc.IdentityProvider
	verifier middleware.TokenVerifier
	images   uc.ImageStore
}

// Container wires config, infra, adapters and usecases into RouterDeps.
type Container struct {
	Config    *appcfg.Config
	Infra     *Infra
	Memory    *memory.Store
	OrderFeed *ws.OrderFeed

	deps httpin.RouterDeps
}

func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()
	c := &Container{Config: cfg}

	var (
		p   ports
		err error
	)
	if cfg.UseMemory() {
		p = c.memoryPorts()
	} else {
		p, err = c.firestorePorts(ctx)
		if err != nil {
			return nil, err
		}
	}

	c.OrderFeed = ws.NewOrderFeed(cfg.CORSAllowOrigin)
	events := uc.Publishers{c.OrderFeed}

	var notifier uc.AccountNotifier
	if m := mail.NewNotificationMailerWithSendGrid(c.Infra.SendGridAPIKey(ctx, cfg), cfg.MailFrom, cfg.SiteURL); m != nil {
		events = append(events, m)
		notifier = m
	}

	accounts := uc.NewAccountUsecase(p.users, p.identity, notifier, nil)
	c.deps = httpin.RouterDeps{
		Catalog:     catalog.NewCatalogQuery(p.items, p.reviews),
		AccountUC:   accounts,
		CartUC:      uc.NewCartUsecase(p.carts, p.items),
		CheckoutUC:  uc.NewCheckoutUsecase(p.checkout, p.ledger, events, nil, nil),
		OrderUC:     uc.NewOrderUsecase(p.orders, p.ledger, events, nil),
		InventoryUC: uc.NewInventoryUsecase(p.items, p.images, nil, nil),
		ReviewUC:    uc.NewReviewUsecase(p.reviews, p.items, nil),
		ReportUC:    uc.NewReportUsecase(p.ledger, p.items, nil),
		Auth:        &middleware.AuthMiddleware{Verifier: p.verifier, Sessions: accounts},
		OrderFeed:   c.OrderFeed,
		AllowOrigin: cfg.CORSAllowOrigin,
	}

	log.Printf("[di] container ready backend=%s mail=%t", cfg.StoreBackend, notifier != nil)
	return c, nil
}

func (c *Container) memoryPorts() ports {
	log.Printf("[di] WARN: STORE_BACKEND=memory; data is lost on restart and tokens are plain uids")
	st := memory.NewStore()
	c.Memory = st
	return ports{
		carts:    st.Carts(),
		items:    st.Inventory(),
		orders:   st.Orders(),
		reviews:  st.Reviews(),
		users:    st.Users(),
		checkout: st,
		ledger:   st.Ledger(),
		identity: st.Identity(),
		verifier: st.Identity(),
		images:   st.Images(),
	}
}

func (c *Container) firestorePorts(ctx context.Context) (ports, error) {
	inf, err := NewInfra(ctx, c.Config)
	if err != nil {
		return ports{}, err
	}
	c.Infra = inf
	client := inf.Firestore.Client

	var ledger uc.SalesLedger = fs.NewSalesLedgerFS(client)
	if inf.DB != nil {
		pg := db.NewSalesLedgerPG(inf.DB.Client)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Printf("[di] WARN: %v (reports read Firestore)", err)
		} else {
			ledger = pg
		}
	}

	return ports{
		carts:    fs.NewCartRepositoryFS(client),
		items:    fs.NewInventoryRepositoryFS(client),
		orders:   fs.NewOrderRepositoryFS(client),
		reviews:  fs.NewReviewRepositoryFS(client),
		users:    fs.NewUserRepositoryFS(client),
		checkout: fs.NewCheckoutStoreFS(client),
		ledger:   ledger,
		identity: authadapter.NewFirebaseIdentity(inf.FirebaseAuth),
		verifier: inf.FirebaseAuth,
		images:   gcs.NewInventoryImageRepositoryGCS(inf.GCS, c.Config.GCSBucket),
	}, nil
}

func (c *Container) RouterDeps() httpin.RouterDeps { return c.deps }

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.Infra.Close()
}
