// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"github.com/daniuniv/Efficient-Clothing/internal/adapters/in/http/handlers"
	"github.com/daniuniv/Efficient-Clothing/internal/adapters/in/http/middleware"
	catalog "github.com/daniuniv/Efficient-Clothing/internal/application/query/catalog"
	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

// RouterDeps collects the usecases and middleware injected by the DI container.
type RouterDeps struct {
	Catalog     *catalog.CatalogQuery
	AccountUC   *usecase.AccountUsecase
	CartUC      *usecase.CartUsecase
	CheckoutUC  *usecase.CheckoutUsecase
	OrderUC     *usecase.OrderUsecase
	InventoryUC *usecase.InventoryUsecase
	ReviewUC    *usecase.ReviewUsecase
	ReportUC    *usecase.ReportUsecase

	Auth *middleware.AuthMiddleware

	// OrderFeed serves GET /manager/orders/feed (websocket). Optional.
	OrderFeed http.Handler

	AllowOrigin string
}

// NewRouter mounts the storefront, customer, manager and owner surfaces.
// Routes whose usecase is nil are not mounted.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	signedIn := deps.Auth.Handler

	handle := func(h http.Handler, patterns ...string) {
		for _, p := range patterns {
			mux.Handle(p, h)
		}
	}

	// public
	if deps.Catalog != nil {
		handle(handlers.NewCatalogHandler(deps.Catalog), "/catalog", "/catalog/")
	}
	if deps.AccountUC != nil {
		account := handlers.NewAccountHandler(deps.AccountUC)
		handle(account, "/accounts")
		handle(signedIn(account), "/me/profile", "/me/account", "/me/sign-out")
		handle(signedIn(handlers.NewOwnerHandler(deps.AccountUC)), "/owner/managers/")
	}

	// customer
	if deps.CartUC != nil {
		handle(signedIn(handlers.NewCartHandler(deps.CartUC)), "/me/cart", "/me/cart/")
	}
	if deps.CheckoutUC != nil {
		handle(signedIn(handlers.NewCheckoutHandler(deps.CheckoutUC)), "/me/checkout")
	}
	if deps.OrderUC != nil {
		handle(signedIn(handlers.NewOrderHandler(deps.OrderUC)), "/me/orders", "/me/orders/")
		handle(signedIn(handlers.NewManagerOrderHandler(deps.OrderUC)), "/manager/orders", "/manager/orders/")
	}
	if deps.ReviewUC != nil {
		handle(signedIn(handlers.NewReviewHandler(deps.ReviewUC)), "/me/reviews/")
	}

	// store manager
	if deps.InventoryUC != nil {
		handle(signedIn(handlers.NewInventoryHandler(deps.InventoryUC)), "/manager/inventory", "/manager/inventory/")
	}
	if deps.ReportUC != nil {
		handle(signedIn(handlers.NewReportHandler(deps.ReportUC)), "/manager/reports/")
	}
	if deps.OrderFeed != nil {
		handle(signedIn(deps.OrderFeed), "/manager/orders/feed")
	}

	// CORS outermost so even panics answered by Recover carry the headers.
	return middleware.CORS(deps.AllowOrigin)(middleware.Recover(mux))
}
