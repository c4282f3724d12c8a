package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// SalesLedgerFS derives sales rows straight from the orders collection.
// It is the reporting backend when no Postgres ledger is configured, so
// the Record* hooks have nothing to do.
type SalesLedgerFS struct {
	Orders *OrderRepositoryFS
}

var _ usecase.SalesLedger = (*SalesLedgerFS)(nil)

func NewSalesLedgerFS(client *firestore.Client) *SalesLedgerFS {
	return &SalesLedgerFS{Orders: NewOrderRepositoryFS(client)}
}

func (l *SalesLedgerFS) RecordOrder(context.Context, orderdom.Order) error { return nil }

func (l *SalesLedgerFS) RecordStatus(context.Context, string, orderdom.Status, time.Time) error {
	return nil
}

func (l *SalesLedgerFS) StoreSales(ctx context.Context, storeName string, r common.TimeRange) ([]usecase.SalesRow, error) {
	orders, err := l.Orders.List(ctx, orderdom.Filter{StoreName: storeName})
	if err != nil {
		return nil, err
	}
	var rows []usecase.SalesRow
	for _, o := range orders {
		if !r.Contains(o.CreatedAt) {
			continue
		}
		for _, s := range o.SubOrders {
			if s.StoreName != storeName {
				continue
			}
			rows = append(rows, usecase.SalesRow{
				OrderID:     o.ID,
				SubOrderID:  s.ID,
				StoreName:   s.StoreName,
				CustomerID:  o.CustomerID,
				TotalAmount: s.TotalAmount,
				Status:      s.Status,
				CreatedAt:   o.CreatedAt,
			})
		}
	}
	return rows, nil
}
