package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
)

// ReportUsecase builds the store manager's sales and inventory reports.
type ReportUsecase struct {
	ledger SalesLedger
	items  invdom.Repository
	clock  Clock
}

func NewReportUsecase(ledger SalesLedger, items invdom.Repository, clock Clock) *ReportUsecase {
	return &ReportUsecase{ledger: ledger, items: items, clock: clockOrSystem(clock)}
}

type SalesReport struct {
	StoreName   string     `json:"storeName"`
	From        time.Time  `json:"from"`
	To          time.Time  `json:"to"`
	Rows        []SalesRow `json:"rows"`
	Revenue     float64    `json:"revenue"`
	SubOrders   int        `json:"subOrders"`
	GeneratedAt time.Time  `json:"generatedAt"`
}

type InventoryReportRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	Sizes    []string `json:"sizes"`
}

type InventoryReport struct {
	StoreName   string               `json:"storeName"`
	Items       []InventoryReportRow `json:"items"`
	TotalUnits  int                  `json:"totalUnits"`
	StockValue  float64              `json:"stockValue"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// Sales sums the store's sub-order totals created within r. A zero To
// means "until now".
func (u *ReportUsecase) Sales(ctx context.Context, s Session, r common.TimeRange) (SalesReport, error) {
	if err := s.manager(); err != nil {
		return SalesReport{}, err
	}
	if u.ledger == nil {
		return SalesReport{}, ErrNotConfigured
	}
	now := u.clock.Now().UTC()
	if r.To.IsZero() {
		r.To = now
	}
	if err := r.Validate(); err != nil {
		return SalesReport{}, err
	}

	rows, err := u.ledger.StoreSales(ctx, s.StoreName, r)
	if err != nil {
		return SalesReport{}, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })

	revenue := decimal.Zero
	for _, row := range rows {
		revenue = revenue.Add(decimal.NewFromFloat(row.TotalAmount))
	}
	if rows == nil {
		rows = []SalesRow{}
	}
	return SalesReport{
		StoreName:   s.StoreName,
		From:        r.From,
		To:          r.To,
		Rows:        rows,
		Revenue:     common.ToAmount(revenue),
		SubOrders:   len(rows),
		GeneratedAt: now,
	}, nil
}

func (u *ReportUsecase) Inventory(ctx context.Context, s Session) (InventoryReport, error) {
	if err := s.manager(); err != nil {
		return InventoryReport{}, err
	}
	items, err := u.items.List(ctx, invdom.Filter{StoreName: s.StoreName})
	if err != nil {
		return InventoryReport{}, err
	}
	rep := InventoryReport{StoreName: s.StoreName, Items: []InventoryReportRow{}, GeneratedAt: u.clock.Now().UTC()}
	value := decimal.Zero
	for _, it := range items {
		rep.Items = append(rep.Items, InventoryReportRow{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Stock:    it.Stock,
			Sizes:    it.SizeNames(),
		})
		rep.TotalUnits += it.Stock
		value = value.Add(common.LineTotal(it.Price, it.Stock))
	}
	rep.StockValue = common.ToAmount(value)
	return rep, nil
}
