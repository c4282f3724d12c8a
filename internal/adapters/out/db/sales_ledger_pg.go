package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// SalesLedgerSchema is applied by EnsureSchema at startup.
const SalesLedgerSchema = `
CREATE TABLE IF NOT EXISTS sales_ledger (
  sub_order_id  TEXT PRIMARY KEY,
  order_id      TEXT NOT NULL,
  store_name    TEXT NOT NULL,
  customer_id   TEXT NOT NULL,
  product_ids   TEXT[] NOT NULL DEFAULT '{}',
  total_amount  NUMERIC(12,2) NOT NULL,
  status        TEXT NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL,
  updated_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS sales_ledger_store_created_idx
  ON sales_ledger (store_name, created_at);
`

// SalesLedgerPG is a PostgreSQL projection of sub-orders used by the
// store sales report. Firestore stays the source of truth.
type SalesLedgerPG struct {
	db *sql.DB
}

var _ usecase.SalesLedger = (*SalesLedgerPG)(nil)

func NewSalesLedgerPG(db *sql.DB) *SalesLedgerPG {
	return &SalesLedgerPG{db: db}
}

func (r *SalesLedgerPG) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, SalesLedgerSchema); err != nil {
		return fmt.Errorf("sales_ledger_pg: ensure schema: %w", err)
	}
	return nil
}

// RecordOrder inserts one row per sub-order. Replays are ignored.
func (r *SalesLedgerPG) RecordOrder(ctx context.Context, o orderdom.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `
INSERT INTO sales_ledger (
  sub_order_id, order_id, store_name, customer_id, product_ids,
  total_amount, status, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (sub_order_id) DO NOTHING
`
	for _, so := range o.SubOrders {
		productIDs := make([]string, 0, len(so.Items))
		for _, it := range so.Items {
			productIDs = append(productIDs, it.ProductID)
		}
		updated := so.UpdatedAt
		if updated.IsZero() {
			updated = o.CreatedAt
		}
		if _, err = tx.ExecContext(ctx, q,
			so.ID, o.ID, so.StoreName, o.CustomerID, pq.Array(productIDs),
			so.TotalAmount, string(so.Status), o.CreatedAt.UTC(), updated.UTC(),
		); err != nil {
			return fmt.Errorf("sales_ledger_pg: insert sub-order %s: %w", so.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	log.Printf("[sales_ledger_pg] recorded order=%s subOrders=%d", o.ID, len(o.SubOrders))
	return nil
}

func (r *SalesLedgerPG) RecordStatus(ctx context.Context, subOrderID string, st orderdom.Status, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sales_ledger SET status = $1, updated_at = $2 WHERE sub_order_id = $3`,
		string(st), at.UTC(), subOrderID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return orderdom.ErrSubOrderNotFound
	}
	return nil
}

func (r *SalesLedgerPG) StoreSales(ctx context.Context, storeName string, tr common.TimeRange) ([]usecase.SalesRow, error) {
	where, args := buildSalesWhere(storeName, tr)
	q := fmt.Sprintf(`
SELECT sub_order_id, order_id, store_name, customer_id, total_amount, status, created_at
FROM sales_ledger
%s
ORDER BY created_at DESC, sub_order_id
`, where)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []usecase.SalesRow
	for rows.Next() {
		var (
			row    usecase.SalesRow
			status string
		)
		if err := rows.Scan(
			&row.SubOrderID, &row.OrderID, &row.StoreName, &row.CustomerID,
			&row.TotalAmount, &status, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		row.Status = orderdom.Status(status)
		out = append(out, row)
	}
	return out, rows.Err()
}

func buildSalesWhere(storeName string, tr common.TimeRange) (string, []any) {
	where := []string{"store_name = $1"}
	args := []any{strings.TrimSpace(storeName)}

	if !tr.From.IsZero() {
		args = append(args, tr.From.UTC())
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !tr.To.IsZero() {
		args = append(args, tr.To.UTC())
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	return "WHERE " + strings.Join(where, " AND "), args
}
