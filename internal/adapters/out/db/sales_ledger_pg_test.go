package db

import (
	"testing"
	"time"

	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
)

func TestBuildSalesWhere(t *testing.T) {
	where, args := buildSalesWhere(" A ", common.TimeRange{})
	if where != "WHERE store_name = $1" || len(args) != 1 || args[0] != "A" {
		t.Fatalf("where=%q args=%v", where, args)
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	where, args = buildSalesWhere("A", common.TimeRange{From: from})
	if where != "WHERE store_name = $1 AND created_at >= $2" || len(args) != 2 {
		t.Fatalf("where=%q args=%v", where, args)
	}

	to := from.Add(48 * time.Hour)
	where, args = buildSalesWhere("A", common.TimeRange{From: from, To: to})
	if where != "WHERE store_name = $1 AND created_at >= $2 AND created_at <= $3" || len(args) != 3 {
		t.Fatalf("where=%q args=%v", where, args)
	}
	if got := args[2].(time.Time); !got.Equal(to) {
		t.Fatalf("to arg = %v", got)
	}
}
