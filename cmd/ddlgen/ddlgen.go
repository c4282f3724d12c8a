// cmd/ddlgen/ddlgen.go
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/daniuniv/Efficient-Clothing/internal/adapters/out/db"
)

func mustWrite(path string, content string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

// ddlgen writes the Postgres DDL of the sales ledger so it can be applied
// by a migration tool instead of at API startup.
func main() {
	out := flag.String("out", "migrations", "output directory")
	flag.Parse()

	path := filepath.Join(*out, "0001_sales_ledger.sql")
	mustWrite(path, "-- generated by cmd/ddlgen\n"+db.SalesLedgerSchema)
	log.Printf("[ddlgen] wrote %s", path)
}
