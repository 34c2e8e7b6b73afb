package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tovrr/belmobile-backend/internal/catalog"
	"github.com/tovrr/belmobile-backend/pkg/config"
	"github.com/tovrr/belmobile-backend/pkg/db"
)

// Seeds (or replaces) one device's price catalog from a JSON file, e.g.:
//
//	go run ./cmd/dev/seedcatalog -device apple-iphone-13 -file catalog.json
func main() {
	var (
		deviceID = flag.String("device", "", "device catalog slug (e.g. apple-iphone-13)")
		file     = flag.String("file", "", "path to a catalog config JSON file")
	)
	flag.Parse()

	if *deviceID == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "missing -device or -file")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *file, err)
		os.Exit(1)
	}

	cfg, err := catalog.ParseAndValidate(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid catalog config: %v\n", err)
		os.Exit(1)
	}
	normalized, _ := json.Marshal(cfg)

	appCfg := config.Load()
	ctx := context.Background()

	pool, err := db.Open(ctx, appCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	rec, err := catalog.NewRepository(pool).Upsert(ctx, *deviceID, normalized)
	if err != nil {
		fmt.Fprintf(os.Stderr, "upsert: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded catalog %s for %s\n", rec.ID, rec.DeviceID)
}
