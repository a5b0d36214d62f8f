// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - connectivity and inventory commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/ui/styles"
)

// HandleStatus checks the server and summarizes what it holds.
func HandleStatus(args Args) {
	client, cfg, logger := buildClient(args)
	defer logger.Sync()

	ctx := context.Background()
	if err := client.Ping(ctx); err != nil {
		fmt.Println(styles.RenderError("Server unreachable at " + client.BaseURL()))
		if args.Verbose {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println(styles.RenderSuccess("Server reachable at " + client.BaseURL()))

	docs, err := client.ListDocuments(ctx)
	if err != nil {
		fmt.Println(styles.RenderWarning("Could not list documents: " + err.Error()))
		return
	}
	fmt.Printf("  Documents: %d\n", len(docs))

	queries, err := client.ListQueries(ctx)
	if err == nil {
		fmt.Printf("  Saved queries: %d\n", len(queries))
	}
	if args.Verbose {
		fmt.Printf("  Storage backend: %s\n", cfg.Storage.Backend)
		fmt.Printf("  Timeout: %s\n", cfg.Timeout())
	}
}

// HandleDocuments lists the server's uploaded documents.
func HandleDocuments(args Args) {
	client, _, logger := buildClient(args)
	defer logger.Sync()

	records, err := client.ListDocuments(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if args.JSON {
		out, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(records) == 0 {
		fmt.Println("No documents uploaded yet.")
		return
	}
	for _, rec := range records {
		when := "unknown"
		if ts := model.ParseAPITimestamp(rec.UploadTime); !ts.IsZero() {
			when = ts.Format("Jan 2, 2006 15:04")
		}
		fmt.Printf("  %-40s  %s\n", rec.Filename, when)
	}
}
