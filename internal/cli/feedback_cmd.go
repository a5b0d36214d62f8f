// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// feedback_cmd.go - rate the most recent saved answer.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/ui/styles"
)

// HandleFeedback logs a thumbs up/down for the newest saved query.
func HandleFeedback(args Args) {
	if args.Rating == "" {
		fmt.Fprintln(os.Stderr, "Usage: regguru feedback up|down [--comments TEXT]")
		os.Exit(1)
	}

	client, _, logger := buildClient(args)
	defer logger.Sync()

	ctx := context.Background()
	records, err := client.ListQueries(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No saved queries to rate.")
		os.Exit(1)
	}

	last := records[len(records)-1]
	req := api.FeedbackRequest{
		Query:    last.Question,
		Response: last.Answer,
		Rating:   args.Rating,
		Comments: args.Comments,
	}
	if err := client.LogFeedback(ctx, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(styles.RenderSuccess("Feedback recorded for: " + last.Question))
}
