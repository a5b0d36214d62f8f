// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// upload_cmd.go - document upload from the command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// HandleUpload sends one document to the server. A duplicate is
// reported as a notice, not an error: the document is already usable.
func HandleUpload(args Args) {
	if args.File == "" {
		fmt.Fprintln(os.Stderr, "Usage: regguru upload <file>")
		os.Exit(1)
	}

	client, _, logger := buildClient(args)
	defer logger.Sync()

	f, err := os.Open(args.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", args.File, err)
		os.Exit(1)
	}
	defer f.Close()

	flow := upload.NewFlow(client, logger)
	outcome := flow.Upload(context.Background(), filepath.Base(args.File), f)

	switch outcome.Kind {
	case upload.OutcomeSuccess:
		fmt.Println(styles.RenderSuccess("Uploaded " + outcome.Filename))
		if !args.Quiet {
			fmt.Println(styles.RenderInfo("Try: " + outcome.SuggestedQuestion))
		}
	case upload.OutcomeDuplicate:
		fmt.Println(styles.RenderWarning(outcome.Notice))
	default:
		fmt.Fprintln(os.Stderr, styles.RenderError("Upload failed: "+outcome.Notice))
		os.Exit(1)
	}
}
