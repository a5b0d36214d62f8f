// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - saved query browsing from the command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/regguru-tui/internal/history"
	uihistory "github.com/jeranaias/regguru-tui/internal/ui/history"
	"github.com/jeranaias/regguru-tui/internal/util"
)

// HandleHistory lists saved queries, filtered by the flags. With
// --tui (and a terminal) it opens the interactive browser instead.
func HandleHistory(args Args) {
	client, _, logger := buildClient(args)
	defer logger.Sync()

	if args.Subcommand == "tui" && isTerminal() {
		model := uihistory.New(client, logger)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	records, err := client.ListQueries(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries := history.EntriesFromQueries(records)
	filter := history.NewFilter(time.Now())
	filter.Query = args.Query
	if args.File != "" {
		filter.Documents = []string{args.File}
	}
	switch args.Range {
	case "today":
		filter.Range = history.RangeToday
	case "week":
		filter.Range = history.RangeWeek
	}
	filtered := filter.Apply(entries)

	if args.JSON {
		out, _ := json.MarshalIndent(filtered, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(filtered) == 0 {
		fmt.Println("No saved queries match.")
		return
	}
	for _, entry := range filtered {
		date := entry.Date
		if date == "" {
			date = "unknown date"
		}
		fmt.Printf("%s  [%s]\n", date, entry.Document)
		fmt.Printf("  Q: %s\n", entry.Question)
		fmt.Printf("  A: %s\n\n", util.TruncateRunes(entry.Answer, 200))
	}
}
