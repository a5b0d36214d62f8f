// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - configuration inspection.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/regguru-tui/internal/config"
)

// HandleConfig shows the active configuration or its file path.
func HandleConfig(args Args) {
	cfg := config.Global()

	switch args.Subcommand {
	case "", "show":
		fmt.Println("Server:")
		fmt.Printf("  base_url:     %s\n", cfg.Server.BaseURL)
		fmt.Printf("  timeout_secs: %d\n", cfg.Server.TimeoutSecs)
		fmt.Printf("  max_retries:  %d\n", cfg.Server.MaxRetries)
		fmt.Println("Storage:")
		fmt.Printf("  backend:      %s\n", cfg.Storage.Backend)
		fmt.Printf("  dir:          %s\n", cfg.Storage.Dir)
		fmt.Println("UI:")
		fmt.Printf("  theme:        %s\n", cfg.UI.Theme)
		fmt.Printf("  word_wrap:    %d\n", cfg.UI.WordWrap)
		fmt.Println("Log:")
		fmt.Printf("  path:         %s\n", cfg.Log.Path)
		fmt.Printf("  level:        %s\n", cfg.Log.Level)

	case "path":
		dir, err := config.ConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(filepath.Join(dir, "config.toml"))

	case "init":
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote default configuration.")

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand %q\n", args.Subcommand)
		os.Exit(1)
	}
}
