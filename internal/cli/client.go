// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/config"
	"github.com/jeranaias/regguru-tui/internal/logging"
)

// =============================================================================
// SHARED WIRING
// =============================================================================

// buildClient loads configuration and constructs the API client the
// handlers share. The --server flag wins over config and environment.
func buildClient(args Args) (*api.Client, *config.Config, *zap.Logger) {
	cfg := config.Global()

	level := cfg.Log.Level
	if args.Verbose {
		level = "debug"
	}
	logger, err := logging.New(cfg.Log.Path, level)
	if err != nil {
		logger = logging.Nop()
	}

	baseURL := cfg.Server.BaseURL
	if args.Server != "" {
		baseURL = args.Server
	}

	client := api.NewClient(baseURL).
		WithTimeout(cfg.Timeout()).
		WithMaxRetries(cfg.Server.MaxRetries).
		WithLogger(logger)

	return client, cfg, logger
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
