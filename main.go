// regguru - terminal client for the Reg-Guru document Q&A service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/cli"
	"github.com/jeranaias/regguru-tui/internal/config"
	"github.com/jeranaias/regguru-tui/internal/logging"
	"github.com/jeranaias/regguru-tui/internal/session"
	"github.com/jeranaias/regguru-tui/internal/ui/chat"
	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdHistory:
		cli.HandleHistory(args)
	case cli.CmdUpload:
		cli.HandleUpload(args)
	case cli.CmdDocuments:
		cli.HandleDocuments(args)
	case cli.CmdFeedback:
		cli.HandleFeedback(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(1)
	}
}

// runTUI wires configuration, storage, logging, and the API client
// into the Bubble Tea chat program.
func runTUI(args cli.Args) {
	cfg := config.Global()
	styles.ResolveTheme(cfg.UI.Theme)

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		logger = logging.Nop()
	}
	defer logger.Sync()

	baseURL := cfg.Server.BaseURL
	if args.Server != "" {
		baseURL = args.Server
	}
	client := api.NewClient(baseURL).
		WithTimeout(cfg.Timeout()).
		WithMaxRetries(cfg.Server.MaxRetries).
		WithLogger(logger)

	store, err := cli.OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := session.NewManager("", store, logger)
	sess.Restore()
	flow := upload.NewFlow(client, logger)

	model := chat.New(cfg, client, sess, flow, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Config edits take effect on the next theme-sensitive redraw.
	watcher, err := config.Watch(func(next *config.Config) {
		styles.ResolveTheme(next.UI.Theme)
		logger.Info("configuration reloaded", zap.String("theme", next.UI.Theme))
	})
	if err == nil {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
