// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - one-shot question handler.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// HandleAsk sends one question and prints the answer. The exchange is
// saved to the server's history like any chat message.
func HandleAsk(args Args) {
	question := strings.TrimSpace(args.Query)
	if question == "" {
		fmt.Fprintln(os.Stderr, "Usage: regguru ask \"question\"")
		os.Exit(1)
	}

	client, _, logger := buildClient(args)
	defer logger.Sync()

	answer, err := client.Chat(context.Background(), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printAnswer(answer, args)

	saveReq := api.SaveQueryRequest{
		Question: question,
		Answer:   answer,
		Document: upload.DefaultDocumentName,
	}
	if err := client.SaveQuery(context.Background(), saveReq); err != nil {
		logger.Warn("save query failed", zap.Error(err))
	}
}

// printAnswer renders markdown when writing to a terminal, plain text
// otherwise (pipes, redirects).
func printAnswer(answer string, args Args) {
	if args.JSON {
		out, _ := json.Marshal(map[string]string{"response": answer})
		fmt.Println(string(out))
		return
	}
	if !isTerminal() {
		fmt.Println(answer)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(answer)
		return
	}
	out, err := renderer.Render(answer)
	if err != nil {
		fmt.Println(answer)
		return
	}
	fmt.Print(out)
}
