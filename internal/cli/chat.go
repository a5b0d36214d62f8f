// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - interactive terminal chat without the full TUI.
//
// Commands inside the REPL:
//   /upload <path>   Upload a document
//   /docs            List this session's documents
//   /feedback up|down Rate the last answer
//   /clear           Clear the local session log
//   /quit, /q        Exit
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/config"
	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/session"
	"github.com/jeranaias/regguru-tui/internal/storage"
	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI wraps liner with persistent input history.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a line reader with history loaded from the config
// directory.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := ""
	if dir, err := config.ConfigDir(); err == nil {
		historyFile = filepath.Join(dir, "chat_history")
	}

	c := &ChatCLI{line: line, historyFile: historyFile}
	c.loadHistory()
	return c
}

func (c *ChatCLI) loadHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line, recording non-empty input in history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close persists history and restores the terminal.
func (c *ChatCLI) Close() {
	if c.historyFile != "" {
		if f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			c.line.WriteHistory(f)
			f.Close()
		}
	}
	c.line.Close()
}

// =============================================================================
// CHAT LOOP
// =============================================================================

// HandleChat runs the interactive chat loop.
func HandleChat(args Args) {
	client, cfg, logger := buildClient(args)
	defer logger.Sync()

	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := session.NewManager("", store, logger)
	sess.Restore()
	flow := upload.NewFlow(client, logger)

	cli := NewChatCLI()
	defer cli.Close()

	if !args.Quiet {
		fmt.Println(styles.RenderInfo("Reg-Guru chat. /upload <path> to add a document, /quit to exit."))
	}

	for {
		input, err := cli.ReadInput("> ")
		if err != nil {
			// Ctrl-C or EOF ends the session.
			fmt.Println()
			return
		}

		text := strings.TrimSpace(input)
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "/") {
			if quit := runReplCommand(text, client, sess, flow); quit {
				return
			}
			continue
		}

		askInRepl(text, client, sess, flow, logger)
	}
}

// askInRepl runs one question through the session manager so ordering
// and persistence behave exactly as in the TUI.
func askInRepl(text string, client *api.Client, sess *session.Manager, flow *upload.Flow, logger *zap.Logger) {
	seq, ok := sess.Send(text, time.Now())
	if !ok {
		return
	}

	answer, err := client.Chat(context.Background(), text)
	if err != nil {
		sess.ResolveFailure(seq, time.Now())
		fmt.Println(styles.RenderError(err.Error()))
		if last, ok := sess.LastMessage(); ok {
			fmt.Println(last.Text)
		}
		return
	}

	sess.ResolveSuccess(seq, answer, time.Now())
	fmt.Println(answer)

	saveReq := api.SaveQueryRequest{
		Question: text,
		Answer:   answer,
		Document: flow.ActiveDocument(),
	}
	if err := client.SaveQuery(context.Background(), saveReq); err != nil {
		logger.Warn("save query failed", zap.Error(err))
	}
}

// runReplCommand handles slash commands. Returns true to exit.
func runReplCommand(text string, client *api.Client, sess *session.Manager, flow *upload.Flow) bool {
	fields := strings.Fields(text)

	switch fields[0] {
	case "/quit", "/q", "/exit":
		return true

	case "/clear":
		sess.Clear()
		fmt.Println(styles.RenderSuccess("Session cleared"))

	case "/docs":
		docs := flow.Documents()
		if len(docs) == 0 {
			fmt.Println(styles.RenderInfo("No documents uploaded this session"))
			break
		}
		for _, doc := range docs {
			fmt.Printf("  %s  (%s)\n", doc.Filename, doc.UploadTime.Format("15:04:05"))
		}

	case "/upload":
		if len(fields) < 2 {
			fmt.Println(styles.RenderWarning("Usage: /upload <path>"))
			break
		}
		path := strings.Join(fields[1:], " ")
		uploadInRepl(path, flow)

	case "/feedback":
		rating := api.RatingThumbsUp
		if len(fields) > 1 && (fields[1] == "down" || fields[1] == api.RatingThumbsDown) {
			rating = api.RatingThumbsDown
		}
		feedbackInRepl(rating, client, sess)

	default:
		fmt.Println(styles.RenderWarning("Unknown command " + fields[0]))
	}
	return false
}

func uploadInRepl(path string, flow *upload.Flow) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println(styles.RenderError("Cannot read " + path))
		return
	}
	defer f.Close()

	outcome := flow.Upload(context.Background(), filepath.Base(path), f)
	switch outcome.Kind {
	case upload.OutcomeSuccess:
		fmt.Println(styles.RenderSuccess("Uploaded " + outcome.Filename))
		fmt.Println(styles.RenderInfo("Try: " + outcome.SuggestedQuestion))
	case upload.OutcomeDuplicate:
		fmt.Println(styles.RenderWarning(outcome.Notice))
	default:
		fmt.Println(styles.RenderError("Upload failed: " + outcome.Notice))
	}
}

func feedbackInRepl(rating string, client *api.Client, sess *session.Manager) {
	msgs := sess.Messages()
	var question, answer string
	for i := len(msgs) - 1; i >= 0; i-- {
		if answer == "" && msgs[i].Role == model.RoleBot {
			answer = msgs[i].Text
		} else if answer != "" && msgs[i].Role == model.RoleUser {
			question = msgs[i].Text
			break
		}
	}
	if answer == "" {
		fmt.Println(styles.RenderWarning("Nothing to rate yet"))
		return
	}

	req := api.FeedbackRequest{Query: question, Response: answer, Rating: rating}
	if err := client.LogFeedback(context.Background(), req); err != nil {
		fmt.Println(styles.RenderError("Feedback not recorded: " + err.Error()))
		return
	}
	fmt.Println(styles.RenderSuccess("Feedback recorded"))
}

// OpenStore picks the storage backend from configuration.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return storage.OpenSQLiteStore(cfg.Storage.SQLitePath)
	case "memory":
		return storage.NewMemStore(), nil
	default:
		if cfg.Storage.Dir != "" {
			return storage.NewFileStoreWithDir(cfg.Storage.Dir)
		}
		return storage.NewFileStore()
	}
}
