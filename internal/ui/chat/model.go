// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/config"
	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/session"
	"github.com/jeranaias/regguru-tui/internal/ui/components"
	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the top-level Bubble Tea model for the chat view.
type Model struct {
	cfg     *config.Config
	client  *api.Client
	session *session.Manager
	flow    *upload.Flow
	logger  *zap.Logger

	viewport viewport.Model
	input    textinput.Model
	typing   components.TypingIndicator
	scroll   *session.ScrollState
	renderer *glamour.TermRenderer
	theme    styles.Theme
	keys     KeyMap

	width  int
	height int
	ready  bool

	connected bool
	showHelp  bool

	// serverDocs is the inventory fetched at startup; session uploads
	// live in flow.
	serverDocs []model.UploadedDocument

	// notice and errText are one-line transient banners above the
	// input.
	notice  string
	errText string

	now func() time.Time
}

// New creates a chat model over an already-restored session.
func New(cfg *config.Config, client *api.Client, sess *session.Manager, flow *upload.Flow, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Ask about your documents..."
	input.Prompt = "> "
	input.CharLimit = 4000
	input.Focus()

	return &Model{
		cfg:     cfg,
		client:  client,
		session: sess,
		flow:    flow,
		logger:  logger,
		input:   input,
		typing:  components.NewTypingIndicator(),
		scroll:  session.NewScrollState(),
		theme:   styles.NewTheme(),
		keys:    DefaultKeyMap(),
		now:     time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (m *Model) WithClock(now func() time.Time) *Model {
	m.now = now
	return m
}

// Init starts the connectivity check and the input cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		pingCmd(m.client),
		loadDocumentsCmd(m.client),
		textinput.Blink,
	)
}

// =============================================================================
// LAYOUT
// =============================================================================

// resize applies a new terminal size: the viewport gets everything not
// taken by the header, banners, status bar, and input.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - m.chromeLines()
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	m.rebuildRenderer()
	m.refreshLog()
	if m.scroll.Following() {
		m.viewport.GotoBottom()
	}
}

// chromeLines counts the fixed rows around the viewport.
func (m *Model) chromeLines() int {
	// Header, typing/banner line, status bar, input, help.
	return 5
}

// wrapWidth is the effective text width for message rendering.
func (m *Model) wrapWidth() int {
	w := m.cfg.UI.WordWrap
	if m.width > 0 && m.width-4 < w {
		w = m.width - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) rebuildRenderer() {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.wrapWidth()),
	)
	if err != nil {
		m.logger.Warn("glamour renderer init failed", zap.Error(err))
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

// =============================================================================
// SEND CYCLE
// =============================================================================

// submit sends the input field's text as a question. Blank input is a
// no-op. The question lands in the log immediately; the answer arrives
// later as a ChatResultMsg tagged with the send sequence.
func (m *Model) submit() tea.Cmd {
	text := m.input.Value()
	seq, ok := m.session.Send(text, m.now())
	if !ok {
		return nil
	}

	m.input.Reset()
	m.errText = ""
	m.scroll.OnUserSend()
	m.refreshLog()
	m.viewport.GotoBottom()

	cmds := []tea.Cmd{
		sendChatCmd(m.client, m.session.Key(), seq, text),
	}
	if !m.typing.Active() {
		cmds = append(cmds, m.typing.Start())
	}
	return tea.Batch(cmds...)
}

// activeDocument names the document questions run against: the newest
// session upload, else the newest server-side document, else the
// server's default.
func (m *Model) activeDocument() string {
	if doc := m.flow.ActiveDocument(); doc != upload.DefaultDocumentName {
		return doc
	}
	if len(m.serverDocs) > 0 {
		return m.serverDocs[len(m.serverDocs)-1].Filename
	}
	return upload.DefaultDocumentName
}

// lastExchange returns the most recent answered question, for feedback
// submissions.
func (m *Model) lastExchange() (question, answer string, ok bool) {
	msgs := m.session.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role != model.RoleBot {
			continue
		}
		answer = msgs[i].Text
		for j := i - 1; j >= 0; j-- {
			if msgs[j].Role == model.RoleUser {
				return msgs[j].Text, answer, true
			}
		}
		return "", answer, true
	}
	return "", "", false
}

// linesFromBottom reports how far the viewport is scrolled above the
// latest content.
func (m *Model) linesFromBottom() int {
	total := m.viewport.TotalLineCount()
	visible := m.viewport.YOffset + m.viewport.Height
	if visible >= total {
		return 0
	}
	return total - visible
}
