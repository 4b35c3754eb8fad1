// Package chat provides the conversational question-answering view.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driving/tui/messages"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driving/tui/styles"
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

const inputChrome = 3 // input border plus help line

// View is the chat view: scrolling transcript above, input below.
type View struct {
	styles   *styles.Styles
	input    textinput.Model
	viewport viewport.Model

	assistant driving.AssistantService
	session   *domain.Session
	ctx       context.Context

	transcript []string
	waiting    bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a chat view backed by the assistant service.
func NewView(s *styles.Styles, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "Ask about poultry farming..."
	input.CharLimit = 500
	input.Focus()

	return &View{
		styles:    s,
		input:     input,
		viewport:  viewport.New(80, 20),
		assistant: assistant,
		session:   domain.NewSession(uuid.NewString()),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for assistant calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnswerCompleted:
		v.waiting = false
		v.dropPlaceholder()
		if msg.Err != nil {
			v.err = msg.Err
			v.appendLine(v.styles.Error.Render("error: " + msg.Err.Error()))
		} else {
			v.appendLine(v.styles.Answer.Render(msg.Answer.Render()))
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	var inputCmd, vpCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	v.viewport, vpCmd = v.viewport.Update(msg)
	return v, tea.Batch(inputCmd, vpCmd)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return v, tea.Quit

	case tea.KeyEnter:
		query := strings.TrimSpace(v.input.Value())
		if query == "" || v.waiting {
			return v, nil
		}
		v.input.Reset()
		v.err = nil
		v.waiting = true
		v.appendLine(v.styles.Question.Render("You: ") + query)
		v.appendLine(v.styles.Muted.Render("thinking..."))
		return v, v.performAsk(query)
	}

	var inputCmd, vpCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	v.viewport, vpCmd = v.viewport.Update(msg)
	return v, tea.Batch(inputCmd, vpCmd)
}

// performAsk runs the pipeline off the UI goroutine.
func (v *View) performAsk(query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := v.assistant.Ask(v.ctx, v.session, query)
		return messages.AnswerCompleted{Query: query, Answer: answer, Err: err}
	}
}

// dropPlaceholder removes the trailing "thinking..." line.
func (v *View) dropPlaceholder() {
	if n := len(v.transcript); n > 0 && strings.Contains(v.transcript[n-1], "thinking") {
		v.transcript = v.transcript[:n-1]
	}
}

func (v *View) appendLine(line string) {
	v.transcript = append(v.transcript, line)
	v.viewport.SetContent(strings.Join(v.transcript, "\n\n"))
	v.viewport.GotoBottom()
}

// SetDimensions updates the layout for a new terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = width - 6
	v.viewport.Width = width
	v.viewport.Height = height - inputChrome - 2
	v.viewport.SetContent(strings.Join(v.transcript, "\n\n"))
}

// Session exposes the conversation history.
func (v *View) Session() *domain.Session {
	return v.session
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Eggspert"))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d turns", v.session.Len())))
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("enter: ask • esc: quit"))
	return b.String()
}
