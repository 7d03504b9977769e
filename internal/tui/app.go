package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

// transcriptLines сколько последних строк журнала показывать
const transcriptLines = 14

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Width(12)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	systemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type replyMsg struct {
	reply *ivr.Reply
	err   error
}

type resetMsg struct{}

type model struct {
	ctx     context.Context
	engine  Engine
	catalog CatalogSource

	phoneInput textinput.Model
	keys       keyMap
	help       help.Model

	callID   string
	snapshot ivr.Snapshot
	errMsg   string
	width    int
}

func newModel(ctx context.Context, engine Engine, catalog CatalogSource, phone string) model {
	in := textinput.New()
	in.Placeholder = "+46701234567"
	in.Prompt = "Telefon: "
	in.CharLimit = 20
	in.SetValue(phone)
	in.Focus()

	return model{
		ctx:        ctx,
		engine:     engine,
		catalog:    catalog,
		phoneInput: in,
		keys:       defaultKeyMap,
		help:       help.New(),
	}
}

// Run запускает терминальный симулятор звонка
func Run(ctx context.Context, engine Engine, catalog CatalogSource, phone string) error {
	p := tea.NewProgram(newModel(ctx, engine, catalog, phone), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) inCall() bool {
	return m.callID != ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case replyMsg:
		return m.applyReply(msg), nil

	case resetMsg:
		m.callID = ""
		m.snapshot = ivr.Snapshot{}
		m.errMsg = ""
		m.phoneInput.Focus()
		return m, textinput.Blink

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if !m.inCall() {
			return m.updateDialing(msg)
		}
		return m.updateInCall(msg)
	}

	return m, nil
}

func (m model) updateDialing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dial) {
		m.errMsg = ""
		return m, startCallCmd(m.ctx, m.engine, m.catalog, m.phoneInput.Value())
	}

	var cmd tea.Cmd
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	return m, cmd
}

func (m model) updateInCall(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Digits):
		return m, digitCmd(m.ctx, m.engine, m.callID, msg.String())
	case key.Matches(msg, m.keys.HangUp):
		return m, hangUpCmd(m.ctx, m.engine, m.callID)
	case key.Matches(msg, m.keys.Reset):
		return m, resetCmd(m.ctx, m.engine, m.callID)
	}
	return m, nil
}

func (m model) applyReply(msg replyMsg) model {
	m.errMsg = ""
	if msg.err != nil {
		m.errMsg = msg.err.Error()
	}
	if msg.reply == nil {
		return m
	}

	if errors.Is(msg.err, ivr.ErrSessionNotFound) {
		m.callID = ""
		m.snapshot = ivr.Snapshot{}
		m.phoneInput.Focus()
		return m
	}

	m.callID = msg.reply.CallID
	m.phoneInput.Blur()
	if snap, ok := m.engine.Snapshot(m.callID); ok {
		m.snapshot = snap
	}
	return m
}

func startCallCmd(ctx context.Context, engine Engine, catalog CatalogSource, phone string) tea.Cmd {
	return func() tea.Msg {
		offerings, err := catalog.ListOfferings(ctx)
		if err != nil {
			return replyMsg{err: fmt.Errorf("kunde inte hämta tjänster: %w", err)}
		}
		reply, err := engine.StartCall(ctx, phone, offerings)
		return replyMsg{reply: reply, err: err}
	}
}

func digitCmd(ctx context.Context, engine Engine, callID, digit string) tea.Cmd {
	return func() tea.Msg {
		reply, err := engine.HandleDigit(ctx, callID, digit)
		return replyMsg{reply: reply, err: err}
	}
}

func hangUpCmd(ctx context.Context, engine Engine, callID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := engine.HangUp(ctx, callID)
		return replyMsg{reply: reply, err: err}
	}
}

func resetCmd(ctx context.Context, engine Engine, callID string) tea.Cmd {
	return func() tea.Msg {
		engine.Reset(ctx, callID)
		return resetMsg{}
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("IVR-simulator"))
	b.WriteString("\n\n")

	if !m.inCall() {
		b.WriteString(m.phoneInput.View())
		b.WriteString("\n")
	} else {
		b.WriteString(panelStyle.Render(m.renderStatus()))
		b.WriteString("\n")
		b.WriteString(m.renderTranscript())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderStatus() string {
	s := m.snapshot
	rows := []string{
		row("Samtal", s.CallID),
		row("Telefon", s.CallerPhone),
		row("Steg", stepName(s)),
	}

	if s.Offering != nil {
		rows = append(rows, row("Tjänst", fmt.Sprintf("%s (%d min)", s.Offering.Label, s.Offering.DurationMinutes)))
	}

	if len(s.CandidateSlots) > 0 {
		items := make([]string, len(s.CandidateSlots))
		for i, slot := range s.CandidateSlots {
			item := fmt.Sprintf("%d. %s", i+1, slot)
			if i+1 == s.SelectedIndex {
				item = selectedStyle.Render("> " + item)
			} else {
				item = "  " + item
			}
			items[i] = item
		}
		rows = append(rows, row("Tider", strings.Join(items, "\n"+strings.Repeat(" ", 12))))
	}

	rows = append(rows,
		row("Reservation", orDash(s.HoldID)),
		row("Bokning", orDash(s.BookingID)),
	)
	return strings.Join(rows, "\n")
}

func (m model) renderTranscript() string {
	log := m.snapshot.Log
	if len(log) > transcriptLines {
		log = log[len(log)-transcriptLines:]
	}

	lines := make([]string, 0, len(log))
	for _, e := range log {
		ts := dimStyle.Render(e.Timestamp.Format("15:04:05"))
		var text string
		switch e.Kind {
		case ivr.LogUser:
			text = userStyle.Render(e.Message)
		case ivr.LogError:
			text = errStyle.Render(e.Message)
		default:
			text = systemStyle.Render(e.Message)
		}
		lines = append(lines, ts+" "+text)
	}
	return strings.Join(lines, "\n")
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func stepName(s ivr.Snapshot) string {
	if s.State == ivr.StateDone && s.Outcome != ivr.OutcomeNone {
		return fmt.Sprintf("%s (%s)", s.State, s.Outcome)
	}
	return string(s.State)
}
