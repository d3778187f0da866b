// Package tui implements the interactive analysis session: tune
// thresholds, re-run classification, and save exports without leaving
// the terminal.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kfujino/elastilens/internal/cli"
	"github.com/kfujino/elastilens/internal/engine"
	"github.com/kfujino/elastilens/internal/model"
)

// Threshold input slots, in display order.
const (
	fieldHigh = iota
	fieldLow
	fieldLightMax
	fieldDeepMin
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Recommended zone threshold",
	"Counterproductive zone threshold",
	"Light discount max (%)",
	"Deep discount min (%)",
}

// Saver persists the current result's exports and returns a summary of
// what was written.
type Saver func(result *engine.Result) (string, error)

// Config carries the session's fixed inputs.
type Config struct {
	Data       []byte
	Names      string
	Thresholds model.ThresholdConfig
	Saver      Saver
}

// Model holds the interactive session state.
type Model struct {
	session *engine.Session
	config  Config
	keymap  KeyMap
	help    help.Model
	inputs  [fieldCount]textinput.Model
	focus   int
	errMsg  string
	status  string
	width   int
	height  int
}

// NewModel creates the session model and seeds the threshold inputs from
// the configuration.
func NewModel(cfg Config) Model {
	m := Model{
		session: engine.NewSession(engine.New()),
		config:  cfg,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
	}

	defaults := [fieldCount]float64{
		cfg.Thresholds.High,
		cfg.Thresholds.Low,
		cfg.Thresholds.LightDiscountMax,
		cfg.Thresholds.DeepDiscountMin,
	}
	for i := range m.inputs {
		in := textinput.New()
		in.SetValue(strconv.FormatFloat(defaults[i], 'f', -1, 64))
		in.CharLimit = 8
		in.Width = 8
		m.inputs[i] = in
	}
	m.inputs[0].Focus()

	return m
}

// Init runs the first analysis pass.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return rerunMsg{} }
}

type rerunMsg struct{}

// Update handles input events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rerunMsg:
		m.rerun()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextField):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keymap.PrevField):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keymap.Rerun):
			m.rerun()
			return m, nil
		case key.Matches(msg, m.keymap.Save):
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// thresholds parses the current input fields. Unparseable fields fall
// back to the session's starting configuration.
func (m *Model) thresholds() model.ThresholdConfig {
	cfg := m.config.Thresholds
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldHigh].Value()), 64); err == nil {
		cfg.High = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLow].Value()), 64); err == nil {
		cfg.Low = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLightMax].Value()), 64); err == nil {
		cfg.LightDiscountMax = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldDeepMin].Value()), 64); err == nil {
		cfg.DeepDiscountMin = v
	}
	return cfg
}

func (m *Model) rerun() {
	in := engine.Input{
		Data:       m.config.Data,
		Names:      m.config.Names,
		Thresholds: m.thresholds(),
	}
	if err := m.session.Refresh(context.Background(), in); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	if result, ok := m.session.Last(); ok {
		m.status = fmt.Sprintf("Analyzed %d products", len(result.Report.Rows))
	}
}

func (m *Model) save() {
	result, ok := m.session.Last()
	if !ok {
		m.errMsg = "nothing to save yet"
		return
	}
	if m.config.Saver == nil {
		m.errMsg = "saving is not configured"
		return
	}
	summary, err := m.config.Saver(result)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.status = summary
}

// View renders the session screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("elastilens: interactive session"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(fmt.Sprintf("%-34s %s\n", fieldLabels[i], m.inputs[i].View()))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(cli.ErrorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(cli.SuccessStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if result, ok := m.session.Last(); ok {
		b.WriteString(cli.RenderReport(result.Report.Rows))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keymap))
	b.WriteString("\n")

	return b.String()
}
