// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package tui is the terminal surface for the sign-in form. It turns
// bubbletea key and mouse messages into session.Input and draws the
// session.View the controller derives from each new state.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/oops"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/session"
)

const cursor = "_"

// Model is the bubbletea model driving one session.
type Model struct {
	ctx    context.Context //nolint:containedctx // bubbletea Update has no context parameter
	ctrl   *session.Controller
	state  session.State
	styles Styles
}

// NewModel creates a Model over ctrl starting from state.
func NewModel(ctx context.Context, ctrl *session.Controller, state session.State) Model {
	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		state:  state,
		styles: DefaultStyles(ctrl.Layout().Username.W),
	}
}

// State returns the current session state.
func (m Model) State() session.State { return m.state }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Every key or mouse message is one cycle.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	in, ok := m.input(msg)
	if !ok {
		return m, nil
	}
	m.state = m.ctrl.Step(m.ctx, m.state, in)
	if m.state.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// input translates a bubbletea message. The pointer keeps its last position
// for key messages so hover survives typing.
func (m Model) input(msg tea.Msg) (session.Input, bool) {
	in := session.Input{Pointer: m.state.Pointer}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab:
			in.Toggle = true
		case tea.KeyBackspace, tea.KeyCtrlH:
			in.Delete = true
		case tea.KeyEnter:
			in.Submit = true
		case tea.KeyUp:
			in.FocusRequest = session.FocusUsername
		case tea.KeyDown:
			in.FocusRequest = session.FocusPassword
		case tea.KeyCtrlC, tea.KeyEsc:
			in.CloseRequested = true
		case tea.KeySpace:
			in.Typed = []rune{' '}
		case tea.KeyRunes:
			if msg.Alt {
				return in, false
			}
			in.Typed = msg.Runes
		default:
			return in, false
		}
	case tea.MouseMsg:
		in.Pointer = session.Point{X: msg.X, Y: msg.Y}
		in.Pressed = msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	default:
		return in, false
	}
	return in, true
}

// View implements tea.Model.
func (m Model) View() string {
	v := m.ctrl.View(m.state)
	s := m.styles

	tabs := make([]string, 0, len(v.Tabs))
	for _, tab := range v.Tabs {
		style := s.Tab
		if tab.Selected {
			style = s.TabSelected
		}
		tabs = append(tabs, style.Render(tab.Label))
	}

	action := s.Action
	if v.Action.Hover {
		action = s.ActionHover
	}

	message := ""
	switch v.MessageKind {
	case auth.OutcomeSuccess:
		message = s.Success.Render(v.Message)
	case auth.OutcomeFailure:
		message = s.Failure.Render(v.Message)
	}

	rows := []string{
		s.Title.Render(v.Title),
		"",
		strings.Join(tabs, ""),
		"",
		s.Label.Render(v.Username.Label),
		m.field(v.Username),
		s.Label.Render(v.Password.Label),
		m.field(v.Password),
		"",
		action.Render(v.Action.Label),
		"",
		message,
		"",
		s.Help.Render(v.Help),
	}

	margin := strings.Repeat(" ", originX)
	lines := strings.Split(strings.Join(rows, "\n"), "\n")
	for i, line := range lines {
		lines[i] = margin + line
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) field(f session.FieldView) string {
	text := f.Text
	style := m.styles.Field
	if f.Active {
		style = m.styles.FieldActive
		text += cursor
	}
	return style.Render(text)
}

// Run drives the session in the terminal until it is done or ctx ends.
// It returns the final state. All-motion mouse mode is required so the
// action control sees hover without a button held.
func Run(ctx context.Context, ctrl *session.Controller, state session.State, opts ...tea.ProgramOption) (session.State, error) {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}, opts...)

	final, err := tea.NewProgram(NewModel(ctx, ctrl, state), options...).Run()
	if m, ok := final.(Model); ok {
		state = m.State()
	}
	if err != nil {
		return state, oops.Code("TUI_FAILED").Wrap(err)
	}
	return state, nil
}
