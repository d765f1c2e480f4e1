// Package tui holds the interactive terminal screens: the API key login
// form, the logout confirmation and the channel card.
package tui

import (
	"fmt"
	"strings"

	"github.com/bluestero/ythandle/internal/platform/providers"
	"github.com/bluestero/ythandle/internal/services/auth"
	"github.com/bluestero/ythandle/internal/tui/components"
	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---

type keySavedMsg struct{}

type keySaveErrorMsg struct {
	err error
}

// --- Auth login model ---

type authLoginModel struct {
	spec  providers.CredentialSpec
	store auth.Store

	keyInput textinput.Model

	width  int
	height int

	err      error
	saved    bool
	quitting bool
}

// AuthLoginResult holds the outcome of the login screen.
type AuthLoginResult struct {
	Saved bool
}

func newAuthLoginModel(spec providers.CredentialSpec, store auth.Store) authLoginModel {
	ti := textinput.New()
	ti.Placeholder = "paste your " + spec.Prompt + " here"
	ti.Focus()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Width = 50

	return authLoginModel{
		spec:     spec,
		store:    store,
		keyInput: ti,
	}
}

// RunAuthLogin starts the full-window login screen. It returns nil when the
// user cancels.
func RunAuthLogin(spec providers.CredentialSpec, store auth.Store) (*AuthLoginResult, error) {
	p := tea.NewProgram(newAuthLoginModel(spec, store), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run auth login: %w", err)
	}

	final := result.(authLoginModel)
	if final.quitting && !final.saved {
		return nil, nil
	}
	return &AuthLoginResult{Saved: final.saved}, nil
}

func (m authLoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m authLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case keySavedMsg:
		m.saved = true
		return m, tea.Quit

	case keySaveErrorMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m authLoginModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		key := strings.TrimSpace(m.keyInput.Value())
		if key == "" {
			m.err = fmt.Errorf("API key cannot be empty")
			return m, nil
		}
		m.err = nil
		return m, m.saveKey(key)
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	m.err = nil
	return m, cmd
}

func (m authLoginModel) saveKey(key string) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.SetToken(m.spec.Provider, key); err != nil {
			return keySaveErrorMsg{err: err}
		}
		return keySavedMsg{}
	}
}

func (m authLoginModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "auth login", m.spec.DisplayName)
	footer := components.Footer(m.width, m.spec.EnvVar,
		components.KeyBinding{Key: "enter", Desc: "save"},
		components.KeyBinding{Key: "esc", Desc: "cancel"},
	)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderContent(contentH), footer)
}

func (m authLoginModel) renderContent(height int) string {
	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.ErrorText.Render(m.err.Error())
	}

	hint := "Enter your " + m.spec.Prompt
	if m.spec.EnvVar != "" {
		hint += " (or set " + m.spec.EnvVar + ")"
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("API Key"),
		styles.MutedText.Render(hint),
		"",
		m.keyInput.View(),
		errLine,
	)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, card)
}
