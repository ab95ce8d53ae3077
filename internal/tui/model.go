// Package tui provides the Bubble Tea hangman interface.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/play"
	"github.com/verte-zerg/hangman/internal/render"
)

var (
	gallowsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	lettersStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	wonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	lostStyle    = noticeStyle.Bold(true)
)

type keyMap struct {
	Guess key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Guess: key.NewBinding(key.WithKeys(letterKeys()...), key.WithHelp("a-z", "guess")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

func letterKeys() []string {
	out := make([]string, 0, 52)
	for ch := 'a'; ch <= 'z'; ch++ {
		out = append(out, string(ch), string(ch-'a'+'A'))
	}
	return out
}

// Model implements the Bubble Tea game UI.
type Model struct {
	state  *game.State
	notice string
	help   help.Model

	width  int
	height int
}

// NewModel constructs a game TUI model for state.
func NewModel(state *game.State) *Model {
	return &Model{state: state, help: help.New()}
}

// Status reports the status of the underlying game.
func (m *Model) Status() game.Status {
	return m.state.Status()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if m.state.Status() != game.Playing {
			return m, tea.Quit
		}
		m.handleKey(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	if !key.Matches(msg, keys.Guess) {
		m.notice = play.InvalidInputText
		return
	}
	letter, err := play.ParseLetter(string(msg.Runes))
	if err != nil {
		m.notice = play.InvalidInputText
		return
	}
	outcome, err := m.state.ApplyGuess(letter)
	if err != nil {
		m.notice = play.InvalidInputText
		return
	}
	switch outcome {
	case game.AlreadyGuessed:
		m.notice = play.AlreadyGuessedText
	default:
		m.notice = ""
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderBody() string {
	sections := []string{
		gallowsStyle.Render(render.Gallows(m.state.Incorrect())),
		"",
		wordStyle.Render(render.Word(m.state.Revealed())),
		"",
	}
	switch m.state.Status() {
	case game.Won:
		sections = append(sections,
			wonStyle.Render(fmt.Sprintf("Congratulations! You guessed the word: %s", m.state.Word())),
			footerStyle.Render("press any key to exit"))
	case game.Lost:
		sections = append(sections,
			lostStyle.Render(fmt.Sprintf("Game over! The word was: %s", m.state.Word())),
			footerStyle.Render("press any key to exit"))
	default:
		sections = append(sections,
			lettersStyle.Render(render.Alphabet(m.state.Guessed())),
			footerStyle.Render(fmt.Sprintf("Incorrect guesses left: %d", m.state.Remaining())),
			noticeStyle.Render(m.notice),
			m.help.View(keys))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}
