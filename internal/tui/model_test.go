package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/play"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, word string) *Model {
	t.Helper()
	state, err := game.New(word)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return NewModel(state)
}

func TestUpdateAppliesGuesses(t *testing.T) {
	m := newModel(t, "cat")
	m.Update(runeKey("x"))
	if m.state.Incorrect() != 1 {
		t.Fatalf("expected 1 incorrect, got %d", m.state.Incorrect())
	}
	m.Update(runeKey("C"))
	if m.state.Revealed() != "c__" {
		t.Fatalf("unexpected reveal: %q", m.state.Revealed())
	}
	m.Update(runeKey("c"))
	if m.notice != play.AlreadyGuessedText {
		t.Fatalf("expected repeat notice, got %q", m.notice)
	}
	m.Update(runeKey("a"))
	if m.notice != "" {
		t.Fatalf("expected notice cleared, got %q", m.notice)
	}
	_, cmd := m.Update(runeKey("t"))
	if cmd != nil {
		t.Fatalf("winning guess should not quit immediately")
	}
	if m.Status() != game.Won {
		t.Fatalf("expected won, got %v", m.Status())
	}
	if !strings.Contains(m.View(), "Congratulations! You guessed the word: cat") {
		t.Fatalf("missing win message:\n%s", m.View())
	}
	if _, cmd := m.Update(runeKey("z")); cmd == nil {
		t.Fatalf("expected quit after game over")
	}
}

func TestUpdateRejectsNonLetters(t *testing.T) {
	m := newModel(t, "dog")
	m.Update(runeKey("7"))
	if m.notice != play.InvalidInputText {
		t.Fatalf("expected validation notice, got %q", m.notice)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.notice != play.InvalidInputText {
		t.Fatalf("expected validation notice, got %q", m.notice)
	}
	if m.state.Incorrect() != 0 || m.state.Guessed() != (game.Letters{}) {
		t.Fatalf("invalid input mutated state")
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newModel(t, "dog")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestViewShowsLossAndWord(t *testing.T) {
	m := newModel(t, "dog")
	for _, r := range "qwerty" {
		m.Update(runeKey(string(r)))
	}
	if m.Status() != game.Lost {
		t.Fatalf("expected lost, got %v", m.Status())
	}
	if !strings.Contains(m.View(), "Game over! The word was: dog") {
		t.Fatalf("missing loss message:\n%s", m.View())
	}
}

func TestViewShowsPlayingState(t *testing.T) {
	m := newModel(t, "dog")
	m.Update(runeKey("o"))
	view := m.View()
	for _, want := range []string{"_ o _", "Incorrect guesses left: 6", "HANGMAN"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestGuessBindingMatchesLetterKeys(t *testing.T) {
	for _, s := range []string{"a", "q", "Z"} {
		if !key.Matches(runeKey(s), keys.Guess) {
			t.Fatalf("expected %q to match the guess binding", s)
		}
	}
	for _, msg := range []tea.KeyMsg{runeKey("1"), runeKey("ab"), {Type: tea.KeySpace}} {
		if key.Matches(msg, keys.Guess) {
			t.Fatalf("expected %q not to match the guess binding", msg.String())
		}
	}
}
