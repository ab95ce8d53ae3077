// Package game holds the guessing state of a single hangman round.
package game

import (
	"errors"
	"strings"
)

// MaxIncorrectGuesses is the number of misses that ends a game.
const MaxIncorrectGuesses = 6

const hidden = '_'

var (
	// ErrInvalidWord is returned for an empty or non-alphabetic target word.
	ErrInvalidWord = errors.New("word must be non-empty and contain only letters A-Z")
	// ErrInvalidLetter is returned when a guess is not a letter A-Z.
	ErrInvalidLetter = errors.New("guess must be a letter A-Z")
)

// Outcome is the result of a single guess.
type Outcome int

const (
	Correct Outcome = iota
	Incorrect
	AlreadyGuessed
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case AlreadyGuessed:
		return "already guessed"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Status is the derived phase of a game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Letters is the set of guessed letters, indexed 0 (A) through 25 (Z).
type Letters [26]bool

// Has reports whether letter (either case) is in the set.
func (l Letters) Has(letter byte) bool {
	idx, ok := letterIndex(letter)
	return ok && l[idx]
}

// State tracks one game. The zero value is not usable; call New.
type State struct {
	word      string
	revealed  []byte
	guessed   Letters
	incorrect int
}

// New starts a game for word.
func New(word string) (*State, error) {
	if word == "" {
		return nil, ErrInvalidWord
	}
	for i := 0; i < len(word); i++ {
		if _, ok := letterIndex(word[i]); !ok {
			return nil, ErrInvalidWord
		}
	}
	return &State{
		word:     word,
		revealed: []byte(strings.Repeat(string(hidden), len(word))),
	}, nil
}

// ApplyGuess records a guess of letter, matched case-insensitively.
func (s *State) ApplyGuess(letter byte) (Outcome, error) {
	idx, ok := letterIndex(letter)
	if !ok {
		return 0, ErrInvalidLetter
	}
	if s.Status() != Playing {
		return GameOver, nil
	}
	if s.guessed[idx] {
		return AlreadyGuessed, nil
	}
	s.guessed[idx] = true

	upper := byte('A' + idx)
	matched := false
	for i := 0; i < len(s.word); i++ {
		if toUpper(s.word[i]) == upper {
			s.revealed[i] = s.word[i]
			matched = true
		}
	}
	if !matched {
		s.incorrect++
		return Incorrect, nil
	}
	return Correct, nil
}

// Status derives the game phase from the current state.
func (s *State) Status() Status {
	switch {
	case string(s.revealed) == s.word:
		return Won
	case s.incorrect >= MaxIncorrectGuesses:
		return Lost
	default:
		return Playing
	}
}

// Word returns the target word with its original casing.
func (s *State) Word() string {
	return s.word
}

// Revealed returns a copy of the reveal buffer.
func (s *State) Revealed() string {
	return string(s.revealed)
}

// Guessed returns a copy of the guessed-letter set.
func (s *State) Guessed() Letters {
	return s.guessed
}

// Incorrect returns the number of incorrect guesses so far.
func (s *State) Incorrect() int {
	return s.incorrect
}

// Remaining returns how many incorrect guesses are still allowed.
func (s *State) Remaining() int {
	return MaxIncorrectGuesses - s.incorrect
}

func letterIndex(ch byte) (int, bool) {
	ch = toUpper(ch)
	if ch < 'A' || ch > 'Z' {
		return 0, false
	}
	return int(ch - 'A'), true
}

func toUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
