// Package play runs a game over a line-based terminal protocol.
package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/render"
)

// Messages shared by every front-end.
const (
	PromptText         = "Enter a letter: "
	InvalidInputText   = "Please enter a valid letter."
	AlreadyGuessedText = "You have already guessed that letter."
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// ErrInvalidInput is returned by ParseLetter for anything but one letter.
var ErrInvalidInput = errors.New("input must be a single letter")

// Loop drives one game between a reader and a writer.
type Loop struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLoop returns a Loop reading guesses from in and writing to out.
func NewLoop(in io.Reader, out io.Writer) *Loop {
	return &Loop{in: bufio.NewReader(in), out: out}
}

// Run plays state to completion and returns the final status.
func (l *Loop) Run(state *game.State) (game.Status, error) {
	for state.Status() == game.Playing {
		if err := l.printTurn(state); err != nil {
			return state.Status(), err
		}
		letter, err := l.readLetter()
		if err != nil {
			return state.Status(), err
		}
		outcome, err := state.ApplyGuess(letter)
		if err != nil {
			return state.Status(), err
		}
		if outcome == game.AlreadyGuessed {
			if _, err := fmt.Fprintln(l.out, AlreadyGuessedText); err != nil {
				return state.Status(), err
			}
		}
	}
	return state.Status(), l.printResult(state)
}

// ParseLetter extracts a single letter from a line of input, upper-cased.
// Surrounding whitespace is ignored.
func ParseLetter(line string) (byte, error) {
	line = strings.TrimSpace(line)
	if len(line) != 1 {
		return 0, ErrInvalidInput
	}
	ch := line[0]
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch, nil
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 'A', nil
	default:
		return 0, ErrInvalidInput
	}
}

func (l *Loop) printTurn(state *game.State) error {
	lines := []string{
		render.Gallows(state.Incorrect()),
		"Word: " + render.Word(state.Revealed()),
		"Available letters: " + render.Alphabet(state.Guessed()),
		fmt.Sprintf("Incorrect guesses left: %d", state.Remaining()),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(l.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) readLetter() (byte, error) {
	for {
		if _, err := fmt.Fprint(l.out, PromptText); err != nil {
			return 0, err
		}
		line, err := l.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return 0, ErrInputClosed
			}
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		letter, perr := ParseLetter(line)
		if perr == nil {
			return letter, nil
		}
		if _, err := fmt.Fprintln(l.out, InvalidInputText); err != nil {
			return 0, err
		}
	}
}

func (l *Loop) printResult(state *game.State) error {
	if state.Status() == game.Won {
		_, err := fmt.Fprintf(l.out, "Congratulations! You guessed the word: %s\n", state.Word())
		return err
	}
	if _, err := fmt.Fprintln(l.out, render.Gallows(state.Incorrect())); err != nil {
		return err
	}
	_, err := fmt.Fprintf(l.out, "Game over! The word was: %s\n", state.Word())
	return err
}
