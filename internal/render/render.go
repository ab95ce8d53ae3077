// Package render turns game state into plain text.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hangman/internal/game"
)

const (
	frameWidth = 41
	border     = "+---------------------------------------+"
	title      = "HANGMAN"
)

// Body lines per incorrect-guess count. Each frame adds one part to the last.
var figures = [game.MaxIncorrectGuesses + 1][4]string{
	{"", "", "", ""},
	{"O", "", "", ""},
	{"O", "|", "", ""},
	{"O", `\|`, "", ""},
	{"O", `\|/`, "", ""},
	{"O", `\|/`, "|", ""},
	{"O", `\|/`, "|", `/ \`},
}

// GallowsLines returns the frame for incorrect, clamped to the valid range.
// Every line has the same display width.
func GallowsLines(incorrect int) []string {
	if incorrect < 0 {
		incorrect = 0
	}
	if incorrect > game.MaxIncorrectGuesses {
		incorrect = game.MaxIncorrectGuesses
	}
	lines := make([]string, 0, 8)
	lines = append(lines, border)
	lines = append(lines, center(title))
	lines = append(lines, center(""))
	for _, part := range figures[incorrect] {
		lines = append(lines, center(part))
	}
	lines = append(lines, border)
	return lines
}

// Gallows renders the frame for incorrect as a single block of text.
func Gallows(incorrect int) string {
	return strings.Join(GallowsLines(incorrect), "\n")
}

// Word renders the reveal buffer with one space between characters.
func Word(revealed string) string {
	if revealed == "" {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(revealed); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(revealed[i])
	}
	return b.String()
}

// Alphabet renders A through Z, replacing letters already guessed with '_'.
func Alphabet(guessed game.Letters) string {
	var b strings.Builder
	for i := 0; i < len(guessed); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if guessed[i] {
			b.WriteByte('_')
			continue
		}
		b.WriteByte(byte('A' + i))
	}
	return b.String()
}

// center places s in the middle of a frameWidth-wide line. Odd leftovers go
// to the right, which keeps the head above the middle of the torso.
func center(s string) string {
	left := (frameWidth - runewidth.StringWidth(s)) / 2
	if left < 0 {
		left = 0
	}
	return runewidth.FillRight(strings.Repeat(" ", left)+s, frameWidth)
}
