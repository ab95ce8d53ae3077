// Package model defines shared data structures.
package model

// Config defines game settings resolved from flags and the config file.
type Config struct {
	WordsPath string
	MaxLines  int
	Seed      int64
	TUI       bool
	Debug     bool
}
