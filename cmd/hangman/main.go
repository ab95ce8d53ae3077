// Package main provides the CLI entrypoint for hangman.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hangman/internal/config"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/generator"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/play"
	"github.com/verte-zerg/hangman/internal/tui"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

var (
	gameWords    string
	gameMaxLines int
	gameSeed     int64
	gameTUI      bool
	gameDebug    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hangman",
		Short:         "Terminal word-guessing game",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().StringVar(&gameWords, "words", config.DefaultWordListPath, "word list file, one word per line")
	rootCmd.Flags().IntVar(&gameMaxLines, "max-lines", wordlist.DefaultMaxLines, "number of word list lines to consider")
	rootCmd.Flags().Int64Var(&gameSeed, "seed", 0, "random seed (0 uses the current time)")
	rootCmd.Flags().BoolVar(&gameTUI, "tui", false, "use the full-screen interface")
	rootCmd.Flags().BoolVar(&gameDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "words", &gameWords, fileCfg.Game.Words)
	applyConfig(cmd, "max-lines", &gameMaxLines, fileCfg.Game.MaxLines)
	applyConfig(cmd, "seed", &gameSeed, fileCfg.Game.Seed)
	applyConfig(cmd, "tui", &gameTUI, fileCfg.Game.TUI)

	cfg := model.Config{
		WordsPath: gameWords,
		MaxLines:  gameMaxLines,
		Seed:      gameSeed,
		TUI:       gameTUI,
		Debug:     gameDebug,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)
	logger.Debug("loading word list", "path", cfg.WordsPath, "max_lines", cfg.MaxLines)

	word, err := wordlist.LoadWord(cfg.WordsPath, cfg.MaxLines, generator.NewSeeded(cfg.Seed))
	if err != nil {
		return wordListLoadError(err)
	}
	logger.Debug("word selected", "length", len(word))

	state, err := game.New(word)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if cfg.TUI {
		return runTUI(cmd.InOrStdin(), cmd.OutOrStdout(), state, logger)
	}
	status, err := play.NewLoop(cmd.InOrStdin(), cmd.OutOrStdout()).Run(state)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	logger.Debug("game finished", "status", status, "incorrect", state.Incorrect())
	return nil
}

func runTUI(in io.Reader, out io.Writer, state *game.State, logger *log.Logger) error {
	if !isTerminal(in) {
		return errNotTerminal
	}
	program := tea.NewProgram(tui.NewModel(state), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(*tui.Model); ok {
		logger.Debug("game finished", "status", m.Status(), "incorrect", state.Incorrect())
		if m.Status() != game.Playing {
			if _, err := fmt.Fprintln(out, resultLine(state)); err != nil {
				return err
			}
		}
	}
	return nil
}

var errNotTerminal = errors.New("tui mode requires an interactive terminal")

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func resultLine(state *game.State) string {
	if state.Status() == game.Won {
		return fmt.Sprintf("Congratulations! You guessed the word: %s", state.Word())
	}
	return fmt.Sprintf("Game over! The word was: %s", state.Word())
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level, Prefix: "hangman"})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangman configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# words = %q       # Word list file, one word per line
# max-lines = %d         # Number of word list lines to consider
# seed = 0                # Random seed (0 uses the current time)
# tui = false             # Use the full-screen interface
`,
		config.DefaultWordListPath,
		wordlist.DefaultMaxLines,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WordsPath == "" {
		return fmt.Errorf("words path must not be empty")
	}
	if cfg.MaxLines <= 0 {
		return fmt.Errorf("max-lines must be > 0")
	}
	return nil
}

func wordListLoadError(err error) error {
	var resErr *wordlist.ResourceError
	switch {
	case errors.As(err, &resErr):
		return err
	case errors.Is(err, wordlist.ErrEmptyList):
		return fmt.Errorf("no usable words: %w", err)
	default:
		return fmt.Errorf("failed to load word list: %w", err)
	}
}
