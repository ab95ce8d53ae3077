// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultMaxLines is the number of lines considered from a word list.
const DefaultMaxLines = 100

// ErrEmptyList is returned when no usable words remain after cleaning.
var ErrEmptyList = errors.New("word list is empty")

// ResourceError reports a word list that could not be opened or read.
// Op is "open" or "read".
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Picker chooses one word from a non-empty list.
type Picker interface {
	Pick(words []string) string
}

// LoadWord loads the list at path and returns one word chosen by picker.
func LoadWord(path string, maxLines int, picker Picker) (string, error) {
	words, err := LoadWords(path, maxLines)
	if err != nil {
		return "", err
	}
	return picker.Pick(words), nil
}

// LoadWords reads the first maxLines lines of the file at path and returns the
// cleaned, non-empty words. The file is closed before returning.
func LoadWords(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := ReadWords(file, maxLines)
	if err != nil && !errors.Is(err, ErrEmptyList) {
		return nil, &ResourceError{Op: "read", Path: path, Err: err}
	}
	return words, err
}

// ReadWords reads up to maxLines lines from r, keeping the cleaned word of
// each line and discarding lines that clean to nothing. Lines of any length
// count once toward maxLines.
func ReadWords(r io.Reader, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	var words []string
	reader := bufio.NewReader(r)
	for lines := 0; lines < maxLines; lines++ {
		word, ok, err := readLineWord(reader)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

// readLineWord cleans the next line and skips whatever of it does not fit in
// the reader's buffer. ok is false once the input is exhausted.
func readLineWord(reader *bufio.Reader) (word string, ok bool, err error) {
	chunk, err := reader.ReadSlice('\n')
	if len(chunk) == 0 && errors.Is(err, io.EOF) {
		return "", false, nil
	}
	word = CleanWord(string(chunk))
	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = reader.ReadSlice('\n')
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	return word, true, nil
}
