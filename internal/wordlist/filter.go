// Package wordlist provides word list filtering helpers.
package wordlist

// MaxWordLength caps the number of letters kept from a single line.
const MaxWordLength = 24

// CleanWord returns the leading run of ASCII letters in line, truncated to
// MaxWordLength. Everything from the first non-letter onwards is dropped.
func CleanWord(line string) string {
	end := 0
	for end < len(line) && end < MaxWordLength && isLetter(line[end]) {
		end++
	}
	return line[:end]
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
