package logic

import (
	"strings"
	"unicode"
)

// Wrap splits text into chunks of at most width runes. A chunk ends at the
// last whitespace within the limit when there is one, otherwise the word is
// cut at the limit. Chunks are trimmed. Text that already fits is returned as
// a single chunk, and empty text yields one empty chunk so every line item
// still gets a row.
func Wrap(text string, width int) []string {
	rest := []rune(strings.TrimSpace(text))
	if width < 1 || len(rest) <= width {
		return []string{string(rest)}
	}

	var chunks []string
	for len(rest) > width {
		breakAt := lastSpace(rest[:width+1])
		if breakAt <= 0 {
			breakAt = width
		}
		chunks = append(chunks, strings.TrimSpace(string(rest[:breakAt])))
		rest = []rune(strings.TrimSpace(string(rest[breakAt:])))
	}
	if len(rest) > 0 {
		chunks = append(chunks, string(rest))
	}
	return chunks
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
