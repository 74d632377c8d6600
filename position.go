package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position returns the line and column number for a certain position in a file. It is useful for recovering the position in a file that caused an error.
// It treats \n, \r, \r\n, \u2028 and \u2029 as newlines. The column counts runes, starting at 1.
func Position(src []byte, offset int) (line, col int, context string) {
	if offset < 0 || len(src) < offset {
		offset = len(src)
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; {
		c := src[i]
		if c == '\n' {
			i++
			line++
			lineStart = i
		} else if c == '\r' {
			if i+1 < len(src) && src[i+1] == '\n' {
				if offset == i+1 {
					break
				}
				i++
			}
			i++
			line++
			lineStart = i
		} else if c == 0xE2 && i+2 < len(src) && src[i+1] == 0x80 && (src[i+2] == 0xA8 || src[i+2] == 0xA9) {
			i += 3
			line++
			lineStart = i
		} else {
			i++
		}
	}
	col = utf8.RuneCount(src[lineStart:offset]) + 1
	context = positionContext(src[lineStart:], line, col)
	return
}

func positionContext(b []byte, line, col int) (context string) {
	for i, c := range b {
		if c == '\n' || c == '\r' {
			b = b[:i]
			break
		} else if c == 0xE2 && i+2 < len(b) && b[i+1] == 0x80 && (b[i+2] == 0xA8 || b[i+2] == 0xA9) {
			b = b[:i]
			break
		}
	}

	// cut off long lines around the column
	n := utf8.RuneCount(b)
	if 60 < n {
		runes := []rune(string(b))
		start, end := 0, n
		if 30 < col {
			start = col - 30
		}
		if start+60 < end {
			end = start + 60
		}
		s := string(runes[start:end])
		if 0 < start {
			s = "..." + s
			col = col - start + 3
		}
		if end < n {
			s += "..."
		}
		b = []byte(s)
	}

	context += fmt.Sprintf("%5d: %s\n", line, string(b))
	context += fmt.Sprintf("%s^", strings.Repeat(" ", col+6))
	return
}
