package ui

import (
	"strings"

	"tinygo.org/x/tinyfont"
)

// Wrap breaks s into lines no wider than width pixels in font.  Newlines
// in s start a new line; a blank line is kept as an empty string.  A word
// wider than width gets a line of its own.
func Wrap(font *tinyfont.Font, s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			next := line + " " + word
			if measure(font, next) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}

func measure(font *tinyfont.Font, s string) int {
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox)
}
