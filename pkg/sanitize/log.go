package sanitize

import (
	"fmt"
	"strings"
)

// LogLimit is the maximum length of sanitized log strings.
const LogLimit = 512

// Log sanitizes strings created from user input, e.g. file names, before they are logged.
func Log(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "''"
	} else if len(s) > LogLimit {
		return "?"
	}

	spaces := false

	s = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			spaces = true
			return r
		case r < 32, r == 127:
			return -1
		case r == '`', r == '"':
			return '\''
		case r == '$', r == '%', r == '{', r == '}', r == '<', r == '>':
			return -1
		}

		return r
	}, s)

	if spaces {
		return fmt.Sprintf("'%s'", s)
	}

	return s
}
