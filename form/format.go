package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CommentsMaxLen is the comments character ceiling.
const CommentsMaxLen = 500

// commentsWarnThreshold flags the counter when the remaining budget drops
// under it.
const commentsWarnThreshold = 50

// FormatPhone rewrites a phone value into (3) (3)-(4) digit groups as the
// user types. Everything outside ASCII 0-9 is stripped first; anything past
// ten digits is dropped.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	value := digits.String()
	switch {
	case value == "":
		return ""
	case len(value) <= 3:
		return value
	case len(value) <= 6:
		return fmt.Sprintf("(%s) %s", value[:3], value[3:])
	default:
		if len(value) > 10 {
			value = value[:10]
		}
		return fmt.Sprintf("(%s) %s-%s", value[:3], value[3:6], value[6:])
	}
}

// CounterState describes the comments character counter.
type CounterState struct {
	Length    int
	Remaining int
	Warning   bool
	Label     string
}

// CommentsCounter computes the counter shown under the comments field.
// Length is counted in characters, matching the server-side ceiling.
func CommentsCounter(text string) CounterState {
	length := utf8.RuneCountInString(text)
	remaining := CommentsMaxLen - length
	return CounterState{
		Length:    length,
		Remaining: remaining,
		Warning:   remaining < commentsWarnThreshold,
		Label:     fmt.Sprintf("%d / %d characters", length, CommentsMaxLen),
	}
}
