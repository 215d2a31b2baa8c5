// Package timeutil formats and parses the journal's time-spent strings.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	hourToken   = "hr(s)"
	minuteToken = "min(s)"
)

// FormatMinutes renders a non-negative minute total in the canonical
// "{H} hr(s) {M} min(s)" form. The hour segment is omitted when zero, the
// minute segment is omitted when zero, and a zero total renders "0 min(s)".
// Every aggregate in the persisted journal stores this form, so
// ParseMinutes(FormatMinutes(m)) == m must hold for all m >= 0.
func FormatMinutes(total int) string {
	hours := total / 60
	minutes := total % 60

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, hourToken))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, minuteToken))
	}
	if len(parts) == 0 {
		return "0 " + minuteToken
	}
	return strings.Join(parts, " ")
}

// ParseMinutes is the inverse of FormatMinutes. The integer before "hr(s)"
// counts sixties; the integer before "min(s)" (after any hour segment)
// counts ones. Unrecognized input parses as zero minutes.
func ParseMinutes(s string) int {
	total := 0
	if idx := strings.Index(s, hourToken); idx >= 0 {
		if hours, err := strconv.Atoi(strings.TrimSpace(s[:idx])); err == nil {
			total += hours * 60
		}
		s = s[idx+len(hourToken):]
	}
	if idx := strings.Index(s, minuteToken); idx >= 0 {
		if minutes, err := strconv.Atoi(strings.TrimSpace(s[:idx])); err == nil {
			total += minutes
		}
	}
	return total
}
