package notice

import "strings"

// ParsePeriod splits a "start ~ end" range into two dash separated dates.
// Anything other than exactly one "~" yields the placeholder pair.
func ParsePeriod(raw string) (start, end string) {
	parts := strings.Split(raw, "~")
	if len(parts) != 2 {
		return DatePlaceholder, DatePlaceholder
	}
	return normalizeDate(parts[0]), normalizeDate(parts[1])
}

func normalizeDate(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "-")
	if s == "" {
		return DatePlaceholder
	}
	return s
}
