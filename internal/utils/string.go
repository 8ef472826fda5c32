package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if n < 1000 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// JoinWithMaxLength joins items with sep but stops before the result would
// exceed maxLen runes, ending with "..." instead. Items that do fit are
// never cut in half.
func JoinWithMaxLength(items []string, sep string, maxLen int) string {
	var b strings.Builder
	length := 0
	sepLen := utf8.RuneCountInString(sep)
	for i, item := range items {
		currentSep := sep
		if i == 0 {
			currentSep = ""
		}
		// room for a following sep and "..." unless this is the last item
		minNext := sepLen + 3
		if i == len(items)-1 {
			minNext = 0
		}
		itemLen := utf8.RuneCountInString(currentSep) + utf8.RuneCountInString(item)
		if length+itemLen+minNext > maxLen {
			b.WriteString(currentSep)
			b.WriteString("...")
			break
		}
		b.WriteString(currentSep)
		b.WriteString(item)
		length += itemLen
	}
	return b.String()
}
