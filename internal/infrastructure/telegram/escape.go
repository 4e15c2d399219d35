package telegram

import "strings"

// EscapeHTML escapes user-provided text for Telegram HTML parse mode.
func EscapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}
