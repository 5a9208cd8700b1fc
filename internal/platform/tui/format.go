package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatScore renders an integer with thousands separators, e.g. 12,345.
func FormatScore(n int) string {
	return printer.Sprintf("%d", n)
}
