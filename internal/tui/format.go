package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// formatMoney renders an unsigned amount: formatMoney("$", 2456789) is
// "$24,567.89".
func formatMoney(symbol string, cents int64) string {
	if cents < 0 {
		cents = -cents
	}
	return fmt.Sprintf("%s%s.%02d", symbol, humanize.Comma(cents/100), cents%100)
}

// signedMoney prefixes debits with "-" and credits with "+".
func signedMoney(symbol string, cents int64, credit bool) string {
	if credit {
		return "+" + formatMoney(symbol, cents)
	}
	return "-" + formatMoney(symbol, cents)
}

const maskedBalance = "••••••"

// formatWhen is "Today, 3:04 PM", "Yesterday, 3:04 PM" or "Jan 2, 2006".
func formatWhen(at, now time.Time) string {
	switch {
	case sameDay(at, now):
		return "Today, " + at.Format("3:04 PM")
	case sameDay(at, now.AddDate(0, 0, -1)):
		return "Yesterday, " + at.Format("3:04 PM")
	default:
		return at.Format("Jan 2, 2006")
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// formatAgo is the relative age of a past event, "2 minutes ago".
func formatAgo(at, now time.Time) string {
	return humanize.RelTime(at, now, "ago", "from now")
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

// initials takes the first letter of the first two parts of a username
// split on "@" and ".": "john.doe@bank.com" gives "JD".
func initials(username string) string {
	parts := strings.FieldsFunc(username, func(r rune) bool { return r == '@' || r == '.' })
	var b strings.Builder
	for i, part := range parts {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// greeting follows the local hour: morning before noon, afternoon before
// six, evening after.
func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
