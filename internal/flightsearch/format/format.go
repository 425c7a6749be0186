// Package format holds the display formatting and parsing leaves shared by
// the search engine and the seat-map pipeline.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Missing is the sentinel rendered for values that could not be derived.
const Missing = "—"

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseISODuration converts an ISO-8601 duration of the form PT[n]H[n]M to
// total minutes. Either component may be absent. Unparseable input yields 0.
func ParseISODuration(value string) int {
	match := durationPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(value)))
	if match == nil {
		return 0
	}

	minutes := 0
	if match[1] != "" {
		hours, _ := strconv.Atoi(match[1])
		minutes += hours * 60
	}
	if match[2] != "" {
		mins, _ := strconv.Atoi(match[2])
		minutes += mins
	}
	return minutes
}

// Minutes renders a minute count as "5h 30m". Non-positive counts render the
// missing sentinel.
func Minutes(minutes int) string {
	if minutes <= 0 {
		return Missing
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// ParsePrice converts the aggregator's decimal price string to a float.
// Unparseable input yields 0.
func ParsePrice(total string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(total), 64)
	if err != nil {
		return 0
	}
	return amount
}

// Price renders an amount with its currency code, e.g. "USD 423.50".
func Price(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// SeatPrice renders a per-seat price as "<currency> <rounded integer>".
// An empty total means the seat carries no price and yields "".
func SeatPrice(total, currency string) string {
	if strings.TrimSpace(total) == "" {
		return ""
	}
	amount := math.Round(ParsePrice(total))
	if currency == "" {
		return fmt.Sprintf("%.0f", amount)
	}
	return fmt.Sprintf("%s %.0f", currency, amount)
}
