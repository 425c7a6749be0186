package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "hours and minutes", value: "PT5H30M", want: 330},
		{name: "hours only", value: "PT2H", want: 120},
		{name: "minutes only", value: "PT45M", want: 45},
		{name: "lowercase", value: "pt1h5m", want: 65},
		{name: "surrounding spaces", value: " PT1H ", want: 60},
		{name: "empty", value: "", want: 0},
		{name: "garbage", value: "5 hours", want: 0},
		{name: "days unsupported", value: "P1DT2H", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseISODuration(tt.value))
		})
	}
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "hours and minutes", minutes: 330, want: "5h 30m"},
		{name: "exact hours", minutes: 120, want: "2h"},
		{name: "under an hour", minutes: 45, want: "45m"},
		{name: "zero", minutes: 0, want: Missing},
		{name: "negative", minutes: -10, want: Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minutes(tt.minutes))
		})
	}
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 423.5, ParsePrice("423.50"))
	assert.Equal(t, 0.0, ParsePrice("not a number"))
	assert.Equal(t, 0.0, ParsePrice(""))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "USD 423.50", Price(423.5, "USD"))
	assert.Equal(t, "99.00", Price(99, ""))
}

func TestSeatPrice(t *testing.T) {
	assert.Equal(t, "EUR 23", SeatPrice("22.70", "EUR"))
	assert.Equal(t, "USD 15", SeatPrice("15.00", "USD"))
	assert.Equal(t, "", SeatPrice("", "USD"))
	assert.Equal(t, "", SeatPrice("   ", "USD"))
}
