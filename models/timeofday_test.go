package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay24Hour(t *testing.T) {
	cases := map[string]TimeOfDay{
		"00:00": 0,
		"09:05": 9*60 + 5,
		"12:00": 12 * 60,
		"23:59": 23*60 + 59,
	}
	for text, want := range cases {
		got, err := ParseTimeOfDay(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestParseTimeOfDay12Hour(t *testing.T) {
	cases := map[string]TimeOfDay{
		"12:00 AM": 0,
		"12:30 am": 30,
		"1:00 AM":  60,
		"11:59 AM": 11*60 + 59,
		"12:00 PM": 12 * 60,
		"12:01 pm": 12*60 + 1,
		"1:00 PM":  13 * 60,
		"9:15 pm":  21*60 + 15,
		"11:59 PM": 23*60 + 59,
	}
	for text, want := range cases {
		got, err := ParseTimeOfDay(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestParseTimeOfDayRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"", "  ", "9", "9:5", "9:5 AM", "24:00", "-1:00", "12:60",
		"13:00 PM", "0:30 AM", "9:00 XM", "9:00 AM PM", "abc", "9:aa",
	}
	for _, text := range bad {
		_, err := ParseTimeOfDay(text)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "%q should be rejected", text)
	}
}

func TestFormatStyles(t *testing.T) {
	assert.Equal(t, "00:00", TimeOfDay(0).Format(Style24))
	assert.Equal(t, "12:00 AM", TimeOfDay(0).Format(Style12))
	assert.Equal(t, "12:00", TimeOfDay(720).Format(Style24))
	assert.Equal(t, "12:00 PM", TimeOfDay(720).Format(Style12))
	assert.Equal(t, "09:07", TimeOfDay(9*60+7).Format(Style24))
	assert.Equal(t, "9:07 AM", TimeOfDay(9*60+7).Format(Style12))
	assert.Equal(t, "11:59 PM", TimeOfDay(1439).Format(Style12))
}

// Both renderings must come back to the same minute value.
func TestFormatParseRoundTrip(t *testing.T) {
	for minute := TimeOfDay(0); minute < 24*60; minute += 11 {
		for _, style := range []TimeStyle{Style24, Style12} {
			got, err := ParseTimeOfDay(minute.Format(style))
			require.NoError(t, err)
			assert.Equal(t, minute, got)
		}
	}
}

func TestStepMinutesFallsBackOnBadWire(t *testing.T) {
	assert.Equal(t, 10, SlotDefinition{SlotTimeRange: "10"}.StepMinutes())
	assert.Equal(t, DefaultStepMinutes, SlotDefinition{}.StepMinutes())
	assert.Equal(t, DefaultStepMinutes, SlotDefinition{SlotTimeRange: "abc"}.StepMinutes())
	assert.Equal(t, DefaultStepMinutes, SlotDefinition{SlotTimeRange: "0"}.StepMinutes())
	assert.Equal(t, DefaultStepMinutes, SlotDefinition{SlotTimeRange: "-5"}.StepMinutes())
}
