package availability

import (
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) models.TimeOfDay {
	t.Helper()
	v, err := models.ParseTimeOfDay(text)
	require.NoError(t, err)
	return v
}

func TestGenerateIntervalsWalksHalfOpenWindow(t *testing.T) {
	times, err := GenerateIntervals(mustParse(t, "09:00"), mustParse(t, "09:30"), 10)
	require.NoError(t, err)
	assert.Equal(t, []models.TimeOfDay{540, 550, 560}, times)
}

// The last start may be generated even when its interval overruns the window.
func TestGenerateIntervalsFinalIntervalMayOverrun(t *testing.T) {
	times, err := GenerateIntervals(mustParse(t, "09:00"), mustParse(t, "09:20"), 7)
	require.NoError(t, err)
	assert.Equal(t, []models.TimeOfDay{540, 547, 554}, times)
}

func TestGenerateIntervalsSingleStart(t *testing.T) {
	times, err := GenerateIntervals(mustParse(t, "09:00"), mustParse(t, "09:01"), 30)
	require.NoError(t, err)
	assert.Equal(t, []models.TimeOfDay{540}, times)
}

func TestGenerateIntervalsRejectsInvalidRange(t *testing.T) {
	_, err := GenerateIntervals(mustParse(t, "10:00"), mustParse(t, "09:00"), 10)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = GenerateIntervals(mustParse(t, "09:00"), mustParse(t, "09:00"), 10)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = GenerateIntervals(mustParse(t, "09:00"), mustParse(t, "10:00"), 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
