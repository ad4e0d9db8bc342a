package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"", "9:30:00", "24:00", "10:60", "abc"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "value %q should not parse", invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	}
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("20:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))

	// Некорректные значения не раньше ничего
	assert.False(t, TimeString("bad").IsBefore(b))
	assert.False(t, a.IsBefore(TimeString("bad")))
}

func TestOnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("09:30").OnDate(date, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 9, 30, 0, 0, loc), got)

	_, err = TimeString("bad").OnDate(date, loc)
	assert.Error(t, err)
}
