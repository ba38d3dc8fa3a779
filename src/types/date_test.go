package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	start := NewDate(2024, time.February, 28)

	assert.Equal(t, int64(2), start.DaysUntil(NewDate(2024, time.March, 1)))
	assert.Equal(t, int64(-2), NewDate(2024, time.March, 1).DaysUntil(start))
	assert.Equal(t, int64(0), start.DaysUntil(start))
}

func TestDaysUntilSpansCenturies(t *testing.T) {
	// a Gregorian 400-year cycle has 146097 days
	assert.Equal(t, int64(146097), NewDate(1700, time.January, 1).DaysUntil(NewDate(2100, time.January, 1)))
	assert.Equal(t, int64(3652058), Date{}.DaysUntil(NewDate(9999, time.December, 31)))
}

func TestZeroDateIsFirstCalendarDay(t *testing.T) {
	first, err := ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.Equal(t, Date{}, first)
	assert.Equal(t, int64(3), first.DaysUntil(NewDate(1, time.January, 4)))
	assert.Equal(t, "0001-01-01", first.String())
}

func TestDateJSON(t *testing.T) {
	var body struct {
		CheckIn Date `json:"check_in_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"check_in_date":"2025-08-01"}`), &body))
	assert.Equal(t, NewDate(2025, time.August, 1), body.CheckIn)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in_date":"2025-08-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"check_in_date":"2025-13-01"}`), &body))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-08-01", d.String())

	require.NoError(t, d.Scan("2025-08-02 00:00:00+00:00"))
	assert.Equal(t, "2025-08-02", d.String())

	require.NoError(t, d.Scan([]byte("2025-08-03")))
	assert.Equal(t, "2025-08-03", d.String())

	assert.Error(t, d.Scan("08/03"))
	assert.Error(t, d.Scan(42))
}
