package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := util.ParseDate("2024-01-03")
		require.NoError(t, err)
		assert.Equal(t, util.NewDate(2024, time.January, 3), d)
		assert.Equal(t, time.Wednesday, d.Weekday())
		assert.Equal(t, "2024-01-03", d.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "2024-1-3", "03/01/2024", "2024-02-30", "2024-01-03T10:00:00Z"} {
			_, err := util.ParseDate(s)
			assert.Error(t, err, s)
		}
	})
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	instant := time.Date(2024, time.March, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, util.NewDate(2024, time.March, 10), util.DateOf(instant))
}

func TestDaysSince(t *testing.T) {
	a := util.NewDate(2024, time.January, 4)

	assert.Equal(t, 0, a.DaysSince(a))
	assert.Equal(t, 1, a.DaysSince(util.NewDate(2024, time.January, 3)))
	assert.Equal(t, 3, a.DaysSince(util.NewDate(2024, time.January, 1)))
	assert.Equal(t, -2, a.DaysSince(util.NewDate(2024, time.January, 6)))
	assert.Equal(t, 366, util.NewDate(2025, time.January, 1).DaysSince(util.NewDate(2024, time.January, 1)))
}

func TestAddDaysAcrossMonth(t *testing.T) {
	d := util.NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-02-21", d.AddDays(-7).String())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Date util.Date `json:"date"`
	}

	t.Run("RoundTrip", func(t *testing.T) {
		raw, err := json.Marshal(payload{Date: util.NewDate(2024, time.May, 12)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":"2024-05-12"}`, string(raw))

		var p payload
		require.NoError(t, json.Unmarshal(raw, &p))
		assert.Equal(t, util.NewDate(2024, time.May, 12), p.Date)
	})

	t.Run("NullAndEmpty", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &p))
		assert.True(t, p.Date.IsZero())
		require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &p))
		assert.True(t, p.Date.IsZero())
	})

	t.Run("Malformed", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &p))
	})
}

func TestFixedClock(t *testing.T) {
	clock := util.FixedClock(time.Date(2024, time.January, 4, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, util.NewDate(2024, time.January, 4), clock.Today())
}
