package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_OK(t *testing.T) {
	d, err := NewDate(2018, time.December, 19)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2018, Month: time.December, Day: 19}, d)
	assert.False(t, d.IsZero())
	assert.True(t, d.Valid())
}

func TestNewDate_RejectsNonCalendarDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{name: "month 13", year: 2018, month: time.Month(13), day: 1},
		{name: "month 0", year: 2018, month: time.Month(0), day: 1},
		{name: "day 31 in february", year: 2019, month: time.February, day: 31},
		{name: "day 29 in non-leap february", year: 2019, month: time.February, day: 29},
		{name: "day 0", year: 2018, month: time.December, day: 0},
		{name: "day 32", year: 2018, month: time.December, day: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestNewDate_LeapDay(t *testing.T) {
	d, err := NewDate(2020, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day)
}

func TestParseDate_OK(t *testing.T) {
	d, err := ParseDate("2018/12/19")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2018, Month: time.December, Day: 19}, d)

	// components are plain integers, so unpadded input parses too
	d, err = ParseDate("2018/1/2")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2018, Month: time.January, Day: 2}, d)
}

func TestParseDate_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "", want: ErrDateFormat},
		{name: "two components", in: "2018/12", want: ErrDateFormat},
		{name: "four components", in: "2018/12/19/01", want: ErrDateFormat},
		{name: "iso separators", in: "2018-12-19", want: ErrDateFormat},
		{name: "non-numeric month", in: "2018/dec/19", want: ErrDateFormat},
		{name: "non-numeric day", in: "2018/12/x", want: ErrDateFormat},
		{name: "month out of range", in: "2018/13/01", want: ErrInvalidDate},
		{name: "day out of range", in: "2018/02/31", want: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDate_StringRoundTrip(t *testing.T) {
	d, err := NewDate(2018, time.March, 7)
	require.NoError(t, err)
	require.Equal(t, "2018/03/07", d.String())

	back, err := ParseDate(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestDate_Time(t *testing.T) {
	d, err := NewDate(2018, time.December, 19)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, time.December, 19, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.False(t, d.Valid())
}

func TestEntry_String(t *testing.T) {
	d, err := NewDate(2018, time.December, 19)
	require.NoError(t, err)
	e := Entry{ID: 1, Date: d, Title: "Dentist"}
	assert.Equal(t, "1 2018/12/19 Dentist", e.String())
}
