package httpdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	// Pin "now" so that two-digit years resolve the same way regardless of when the
	// tests are run
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		s       string
		want    int64
		wantErr error
	}{
		{
			"RFC 1123 date",
			"Sun, 06 Nov 1994 08:49:37 GMT",
			784111777,
			nil,
		},
		{
			"RFC 850 date",
			"Sunday, 06-Nov-94 08:49:37 GMT",
			784111777,
			nil,
		},
		{
			"asctime date with space-padded day",
			"Sun Nov  6 08:49:37 1994",
			784111777,
			nil,
		},
		{
			"asctime date with two-digit day",
			"Wed Nov 16 08:49:37 1994",
			784975777,
			nil,
		},
		{
			"month and weekday names are case-insensitive",
			"SUN, 06 NOV 1994 08:49:37 GMT",
			784111777,
			nil,
		},
		{
			"unsupported format",
			"Monday, 14/12/2021 - 10:47:23",
			0,
			ErrInvalidFormat,
		},
		{
			"empty string",
			"",
			0,
			ErrInvalidFormat,
		},
		{
			"unknown month abbreviation",
			"Sun, 06 Foo 1994 08:49:37 GMT",
			0,
			ErrInvalidFormat,
		},
		{
			"non-GMT zone",
			"Sun, 06 Nov 1994 08:49:37 UTC",
			0,
			ErrInvalidFormat,
		},
		{
			"trailing garbage is rejected",
			"Sun, 06 Nov 1994 08:49:37 GMT\n",
			0,
			ErrInvalidFormat,
		},
		{
			"RFC 850 format requires a full weekday name",
			"Sun, 06-Nov-94 08:49:37 GMT",
			0,
			ErrInvalidFormat,
		},
		{
			"day out of range",
			"Sun, 32 Nov 1994 08:49:37 GMT",
			0,
			ErrInvalidValue,
		},
		{
			"day beyond end of month",
			"Thu, 31 Nov 1994 08:49:37 GMT",
			0,
			ErrInvalidValue,
		},
		{
			"february 29 in a non-leap year",
			"Tue, 29 Feb 1994 08:49:37 GMT",
			0,
			ErrInvalidValue,
		},
		{
			"february 29 in a leap year",
			"Thu, 29 Feb 1996 00:00:00 GMT",
			825552000,
			nil,
		},
		{
			"hour out of range",
			"Sun, 06 Nov 1994 25:49:37 GMT",
			0,
			ErrInvalidValue,
		},
		{
			"leap second is not accepted",
			"Sun, 06 Nov 1994 08:49:60 GMT",
			0,
			ErrInvalidValue,
		},
		{
			"year zero",
			"Sun, 06 Nov 0000 08:49:37 GMT",
			0,
			ErrInvalidValue,
		},
		{
			"asctime day zero",
			"Sun Nov  0 08:49:37 1994",
			0,
			ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAt(tt.s, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Parse accepts four-digit years regardless of the current date", func(t *testing.T) {
		got, err := Parse("Sun, 06 Nov 1994 08:49:37 GMT")
		assert.NoError(t, err)
		assert.Equal(t, int64(784111777), got)
	})
}

func Test_expandTwoDigitYear(t *testing.T) {
	tests := []struct {
		name        string
		yy          int
		currentYear int
		want        int
	}{
		{"same year", 26, 2026, 2026},
		{"recent past", 20, 2026, 2020},
		{"near future", 30, 2026, 2030},
		{"exactly 50 years ahead maps forward", 76, 2026, 2076},
		{"51 years ahead maps into the previous century", 77, 2026, 1977},
		{"far past in the previous century", 94, 2026, 1994},
		{"start of century", 0, 2000, 2000},
		{"end of century, 99 years ahead", 99, 2000, 1999},
		{"wraps across the century boundary", 10, 2090, 2010},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandTwoDigitYear(tt.yy, tt.currentYear))
		})
	}

	t.Run("RFC 850 dates honor the pivot", func(t *testing.T) {
		now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

		got, err := parseAt("Wednesday, 01-Jan-76 00:00:00 GMT", now)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2076, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(), got)

		got, err = parseAt("Saturday, 01-Jan-77 00:00:00 GMT", now)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(1977, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(), got)
	})
}

func Test_Format(t *testing.T) {
	t.Run("renders the primary grammar in GMT", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		ts := time.Date(1994, time.November, 6, 10, 49, 37, 0, loc)
		assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", Format(ts))
	})

	t.Run("formatted dates parse back to the same instant", func(t *testing.T) {
		ts := time.Date(2023, time.December, 6, 21, 6, 4, 0, time.UTC)
		got, err := Parse(Format(ts))
		assert.NoError(t, err)
		assert.Equal(t, ts.Unix(), got)
	})
}
