package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_DropsClockAndZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	in := time.Date(2024, 3, 9, 23, 59, 59, 0, jakarta)

	got := DateOf(in)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate(" 2023-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", FormatDate(d))

	_, err = ParseDate("31/12/2023")
	assert.Error(t, err)
}

func TestDateBridges(t *testing.T) {
	assert.Nil(t, FromDate(nil))
	assert.Nil(t, FormatDatePtr(nil))

	d := ToDate(time.Date(2020, 2, 29, 15, 4, 5, 0, time.UTC))

	back := FromDate(&d)
	require.NotNil(t, back)
	assert.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), *back)
	assert.Equal(t, "2020-02-29", *FormatDatePtr(&d))
}

func TestUseLocation_UnknownFallsBackToUTC(t *testing.T) {
	defer UseLocation("UTC")

	UseLocation("Not/AZone")
	assert.Equal(t, time.UTC, Location())

	UseLocation("")
	assert.Equal(t, time.UTC, Location())
}

func TestToday_IsMidnightUTC(t *testing.T) {
	today := Today()
	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
}
