package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	z, err := Load("")
	require.NoError(t, err)
	assert.NotNil(t, z)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load("Not/AZone")
	assert.Error(t, err)
}

func TestZone_FormatParse_RoundTrip(t *testing.T) {
	z, err := Load("Asia/Dhaka")
	require.NoError(t, err)

	instant := time.Date(2026, time.June, 15, 15, 5, 7, 0, time.UTC)
	text := z.Format(instant)

	// Dhaka is UTC+6, so 15:05 UTC renders as 9:05 PM local
	assert.Equal(t, "6/15/2026, 9:05:07 PM", text)

	parsed, err := z.Parse(text)
	require.NoError(t, err)
	assert.True(t, instant.Equal(parsed), "round trip should preserve the instant")
}

func TestZone_Parse_MorningAndMidnight(t *testing.T) {
	z, err := Load("Asia/Dhaka")
	require.NoError(t, err)

	parsed, err := z.Parse("1/2/2026, 12:00:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 2, parsed.Day())

	parsed, err = z.Parse("1/2/2026, 12:00:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 12, parsed.Hour())
}

func TestZone_Parse_Invalid(t *testing.T) {
	z, err := Load("Asia/Dhaka")
	require.NoError(t, err)

	_, err = z.Parse("not a timestamp")
	assert.Error(t, err)
}

func TestZone_ParseAny(t *testing.T) {
	z, err := Load("Asia/Dhaka")
	require.NoError(t, err)

	fromRFC, err := z.ParseAny("2026-06-15T15:05:07Z")
	require.NoError(t, err)

	fromLocal, err := z.ParseAny("6/15/2026, 9:05:07 PM")
	require.NoError(t, err)

	assert.True(t, fromRFC.Equal(fromLocal))
}
