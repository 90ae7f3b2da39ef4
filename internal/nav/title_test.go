package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripOrderPrefix_RemovesTwoDigitPrefix(t *testing.T) {
	require.Equal(t, "alpha", StripOrderPrefix("01_alpha"))
	require.Equal(t, "reader.md", StripOrderPrefix("02_reader.md"))
	require.Equal(t, "", StripOrderPrefix("01_"))
}

func TestStripOrderPrefix_LeavesNonMatchingAlone(t *testing.T) {
	require.Equal(t, "alpha", StripOrderPrefix("alpha"))
	require.Equal(t, "1_a", StripOrderPrefix("1_a"))
	require.Equal(t, "ab_x", StripOrderPrefix("ab_x"))
	require.Equal(t, "123_x", StripOrderPrefix("123_x"))
	require.Equal(t, "01x", StripOrderPrefix("01x"))
	require.Equal(t, "01", StripOrderPrefix("01"))
}

func TestStripOrderPrefix_Idempotent(t *testing.T) {
	once := StripOrderPrefix("01_alpha")
	require.Equal(t, once, StripOrderPrefix(once))
}

func TestFormatTitle(t *testing.T) {
	require.Equal(t, "Getting Started", FormatTitle("getting_started"))
	require.Equal(t, "Multi Word Name", FormatTitle("multi-word-name"))
	require.Equal(t, "Api", FormatTitle("api"))
	require.Equal(t, "Mixed Case", FormatTitle("mIXED cASE"))
}

func TestFormatTitle_IdempotentOnFormattedInput(t *testing.T) {
	formatted := FormatTitle("getting_started")
	require.Equal(t, formatted, FormatTitle(formatted))
}
