package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPreferredTime_SanctionedPhrases(t *testing.T) {
	accepted := []string{
		"Early morning would be great",
		"Late afternoon please",
		"Evening",
		"Flexible - please suggest a suitable time",
		"Whenever works, let us suggest something",
	}

	for _, text := range accepted {
		assert.Empty(t, CheckPreferredTime(text), "expected %q to be accepted", text)
	}
}

func TestCheckPreferredTime_ClockConflicts(t *testing.T) {
	tests := []struct {
		text   string
		window string
	}{
		{"10:00 AM", "08:30-12:30"},
		{"around 9.30am", "08:30-12:30"},
		{"3pm sharp", "13:00-17:00"},
		{"14:30 if possible", "13:00-17:00"},
		{"7:00 pm", "17:00-21:00"},
		{"18:15", "17:00-21:00"},
	}

	for _, tc := range tests {
		conflicts := CheckPreferredTime(tc.text)
		require.Len(t, conflicts, 1, "text %q", tc.text)
		assert.Equal(t, tc.window, conflicts[0], "text %q", tc.text)
	}
}

func TestCheckPreferredTime_OutsideGroupWalkHours(t *testing.T) {
	accepted := []string{
		"7:00 am before work",
		"12:45 over lunch",
		"9:30 pm after dinner",
	}

	for _, text := range accepted {
		assert.Empty(t, CheckPreferredTime(text), "expected %q to be accepted", text)
	}
}

func TestCheckPreferredTime_BareNumbersIgnored(t *testing.T) {
	// "2 dogs" must not be read as 02:00
	assert.Empty(t, CheckPreferredTime("any time, I have 2 dogs"))
	assert.Empty(t, CheckPreferredTime("walk for 45 minutes"))
}

func TestCheckPreferredTime_KeywordTimes(t *testing.T) {
	conflicts := CheckPreferredTime("around noon")
	require.Len(t, conflicts, 1)
	assert.Equal(t, "08:30-12:30", conflicts[0])

	conflicts = CheckPreferredTime("midday would suit us")
	require.Len(t, conflicts, 1)
	assert.Equal(t, "08:30-12:30", conflicts[0])
}

func TestCheckPreferredTime_MultipleMentions(t *testing.T) {
	conflicts := CheckPreferredTime("either 10:00 am or 3:00 pm")
	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts, "08:30-12:30")
	assert.Contains(t, conflicts, "13:00-17:00")
}

func TestCheckPreferredTime_BoundaryOfEveningWindow(t *testing.T) {
	// 17:00 sits in both the afternoon and the evening padded windows
	conflicts := CheckPreferredTime("17:00")
	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts, "13:00-17:00")
	assert.Contains(t, conflicts, "17:00-21:00")

	// one minute past the evening window
	assert.Empty(t, CheckPreferredTime("21:01"))
}
