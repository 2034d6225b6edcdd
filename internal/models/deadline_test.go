package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozenNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestClassify_NoDeadline(t *testing.T) {
	got := Classify(nil, frozenNow)
	assert.Equal(t, Urgency{Label: "no deadline", Tone: ToneMuted}, got)
}

func TestClassify_Buckets(t *testing.T) {
	cases := []struct {
		name   string
		offset time.Duration
		label  string
		tone   Tone
	}{
		{"five days out", 5 * 24 * time.Hour, "5 days left", ToneOk},
		{"just over a day", 25 * time.Hour, "2 days left", ToneOk},
		{"one day", 24 * time.Hour, "1 day left", ToneWarn},
		{"later today", 6 * time.Hour, "1 day left", ToneWarn},
		{"exactly now", 0, "due today", ToneWarn},
		{"an hour ago", -time.Hour, "due today", ToneWarn},
		{"thirty hours ago", -30 * time.Hour, "overdue by 1 day", ToneDanger},
		{"full day ago", -24 * time.Hour, "overdue by 1 day", ToneDanger},
		{"eighty hours ago", -80 * time.Hour, "overdue by 3 days", ToneDanger},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deadline := frozenNow.Add(tc.offset)
			got := Classify(&deadline, frozenNow)
			assert.Equal(t, tc.label, got.Label)
			assert.Equal(t, tc.tone, got.Tone)
		})
	}
}

func TestClassify_DeterministicForFrozenNow(t *testing.T) {
	deadline := frozenNow.Add(37 * time.Hour)
	first := Classify(&deadline, frozenNow)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(&deadline, frozenNow))
	}
}

func TestClassifyString(t *testing.T) {
	assert.Equal(t, Urgency{Label: "no deadline", Tone: ToneMuted}, ClassifyString("", frozenNow))
	assert.Equal(t, Urgency{Label: "invalid date", Tone: ToneMuted}, ClassifyString("not-a-date", frozenNow))
	assert.Equal(t, ToneDanger, ClassifyString("2025-01-01", frozenNow).Tone)
}

func TestParseDeadline(t *testing.T) {
	got, err := ParseDeadline("2025-06-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), got)

	got, err = ParseDeadline("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())

	_, err = ParseDeadline("06/01/2025")
	assert.Error(t, err)
}
