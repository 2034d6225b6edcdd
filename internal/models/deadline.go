package models

import (
	"fmt"
	"math"
	"time"
)

// Tone is a UI urgency class derived from deadline proximity.
type Tone string

const (
	ToneMuted  Tone = "muted"
	ToneOk     Tone = "ok"
	ToneWarn   Tone = "warn"
	ToneDanger Tone = "danger"
)

// Urgency pairs a display label with its tone.
type Urgency struct {
	Label string
	Tone  Tone
}

const dayMillis = 24 * 60 * 60 * 1000

// Classify buckets a deadline relative to now. Day distance uses ceiling
// rounding on millisecond precision, so anything later today counts as
// "due today" and anything up to 24h past counts as one day overdue.
func Classify(deadline *time.Time, now time.Time) Urgency {
	if deadline == nil {
		return Urgency{Label: "no deadline", Tone: ToneMuted}
	}

	diffDays := int(math.Ceil(float64(deadline.Sub(now).Milliseconds()) / dayMillis))

	switch {
	case diffDays > 1:
		return Urgency{Label: fmt.Sprintf("%d days left", diffDays), Tone: ToneOk}
	case diffDays == 1:
		return Urgency{Label: "1 day left", Tone: ToneWarn}
	case diffDays == 0:
		return Urgency{Label: "due today", Tone: ToneWarn}
	case diffDays == -1:
		return Urgency{Label: "overdue by 1 day", Tone: ToneDanger}
	default:
		return Urgency{Label: fmt.Sprintf("overdue by %d days", -diffDays), Tone: ToneDanger}
	}
}

// ClassifyString is Classify for raw timestamp strings as they arrive from
// form inputs: empty means no deadline, unparseable means invalid.
func ClassifyString(raw string, now time.Time) Urgency {
	if raw == "" {
		return Urgency{Label: "no deadline", Tone: ToneMuted}
	}
	d, err := ParseDeadline(raw)
	if err != nil {
		return Urgency{Label: "invalid date", Tone: ToneMuted}
	}
	return Classify(&d, now)
}

// ParseDeadline accepts RFC 3339 timestamps or bare yyyy-MM-dd dates.
func ParseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
