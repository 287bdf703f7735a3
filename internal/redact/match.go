package redact

import (
	"math"

	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/wordlist"
)

// DefaultPadMs is the extra time muted on each side of a matched word,
// covering mispronunciations and trailing sound.
const DefaultPadMs = 80

// Interval is a half-open [StartMs, EndMs) span of audio time to replace.
type Interval struct {
	StartMs int
	EndMs   int
}

// DurationMs returns the interval width in milliseconds.
func (iv Interval) DurationMs() int {
	return iv.EndMs - iv.StartMs
}

// Hit records one banned-word occurrence: the normalized word, its
// original start time in seconds, and the padded interval to redact.
type Hit struct {
	Word     string
	At       float64
	Interval Interval
}

// Match scans the transcript's word tokens in chronological order and
// emits a Hit for every token whose normalized form is in the banned
// set. Padding is applied on both sides; the start is clamped to zero.
func Match(tr *domain.Transcript, banned wordlist.Set, padMs int) []Hit {
	if banned.Len() == 0 {
		return nil
	}

	var hits []Hit
	for _, w := range tr.Words() {
		word := Normalize(w.Text)
		if !banned.Contains(word) {
			continue
		}

		startMs := int(math.Floor(w.Start*1000)) - padMs
		if startMs < 0 {
			startMs = 0
		}
		endMs := int(math.Ceil(w.End*1000)) + padMs

		hits = append(hits, Hit{
			Word:     word,
			At:       w.Start,
			Interval: Interval{StartMs: startMs, EndMs: endMs},
		})
	}
	return hits
}
