package domain

import (
	"fmt"
	"strings"
	"time"
)

// Word represents a single transcribed word with its timing
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"` // seconds
	End   float64 `json:"end"`   // seconds
}

// Segment represents a timed segment of transcribed text
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

// Transcript represents the full transcription result
type Transcript struct {
	Text          string    `json:"text"`
	Segments      []Segment `json:"segments"`
	Model         string    `json:"model"`
	Language      string    `json:"language"`
	TranscribedAt time.Time `json:"transcribed_at"`
}

// Words returns all word tokens flattened in chronological order
func (t *Transcript) Words() []Word {
	var words []Word
	for _, seg := range t.Segments {
		words = append(words, seg.Words...)
	}
	return words
}

// ToText returns plain text concatenation of all segments
func (t *Transcript) ToText() string {
	if t.Text != "" {
		return t.Text
	}

	var parts []string
	for _, seg := range t.Segments {
		parts = append(parts, strings.TrimSpace(seg.Text))
	}
	return strings.Join(parts, " ")
}

// Validate checks that the transcript has the granularity the editing
// pipeline needs: word-level timestamps with sane timing. Segment-only
// transcripts are rejected up front rather than failing deep inside the
// matcher.
func (t *Transcript) Validate() error {
	hasWords := false
	for i, seg := range t.Segments {
		for j, w := range seg.Words {
			hasWords = true
			if w.Start > w.End {
				return fmt.Errorf("segment %d word %d (%q): start %.3f after end %.3f: %w",
					i, j, w.Text, w.Start, w.End, ErrInvalidTranscript)
			}
		}
	}
	if len(t.Segments) > 0 && !hasWords {
		return ErrNoWordTimestamps
	}
	return nil
}

// FormatTimestamp converts seconds to m:ss.cc display format
func FormatTimestamp(seconds float64) string {
	m := int(seconds) / 60
	s := seconds - float64(m*60)
	return fmt.Sprintf("%d:%05.2f", m, s)
}
