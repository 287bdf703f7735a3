package whisper

import (
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"00:00:00,000", 0},
		{"00:00:03,500", 3.5},
		{"00:35:46,120", 2146.12},
		{"01:00:00.250", 3600.25},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := parseTimestamp(tt.input); got != tt.want {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseOutput_WordSegments(t *testing.T) {
	data := []byte(`{
		"transcription": [
			{"timestamps": {"from": "00:00:10,000", "to": "00:00:10,400"}, "text": " hell"},
			{"timestamps": {"from": "00:00:10,500", "to": "00:00:10,900"}, "text": " yeah"},
			{"timestamps": {"from": "00:00:11,000", "to": "00:00:11,000"}, "text": "  "}
		]
	}`)

	tr, err := parseOutput(data, "base")
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}

	words := tr.Words()
	if len(words) != 2 {
		t.Fatalf("parsed %d words, want 2 (blank entry dropped)", len(words))
	}
	if words[0].Text != "hell" || words[0].Start != 10.0 || words[0].End != 10.4 {
		t.Errorf("word 0 = %+v, want hell @ 10.0-10.4", words[0])
	}
	if tr.Text != "hell yeah" {
		t.Errorf("Text = %q, want %q", tr.Text, "hell yeah")
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("parsed transcript should validate: %v", err)
	}
}

func TestParseOutput_BadJSON(t *testing.T) {
	if _, err := parseOutput([]byte("not json"), "base"); err == nil {
		t.Error("parseOutput() should fail on malformed JSON")
	}
}

func TestIsModelDownloaded(t *testing.T) {
	tr := NewTranscriber(t.TempDir())
	if tr.IsModelDownloaded("base") {
		t.Error("empty models dir should report no downloaded models")
	}
}
