package application

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
)

// WordRow is one transcript word inside an inspection window. Nearest
// marks the word closest to the target timestamp.
type WordRow struct {
	Word    domain.Word
	Nearest bool
}

// InspectService shows what the transcription engine heard around a
// timestamp, for debugging missed words. It performs no redaction.
type InspectService struct {
	transcriber ports.Transcriber
}

// NewInspectService creates a new inspect service
func NewInspectService(transcriber ports.Transcriber) *InspectService {
	return &InspectService{transcriber: transcriber}
}

// Window transcribes the input and returns every word whose start time
// falls within windowSec of centerSec.
func (s *InspectService) Window(ctx context.Context, inputPath string, centerSec, windowSec float64, opts BleepOptions) ([]WordRow, error) {
	transcript, err := s.transcriber.Transcribe(ctx, inputPath, ports.TranscribeOpts{
		Model:    opts.Model,
		Language: opts.Language,
	})
	if err != nil {
		return nil, err
	}
	if err := transcript.Validate(); err != nil {
		return nil, fmt.Errorf("transcription output: %w", err)
	}

	start := centerSec - windowSec
	if start < 0 {
		start = 0
	}
	end := centerSec + windowSec

	var rows []WordRow
	for _, w := range transcript.Words() {
		if w.Start < start || w.Start > end {
			continue
		}
		rows = append(rows, WordRow{
			Word:    w,
			Nearest: math.Abs(w.Start-centerSec) < 1.0,
		})
	}
	return rows, nil
}

// ParseTimestamp accepts plain seconds ("2146"), mm:ss ("35:46"), or
// hh:mm:ss ("1:02:03.5").
func ParseTimestamp(ts string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	switch len(parts) {
	case 1:
		return strconv.ParseFloat(parts[0], 64)
	case 2:
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", ts)
		}
		s, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", ts)
		}
		return float64(m)*60 + s, nil
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		s, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, fmt.Errorf("invalid timestamp %q", ts)
		}
		return float64(h)*3600 + float64(m)*60 + s, nil
	default:
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
}
