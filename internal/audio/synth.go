package audio

import (
	"fmt"
	"math"

	"github.com/devbush/podbleep/internal/domain"
	gaudio "github.com/go-audio/audio"
)

// Mode selects what replaces a redacted region.
type Mode int

const (
	// ModeBleep replaces matched words with a loudness-matched sine tone.
	ModeBleep Mode = iota
	// ModeSilence replaces matched words with digital silence.
	ModeSilence
)

// BleepFreqHz is the tone frequency used in bleep mode.
const BleepFreqHz = 1000

// fadeMaxMs caps the fade-in/fade-out applied to a tone so splice
// boundaries stay click-free.
const fadeMaxMs = 30

// ParseMode parses a CLI mode string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "bleep", "tone":
		return ModeBleep, nil
	case "silence":
		return ModeSilence, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, domain.ErrInvalidMode)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeBleep:
		return "bleep"
	case ModeSilence:
		return "silence"
	default:
		return "unknown"
	}
}

// Synthesize produces a replacement clip of exactly durationMs at the
// given format. In bleep mode the tone's gain is adjusted so its
// loudness matches refDBFS; a non-finite reference (a silent source
// region) leaves the tone at its natural level. A non-positive duration
// is a consolidation bug, not a user error, and is rejected.
func Synthesize(durationMs int, mode Mode, refDBFS float64, format *gaudio.Format, bitDepth int) (*Buffer, error) {
	if durationMs <= 0 {
		return nil, fmt.Errorf("synthesize %dms: %w", durationMs, domain.ErrBadInterval)
	}
	frames := int(int64(durationMs) * int64(format.SampleRate) / 1000)
	return synthFrames(frames, mode, refDBFS, format, bitDepth)
}

// synthFrames is the frame-exact synthesis used by the buffer editor,
// where the replacement must cover precisely the sample range being
// overwritten.
func synthFrames(frames int, mode Mode, refDBFS float64, format *gaudio.Format, bitDepth int) (*Buffer, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("synthesize %d frames: %w", frames, domain.ErrBadInterval)
	}

	clip := &Buffer{
		Data:           make([]int, frames*format.NumChannels),
		Format:         format,
		SourceBitDepth: bitDepth,
	}

	if mode == ModeSilence {
		return clip, nil
	}

	writeTone(clip, frames)
	if !math.IsInf(refDBFS, 0) && !math.IsNaN(refDBFS) {
		gain := refDBFS - clip.RegionDBFS(0, clip.LengthMs())
		applyGain(clip, gain)
	}
	return clip, nil
}

// writeTone fills the clip with a full-scale sine tone, faded at both
// ends. The fade is the lesser of fadeMaxMs and a quarter of the clip.
func writeTone(clip *Buffer, frames int) {
	ch := clip.Format.NumChannels
	rate := float64(clip.Format.SampleRate)
	peak := clip.fullScale() - 1

	fadeFrames := int(int64(fadeMaxMs) * int64(clip.Format.SampleRate) / 1000)
	if quarter := frames / 4; fadeFrames > quarter {
		fadeFrames = quarter
	}

	for i := 0; i < frames; i++ {
		v := peak * math.Sin(2*math.Pi*BleepFreqHz*float64(i)/rate)

		if fadeFrames > 0 {
			if i < fadeFrames {
				v *= float64(i) / float64(fadeFrames)
			}
			if tail := frames - 1 - i; tail < fadeFrames {
				v *= float64(tail) / float64(fadeFrames)
			}
		}

		s := int(v)
		for c := 0; c < ch; c++ {
			clip.Data[i*ch+c] = s
		}
	}
}

// applyGain scales every sample by gainDB decibels, clamping to the
// representable range.
func applyGain(clip *Buffer, gainDB float64) {
	scale := math.Pow(10, gainDB/20)
	max := int(clip.fullScale()) - 1
	min := -int(clip.fullScale())

	for i, s := range clip.Data {
		v := int(float64(s) * scale)
		if v > max {
			v = max
		}
		if v < min {
			v = min
		}
		clip.Data[i] = v
	}
}
