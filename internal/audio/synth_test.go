package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/devbush/podbleep/internal/domain"
	gaudio "github.com/go-audio/audio"
)

var testFormat = &gaudio.Format{NumChannels: 1, SampleRate: 8000}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"bleep", ModeBleep, false},
		{"silence", ModeSilence, false},
		{"tone", ModeBleep, false},
		{"beep", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, domain.ErrInvalidMode) {
					t.Errorf("error = %v, want ErrInvalidMode", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSynthesize_ExactDuration(t *testing.T) {
	for _, durMs := range []int{10, 120, 560, 3000} {
		clip, err := Synthesize(durMs, ModeSilence, math.Inf(-1), testFormat, 16)
		if err != nil {
			t.Fatalf("Synthesize(%d) error = %v", durMs, err)
		}
		if clip.LengthMs() != durMs {
			t.Errorf("Synthesize(%d).LengthMs() = %d", durMs, clip.LengthMs())
		}
	}
}

func TestSynthesize_SilenceIsAllZero(t *testing.T) {
	clip, err := Synthesize(500, ModeSilence, math.Inf(-1), testFormat, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	for i, s := range clip.Data {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestSynthesize_NonPositiveDuration(t *testing.T) {
	for _, durMs := range []int{0, -50} {
		_, err := Synthesize(durMs, ModeBleep, math.Inf(-1), testFormat, 16)
		if !errors.Is(err, domain.ErrBadInterval) {
			t.Errorf("Synthesize(%d) error = %v, want ErrBadInterval", durMs, err)
		}
	}
}

func TestSynthesize_BleepFadesAtEdges(t *testing.T) {
	clip, err := Synthesize(1000, ModeBleep, math.Inf(-1), testFormat, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	// First and last samples sit at the bottom of the fade ramp; the
	// middle of the clip carries the tone at full level.
	if clip.Data[0] != 0 {
		t.Errorf("first sample = %d, want 0 (fade in)", clip.Data[0])
	}
	if last := clip.Data[len(clip.Data)-1]; last != 0 {
		t.Errorf("last sample = %d, want 0 (fade out)", last)
	}

	peak := 0
	for _, s := range clip.Data {
		if s > peak {
			peak = s
		}
	}
	if peak < 30000 {
		t.Errorf("tone peak = %d, want near full scale", peak)
	}
}

func TestSynthesize_ShortClipFadeIsQuarter(t *testing.T) {
	// 40ms clip: fade must shrink to 10ms, not the 30ms cap.
	clip, err := Synthesize(40, ModeBleep, math.Inf(-1), testFormat, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	fadeFrames := 10 * testFormat.SampleRate / 1000
	beyondFade := clip.Data[fadeFrames+2 : len(clip.Data)-fadeFrames-2]
	peak := 0
	for _, s := range beyondFade {
		if s > peak {
			peak = s
		}
	}
	if peak < 30000 {
		t.Errorf("peak outside fade region = %d, want near full scale", peak)
	}
}

func TestSynthesize_LoudnessMatching(t *testing.T) {
	// Source region at -20 dBFS; the natural tone is louder. The gain
	// adjustment must bring the clip's measured loudness to the
	// reference within rounding tolerance.
	ref := -20.0
	clip, err := Synthesize(1000, ModeBleep, ref, testFormat, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	got := clip.RegionDBFS(0, clip.LengthMs())
	if math.Abs(got-ref) > 0.5 {
		t.Errorf("matched clip loudness = %.2f dBFS, want %.2f +/- 0.5", got, ref)
	}
}

func TestSynthesize_SilentReferenceLeavesNaturalLevel(t *testing.T) {
	natural, err := Synthesize(1000, ModeBleep, math.Inf(-1), testFormat, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	nan, err := Synthesize(1000, ModeBleep, math.NaN(), testFormat, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	for i := range natural.Data {
		if natural.Data[i] != nan.Data[i] {
			t.Fatalf("sample %d differs between -Inf and NaN reference", i)
		}
	}
}

func TestSynthesize_Stereo(t *testing.T) {
	stereo := &gaudio.Format{NumChannels: 2, SampleRate: 8000}
	clip, err := Synthesize(100, ModeBleep, math.Inf(-1), stereo, 16)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if clip.LengthMs() != 100 {
		t.Errorf("LengthMs() = %d, want 100", clip.LengthMs())
	}
	// Both channels carry the same tone.
	for i := 0; i < len(clip.Data); i += 2 {
		if clip.Data[i] != clip.Data[i+1] {
			t.Fatalf("frame %d: channels differ (%d vs %d)", i/2, clip.Data[i], clip.Data[i+1])
		}
	}
}
