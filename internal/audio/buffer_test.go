package audio

import (
	"math"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
)

// testBuffer builds a mono 8kHz 16-bit buffer of the given duration
// filled by fn(frame index).
func testBuffer(t *testing.T, durationMs int, fn func(i int) int) *Buffer {
	t.Helper()
	rate := 8000
	frames := durationMs * rate / 1000
	data := make([]int, frames)
	for i := range data {
		data[i] = fn(i)
	}
	return &Buffer{
		Data:           data,
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
	}
}

// sineBuffer builds a test buffer holding a sine wave at the given peak.
func sineBuffer(t *testing.T, durationMs int, freq float64, peak float64) *Buffer {
	t.Helper()
	return testBuffer(t, durationMs, func(i int) int {
		return int(peak * math.Sin(2*math.Pi*freq*float64(i)/8000))
	})
}

func TestBuffer_LengthMs(t *testing.T) {
	buf := testBuffer(t, 2500, func(int) int { return 0 })
	if got := buf.LengthMs(); got != 2500 {
		t.Errorf("LengthMs() = %d, want 2500", got)
	}
}

func TestBuffer_RegionDBFS_Silence(t *testing.T) {
	buf := testBuffer(t, 1000, func(int) int { return 0 })
	db := buf.RegionDBFS(0, 1000)
	if !math.IsInf(db, -1) {
		t.Errorf("RegionDBFS of silence = %v, want -Inf", db)
	}
}

func TestBuffer_RegionDBFS_FullScaleSine(t *testing.T) {
	buf := sineBuffer(t, 1000, 1000, 32767)
	db := buf.RegionDBFS(0, 1000)
	// RMS of a full-scale sine is peak/sqrt(2) = -3.01 dBFS
	if math.Abs(db-(-3.01)) > 0.1 {
		t.Errorf("RegionDBFS of full-scale sine = %v, want about -3.01", db)
	}
}

func TestBuffer_RegionDBFS_EmptyRange(t *testing.T) {
	buf := testBuffer(t, 1000, func(int) int { return 1000 })
	if db := buf.RegionDBFS(500, 500); !math.IsInf(db, -1) {
		t.Errorf("RegionDBFS of empty range = %v, want -Inf", db)
	}
}

func TestBuffer_SampleRange_ClampsPastEnd(t *testing.T) {
	buf := testBuffer(t, 1000, func(int) int { return 100 })
	lo, hi := buf.sampleRange(900, 5000)
	if hi != len(buf.Data) {
		t.Errorf("hi = %d, want clamped %d", hi, len(buf.Data))
	}
	if lo != 900*8000/1000 {
		t.Errorf("lo = %d, want %d", lo, 900*8000/1000)
	}
}

func TestBuffer_Clone(t *testing.T) {
	buf := testBuffer(t, 100, func(i int) int { return i })
	cl := buf.Clone()
	cl.Data[0] = 9999
	if buf.Data[0] == 9999 {
		t.Error("Clone() shares sample data with the original")
	}
}

func TestBuffer_WAVRoundTrip(t *testing.T) {
	buf := sineBuffer(t, 200, 440, 12000)
	path := filepath.Join(t.TempDir(), "roundtrip.wav")

	if err := buf.EncodeWAV(path); err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}

	decoded, err := DecodeWAV(path)
	if err != nil {
		t.Fatalf("DecodeWAV() error = %v", err)
	}

	if decoded.LengthMs() != buf.LengthMs() {
		t.Errorf("decoded LengthMs = %d, want %d", decoded.LengthMs(), buf.LengthMs())
	}
	if decoded.Format.SampleRate != 8000 || decoded.Format.NumChannels != 1 {
		t.Errorf("decoded format = %+v, want mono 8kHz", decoded.Format)
	}
	if len(decoded.Data) != len(buf.Data) {
		t.Fatalf("decoded %d samples, want %d", len(decoded.Data), len(buf.Data))
	}
	for i := range buf.Data {
		if decoded.Data[i] != buf.Data[i] {
			t.Fatalf("sample %d = %d, want %d", i, decoded.Data[i], buf.Data[i])
		}
	}
}

func TestDecodeWAV_MissingFile(t *testing.T) {
	if _, err := DecodeWAV(filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Error("DecodeWAV() of missing file should fail")
	}
}
