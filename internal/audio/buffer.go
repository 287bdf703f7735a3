// Package audio holds the in-memory PCM buffer and the duration-preserving
// editing operations performed on it.
package audio

import (
	"fmt"
	"math"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Buffer is the full decoded source audio: interleaved integer samples
// plus format metadata. It is owned exclusively by one edit pipeline run.
type Buffer struct {
	Data           []int
	Format         *gaudio.Format
	SourceBitDepth int
}

// DecodeWAV loads a PCM WAV file into a Buffer.
func DecodeWAV(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if pcm.Format == nil || pcm.Format.SampleRate == 0 {
		return nil, fmt.Errorf("decoding %s: missing format header", path)
	}

	bitDepth := pcm.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	return &Buffer{
		Data:           pcm.Data,
		Format:         pcm.Format,
		SourceBitDepth: bitDepth,
	}, nil
}

// EncodeWAV writes the buffer to a PCM WAV file.
func (b *Buffer) EncodeWAV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	e := wav.NewEncoder(f, b.Format.SampleRate, b.SourceBitDepth, b.Format.NumChannels, 1)
	if err := e.Write(b.asIntBuffer()); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := e.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (b *Buffer) asIntBuffer() *gaudio.IntBuffer {
	return &gaudio.IntBuffer{
		Data:           b.Data,
		Format:         b.Format,
		SourceBitDepth: b.SourceBitDepth,
	}
}

// NumFrames returns the number of sample frames (samples per channel).
func (b *Buffer) NumFrames() int {
	return len(b.Data) / b.Format.NumChannels
}

// LengthMs returns the buffer duration in milliseconds.
func (b *Buffer) LengthMs() int {
	return int(int64(b.NumFrames()) * 1000 / int64(b.Format.SampleRate))
}

// frameForMs converts a millisecond offset to a frame index, clamped to
// the buffer bounds.
func (b *Buffer) frameForMs(ms int) int {
	frame := int(int64(ms) * int64(b.Format.SampleRate) / 1000)
	if frame < 0 {
		frame = 0
	}
	if n := b.NumFrames(); frame > n {
		frame = n
	}
	return frame
}

// sampleRange converts [startMs, endMs) to interleaved sample offsets.
func (b *Buffer) sampleRange(startMs, endMs int) (lo, hi int) {
	ch := b.Format.NumChannels
	return b.frameForMs(startMs) * ch, b.frameForMs(endMs) * ch
}

// fullScale returns the maximum representable amplitude for the buffer's
// bit depth.
func (b *Buffer) fullScale() float64 {
	return float64(int(1) << (b.SourceBitDepth - 1))
}

// RegionDBFS measures the average loudness of [startMs, endMs) as RMS
// relative to full scale. A region with zero signal measures -Inf.
func (b *Buffer) RegionDBFS(startMs, endMs int) float64 {
	lo, hi := b.sampleRange(startMs, endMs)
	if hi <= lo {
		return math.Inf(-1)
	}

	var sum float64
	for _, s := range b.Data[lo:hi] {
		v := float64(s)
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(hi-lo))
	if rms == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(rms/b.fullScale())
}

// Splice overwrites the region starting at startMs with the clip's
// samples. The clip has exactly the duration of the region it replaces,
// so the buffer's length never changes.
func (b *Buffer) Splice(startMs int, clip *Buffer) {
	lo := b.frameForMs(startMs) * b.Format.NumChannels
	copy(b.Data[lo:], clip.Data)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]int, len(b.Data))
	copy(data, b.Data)
	format := *b.Format
	return &Buffer{Data: data, Format: &format, SourceBitDepth: b.SourceBitDepth}
}
