package application

import (
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	gaudio "github.com/go-audio/audio"

	"github.com/devbush/podbleep/internal/audio"
	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
)

// Mock implementations for testing

type mockTranscriber struct {
	transcript *domain.Transcript
	err        error
	calls      int
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.transcript, nil
}

func (m *mockTranscriber) AvailableModels() []ports.Model          { return nil }
func (m *mockTranscriber) IsModelDownloaded(model string) bool     { return true }
func (m *mockTranscriber) DeleteModel(model string) error          { return nil }
func (m *mockTranscriber) DownloadModel(ctx context.Context, model string, progress func(int64, int64)) error {
	return nil
}

// mockMuxer moves WAV data around with plain file copies. Test inputs
// are WAV files regardless of extension, so no real ffmpeg is needed.
type mockMuxer struct {
	extractCalls int
	encodeCalls  int
	replaceCalls int
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

func (m *mockMuxer) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	m.extractCalls++
	return copyFile(videoPath, audioPath)
}

func (m *mockMuxer) ToWAV(ctx context.Context, srcPath, wavPath string) error {
	return copyFile(srcPath, wavPath)
}

func (m *mockMuxer) Encode(ctx context.Context, wavPath, dstPath string) error {
	m.encodeCalls++
	return copyFile(wavPath, dstPath)
}

func (m *mockMuxer) ReplaceAudio(ctx context.Context, videoPath, cleanAudioPath, outputPath string) error {
	m.replaceCalls++
	return copyFile(cleanAudioPath, outputPath)
}

func (m *mockMuxer) IsAvailable() bool    { return true }
func (m *mockMuxer) BinaryPath() string   { return "/usr/bin/ffmpeg" }

type mockCache struct {
	items map[string]*ports.CachedTranscript
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string]*ports.CachedTranscript)}
}

func (m *mockCache) Get(ctx context.Context, key string) (*ports.CachedTranscript, error) {
	if item, ok := m.items[key]; ok {
		return item, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, item *ports.CachedTranscript) error {
	m.items[key] = item
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.items, key)
	return nil
}

func (m *mockCache) CleanExpired(ctx context.Context) (int, error) { return 0, nil }
func (m *mockCache) Clear(ctx context.Context) error               { return nil }
func (m *mockCache) Stats(ctx context.Context) (int, int64, error) {
	return len(m.items), 0, nil
}

// writeTestAudio writes a 5s mono 8kHz sine WAV to dir and returns its
// path. The .mp3 extension matches real pipeline inputs; the mock muxer
// copies bytes without caring.
func writeTestAudio(t *testing.T, dir, name string) string {
	t.Helper()
	rate := 8000
	data := make([]int, 5*rate)
	for i := range data {
		data[i] = int(16000 * math.Sin(2*math.Pi*440*float64(i)/float64(rate)))
	}
	buf := &audio.Buffer{
		Data:           data,
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
	}
	path := filepath.Join(dir, name)
	if err := buf.EncodeWAV(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeWordlist(t *testing.T, dir string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, "wordlist.txt")
	content := "# test wordlist\n"
	for _, w := range words {
		content += w + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testTranscript(words ...domain.Word) *domain.Transcript {
	return &domain.Transcript{
		Segments:      []domain.Segment{{Words: words}},
		Model:         "base",
		TranscribedAt: time.Now(),
	}
}

func TestBleepService_Run_Edits(t *testing.T) {
	dir := t.TempDir()
	input := writeTestAudio(t, dir, "podcast.mp3")
	wl := writeWordlist(t, dir, "hell")

	transcriber := &mockTranscriber{transcript: testTranscript(
		domain.Word{Text: "oh", Start: 0.5, End: 0.8},
		domain.Word{Text: "Hell!", Start: 1.0, End: 1.4},
	)}
	muxer := &mockMuxer{}

	svc := NewBleepService(transcriber, muxer, newMockCache(), time.Hour)
	result, err := svc.Run(context.Background(), input, BleepOptions{
		Mode:         audio.ModeSilence,
		WordlistPath: wl,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Status != StatusEdited {
		t.Fatalf("Status = %v, want StatusEdited", result.Status)
	}
	if result.Replacements != 1 {
		t.Errorf("Replacements = %d, want 1", result.Replacements)
	}
	if len(result.Hits) != 1 || result.Hits[0].Word != "hell" {
		t.Errorf("Hits = %v, want one 'hell' hit", result.Hits)
	}

	wantOut := filepath.Join(dir, "podcast_clean.mp3")
	if result.OutputPath != wantOut {
		t.Errorf("OutputPath = %s, want %s", result.OutputPath, wantOut)
	}
	if _, err := os.Stat(wantOut); err != nil {
		t.Errorf("output file not written: %v", err)
	}

	// Duration invariance end to end: edited file decodes to the same
	// length as the input.
	src, err := audio.DecodeWAV(input)
	if err != nil {
		t.Fatal(err)
	}
	out, err := audio.DecodeWAV(wantOut)
	if err != nil {
		t.Fatal(err)
	}
	if out.LengthMs() != src.LengthMs() {
		t.Errorf("output length = %dms, want %dms", out.LengthMs(), src.LengthMs())
	}
}

func TestBleepService_Run_PaddingControl(t *testing.T) {
	tests := []struct {
		name        string
		padMs       int
		wantStartMs int
		wantEndMs   int
	}{
		{"zero padding means none", 0, 1000, 1400},
		{"negative selects the default", -1, 920, 1480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := writeTestAudio(t, dir, "podcast.mp3")
			wl := writeWordlist(t, dir, "hell")

			transcriber := &mockTranscriber{transcript: testTranscript(
				domain.Word{Text: "hell", Start: 1.0, End: 1.4},
			)}
			svc := NewBleepService(transcriber, &mockMuxer{}, newMockCache(), time.Hour)

			result, err := svc.Run(context.Background(), input, BleepOptions{
				Mode:         audio.ModeSilence,
				PadMs:        tt.padMs,
				WordlistPath: wl,
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(result.Hits) != 1 {
				t.Fatalf("Hits = %d, want 1", len(result.Hits))
			}

			iv := result.Hits[0].Interval
			if iv.StartMs != tt.wantStartMs || iv.EndMs != tt.wantEndMs {
				t.Errorf("interval = [%d,%d), want [%d,%d)",
					iv.StartMs, iv.EndMs, tt.wantStartMs, tt.wantEndMs)
			}
		})
	}
}

func TestBleepService_Run_EmptyWordlist(t *testing.T) {
	dir := t.TempDir()
	input := writeTestAudio(t, dir, "podcast.mp3")
	wl := writeWordlist(t, dir) // comments only

	transcriber := &mockTranscriber{transcript: testTranscript()}
	muxer := &mockMuxer{}

	svc := NewBleepService(transcriber, muxer, newMockCache(), time.Hour)
	result, err := svc.Run(context.Background(), input, BleepOptions{WordlistPath: wl})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Status != StatusEmptyWordlist {
		t.Errorf("Status = %v, want StatusEmptyWordlist", result.Status)
	}
	if transcriber.calls != 0 {
		t.Error("transcription should be skipped for an empty wordlist")
	}
	if muxer.encodeCalls != 0 {
		t.Error("no output should be encoded for an empty wordlist")
	}
}

func TestBleepService_Run_NoMatches(t *testing.T) {
	dir := t.TempDir()
	input := writeTestAudio(t, dir, "podcast.mp3")
	wl := writeWordlist(t, dir, "hell")

	transcriber := &mockTranscriber{transcript: testTranscript(
		domain.Word{Text: "perfectly", Start: 0.5, End: 1.0},
		domain.Word{Text: "clean", Start: 1.1, End: 1.5},
	)}
	muxer := &mockMuxer{}

	svc := NewBleepService(transcriber, muxer, newMockCache(), time.Hour)
	result, err := svc.Run(context.Background(), input, BleepOptions{WordlistPath: wl})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Status != StatusNoMatches {
		t.Errorf("Status = %v, want StatusNoMatches", result.Status)
	}
	if result.OutputPath != "" {
		t.Errorf("OutputPath = %s, want none", result.OutputPath)
	}
	if muxer.encodeCalls != 0 {
		t.Error("no output file should be written when nothing matched")
	}
	if _, err := os.Stat(filepath.Join(dir, "podcast_clean.mp3")); !os.IsNotExist(err) {
		t.Error("clean file should not exist after a no-match run")
	}
}

func TestBleepService_Run_MissingInput(t *testing.T) {
	dir := t.TempDir()
	wl := writeWordlist(t, dir, "hell")

	svc := NewBleepService(&mockTranscriber{}, &mockMuxer{}, newMockCache(), time.Hour)
	_, err := svc.Run(context.Background(), filepath.Join(dir, "missing.mp3"), BleepOptions{WordlistPath: wl})
	if err == nil {
		t.Fatal("Run() should fail for a missing input file")
	}
}

func TestBleepService_Run_TranscriptCache(t *testing.T) {
	dir := t.TempDir()
	input := writeTestAudio(t, dir, "podcast.mp3")
	wl := writeWordlist(t, dir, "hell")

	transcriber := &mockTranscriber{transcript: testTranscript(
		domain.Word{Text: "hell", Start: 1.0, End: 1.4},
	)}
	cache := newMockCache()
	svc := NewBleepService(transcriber, &mockMuxer{}, cache, time.Hour)

	opts := BleepOptions{Mode: audio.ModeSilence, WordlistPath: wl}
	ctx := context.Background()

	if _, err := svc.Run(ctx, input, opts); err != nil {
		t.Fatal(err)
	}
	if transcriber.calls != 1 {
		t.Fatalf("first run: transcriber calls = %d, want 1", transcriber.calls)
	}
	if len(cache.items) != 1 {
		t.Fatalf("transcript not cached after first run")
	}

	result, err := svc.Run(ctx, input, opts)
	if err != nil {
		t.Fatal(err)
	}
	if transcriber.calls != 1 {
		t.Errorf("second run: transcriber calls = %d, want cached (1)", transcriber.calls)
	}
	if !result.FromCache {
		t.Error("FromCache = false on second run, want true")
	}

	// NoCache bypasses the stored transcript
	opts.NoCache = true
	if _, err := svc.Run(ctx, input, opts); err != nil {
		t.Fatal(err)
	}
	if transcriber.calls != 2 {
		t.Errorf("NoCache run: transcriber calls = %d, want 2", transcriber.calls)
	}
}

func TestBleepService_Run_RejectsSegmentOnlyTranscript(t *testing.T) {
	dir := t.TempDir()
	input := writeTestAudio(t, dir, "podcast.mp3")
	wl := writeWordlist(t, dir, "hell")

	transcriber := &mockTranscriber{transcript: &domain.Transcript{
		Segments: []domain.Segment{{Start: 0, End: 5, Text: "hell of a show"}},
	}}

	svc := NewBleepService(transcriber, &mockMuxer{}, newMockCache(), time.Hour)
	_, err := svc.Run(context.Background(), input, BleepOptions{WordlistPath: wl})
	if err == nil {
		t.Fatal("Run() should reject a transcript without word timestamps")
	}
}

func TestCleanOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"podcast.mp3", "podcast_clean.mp3"},
		{"/tmp/show.m4a", "/tmp/show_clean.m4a"},
		{"noext", "noext_clean"},
	}

	for _, tt := range tests {
		if got := CleanOutputPath(tt.input); got != tt.want {
			t.Errorf("CleanOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
