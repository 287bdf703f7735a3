package cli

import (
	"time"

	"github.com/devbush/podbleep/internal/adapters/cache"
	"github.com/devbush/podbleep/internal/adapters/ffmpeg"
	"github.com/devbush/podbleep/internal/adapters/whisper"
	"github.com/devbush/podbleep/internal/adapters/ytdlp"
	"github.com/devbush/podbleep/internal/application"
	"github.com/devbush/podbleep/internal/config"
	"github.com/devbush/podbleep/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	Cache       ports.TranscriptCache
	Muxer       *ffmpeg.Muxer
	Downloader  *ytdlp.Downloader
	Transcriber *whisper.Transcriber

	BleepSvc   *application.BleepService
	VideoSvc   *application.VideoService
	InspectSvc *application.InspectService
	CacheSvc   *application.CacheService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	// Parse cache TTL
	ttl, err := cfg.GetCacheTTL()
	if err != nil {
		ttl = 7 * 24 * time.Hour // Default
	}

	// Create adapters
	cacheStore := cache.NewFileCache(config.CacheDir(), ttl)
	muxer := ffmpeg.NewMuxer()
	downloader := ytdlp.NewDownloader(cfg.Paths.YtDlp)
	transcriber := whisper.NewTranscriber("")

	// Create services
	bleepSvc := application.NewBleepService(transcriber, muxer, cacheStore, ttl)
	videoSvc := application.NewVideoService(bleepSvc, downloader, muxer)
	inspectSvc := application.NewInspectService(transcriber)
	cacheSvc := application.NewCacheService(cacheStore)

	return &App{
		Config:      cfg,
		Cache:       cacheStore,
		Muxer:       muxer,
		Downloader:  downloader,
		Transcriber: transcriber,
		BleepSvc:    bleepSvc,
		VideoSvc:    videoSvc,
		InspectSvc:  inspectSvc,
		CacheSvc:    cacheSvc,
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
