package ytexport

import (
	"context"
	"fmt"
	"log"

	"ytexport/auth"
	"ytexport/config"
	"ytexport/export"
	"ytexport/youtube"
)

// Run authenticates with the settings in cfg, collects every playlist of the
// account and exports it. onProgress may be nil.
func Run(ctx context.Context, cfg *config.Config, onProgress func(done, total int)) (*export.Report, error) {
	a, err := auth.New(cfg.CredentialsFile, auth.Options{
		TokenFile: cfg.TokenFile,
		SaveToken: cfg.SaveToken,
		Timeout:   cfg.AuthTimeout,
	})
	if err != nil {
		return nil, err
	}

	client, err := a.Client(ctx)
	if err != nil {
		return nil, err
	}

	api, err := youtube.NewServiceAPI(ctx, client, cfg.MaxResults)
	if err != nil {
		return nil, err
	}

	return Export(ctx, api, cfg, onProgress)
}

// Export collects every playlist through api and writes the export files
// described by cfg.
func Export(ctx context.Context, api youtube.API, cfg *config.Config, onProgress func(done, total int)) (*export.Report, error) {
	playlists, err := youtube.Collect(ctx, api, &youtube.CollectOptions{
		WatchLaterTitle: cfg.WatchLaterTitle,
		OnProgress:      onProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("collect playlists: %w", err)
	}
	// Playlists not reached before cancellation come back empty; keep the
	// previous run's files instead of replacing them with those.
	if err := ctx.Err(); err != nil {
		log.Printf("ytexport: run cancelled after collecting, keeping %s unchanged", cfg.OutputDir)
		return nil, fmt.Errorf("export cancelled: %w", err)
	}

	e := &export.Exporter{Dir: cfg.OutputDir, SQLitePath: cfg.SQLitePath}
	return e.Export(ctx, playlists)
}

// Replay rewrites the CSV tables from the snapshot of the previous run in
// cfg.OutputDir, without contacting the API.
func Replay(ctx context.Context, cfg *config.Config) (*export.Report, error) {
	e := &export.Exporter{Dir: cfg.OutputDir}
	return e.Replay(ctx)
}
