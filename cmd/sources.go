package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitfeed/internal/calendar"
	"fitfeed/internal/config"
	"fitfeed/internal/gcal"
	"fitfeed/internal/ics"
)

// loadConfig reads ~/.fitfeed/config.yaml, creating it on first run.
func loadConfig() (*config.Config, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// buildSource assembles the aggregate calendar source from the config.
func buildSource(ctx context.Context, cfg *config.Config) (calendar.Source, error) {
	var sources []calendar.Source

	if cfg.Google != nil && cfg.Google.ClientID != "" {
		client, err := gcal.GetHTTPClient(ctx, cfg.Google.ClientID, cfg.Google.ClientSecret)
		if err != nil {
			return nil, fmt.Errorf("google authentication: %w", err)
		}
		src, err := gcal.NewSource(ctx, client)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	if len(cfg.ICS) > 0 {
		feeds := make([]ics.Feed, 0, len(cfg.ICS))
		for _, f := range cfg.ICS {
			feeds = append(feeds, ics.Feed{URL: f.URL, Name: f.Name})
		}
		sources = append(sources, ics.NewSource(feeds...))
	}

	if len(sources) == 0 {
		return nil, errors.New("no calendar sources configured; add google or ics entries to ~/.fitfeed/config.yaml, or run with --demo")
	}

	src := calendar.Source(calendar.NewMulti(sources...))
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
		src = calendar.NewLocalized(src, loc)
	}
	return src, nil
}
