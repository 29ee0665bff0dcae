package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/tft-notebook/internal/assets"
	"github.com/KirkDiggler/tft-notebook/internal/clients/cdragon"
	"github.com/KirkDiggler/tft-notebook/internal/config"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/orchestrators/notebook"
	"github.com/KirkDiggler/tft-notebook/internal/pkg/clock"
	"github.com/KirkDiggler/tft-notebook/internal/pkg/idgen"
	"github.com/KirkDiggler/tft-notebook/internal/redis"
	"github.com/KirkDiggler/tft-notebook/internal/repositories/buildstate"
)

func newClient(c *config.Config) (cdragon.Client, error) {
	return cdragon.New(&cdragon.Config{
		DataURL:      c.DataURL,
		AssetBaseURL: c.AssetBaseURL,
		HTTPTimeout:  c.HTTPTimeout,
	})
}

// newRepository opens the configured backend. The returned func releases it.
func newRepository(c *config.Config) (buildstate.Repository, func(), error) {
	switch c.Backend {
	case config.BackendRedis:
		client, err := redis.NewClientFromURL(c.RedisURL)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
		}
		repo, err := buildstate.NewRedis(&buildstate.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { closeQuietly("redis", client.Close) }, nil

	case config.BackendSQLite:
		repo, err := buildstate.NewSQLite(&buildstate.SQLiteConfig{Path: c.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { closeQuietly("sqlite", repo.Close) }, nil

	default:
		repo, err := buildstate.NewFile(&buildstate.FileConfig{Dir: c.DataDir})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func closeQuietly(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Warn("failed to close backend", "backend", name, "error", err)
	}
}

// openNotebook wires every dependency and bootstraps a notebook
func openNotebook(ctx context.Context, c *config.Config) (notebook.Service, func(), error) {
	client, err := newClient(c)
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := newRepository(c)
	if err != nil {
		return nil, nil, err
	}

	icons, err := assets.New(&assets.Config{Dir: c.IconDir(), Client: client})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	svc, err := notebook.Bootstrap(ctx, &notebook.Config{
		Client:      client,
		Repository:  repo,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("snap"),
		Icons:       icons,
		Profile:     c.Profile,
		SetIndex:    c.SetIndex,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}
	return svc, closeRepo, nil
}
