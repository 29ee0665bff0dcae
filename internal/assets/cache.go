// Package assets resolves the image paths in the game data to local files,
// downloading each one the first time it is asked for
package assets

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/KirkDiggler/tft-notebook/internal/clients/cdragon"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// PlaceholderFile is served for entities that have no icon
const PlaceholderFile = "tft_item_unknown.png"

// Handle locates one resolved image
type Handle struct {
	URL  string
	Path string
}

// Config contains configuration for the cache
type Config struct {
	Dir    string
	Client cdragon.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// Cache stores fetched images in a flat directory keyed by file name
type Cache struct {
	dir    string
	client cdragon.Client
}

// New creates the cache directory if needed and returns a cache over it
func New(cfg *Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create asset cache %s", cfg.Dir)
	}
	return &Cache{dir: cfg.Dir, client: cfg.Client}, nil
}

// Resolve returns the local copy of the asset, fetching it on first use
func (c *Cache) Resolve(ctx context.Context, assetPath string) (Handle, error) {
	if assetPath == "" {
		return Handle{Path: filepath.Join(c.dir, PlaceholderFile)}, nil
	}

	url := c.client.AssetURL(assetPath)
	local := filepath.Join(c.dir, path.Base(url))

	if info, err := os.Stat(local); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		return Handle{URL: url, Path: local}, nil
	}

	data, err := c.client.FetchAsset(ctx, assetPath)
	if err != nil {
		return Handle{}, err
	}
	if err := c.write(local, data); err != nil {
		return Handle{}, errors.Wrapf(err, "failed to cache asset %s", path.Base(url))
	}

	slog.DebugContext(ctx, "cached asset", "file", path.Base(url), "bytes", len(data))
	return Handle{URL: url, Path: local}, nil
}

// write lands data at local through a temp file so a reader never sees a
// partial image
func (c *Cache) write(local string, data []byte) error {
	tmp, err := os.CreateTemp(c.dir, ".asset-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), local); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
