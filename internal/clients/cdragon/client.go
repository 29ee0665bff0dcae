// Package cdragon fetches the TFT game-data document and its image assets
// from a CommunityDragon mirror
package cdragon

//go:generate mockgen -destination=mock/mock_client.go -package=cdragonmock github.com/KirkDiggler/tft-notebook/internal/clients/cdragon Client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

const (
	// DefaultDataURL is the localized TFT document of the latest patch
	DefaultDataURL = "https://raw.communitydragon.org/latest/cdragon/tft/en_us.json"
	// DefaultAssetBaseURL prefixes asset paths found in the document
	DefaultAssetBaseURL = "https://raw.communitydragon.org/latest/game/"

	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "tft-notebook/1.0"
)

// Client defines the interface for fetching remote game data
type Client interface {
	// FetchDocument downloads the whole game-data document
	// Returns errors.Unavailable when the mirror cannot be reached or answers
	// with a non-200 status
	FetchDocument(ctx context.Context) ([]byte, error)

	// FetchAsset downloads the image an asset path of the document refers to
	// Returns errors.InvalidArgument for an empty path
	// Returns errors.Unavailable on transport failures and non-200 statuses
	FetchAsset(ctx context.Context, path string) ([]byte, error)

	// AssetURL maps an asset path of the document to its mirror URL
	AssetURL(path string) string
}

// Config contains configuration options for the client
type Config struct {
	// DataURL of the game-data document (optional, defaults to DefaultDataURL)
	DataURL string
	// AssetBaseURL for image assets (optional, defaults to DefaultAssetBaseURL)
	AssetBaseURL string
	// HTTPTimeout for each request (optional, defaults to 60 seconds)
	HTTPTimeout time.Duration
	// UserAgent sent with each request (optional)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DataURL == "" {
		cfg.DataURL = DefaultDataURL
	}
	if cfg.AssetBaseURL == "" {
		cfg.AssetBaseURL = DefaultAssetBaseURL
	}
	if !strings.HasSuffix(cfg.AssetBaseURL, "/") {
		cfg.AssetBaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return nil
}

type client struct {
	httpClient   *http.Client
	dataURL      string
	assetBaseURL string
	userAgent    string
}

// New creates a new client with the given configuration
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		httpClient:   httpClient,
		dataURL:      cfg.DataURL,
		assetBaseURL: cfg.AssetBaseURL,
		userAgent:    cfg.UserAgent,
	}, nil
}

func (c *client) FetchDocument(ctx context.Context) ([]byte, error) {
	start := time.Now()
	body, err := c.get(ctx, c.dataURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch game data")
	}

	slog.InfoContext(ctx, "fetched game data",
		"url", c.dataURL,
		"bytes", len(body),
		"elapsed", time.Since(start))

	return body, nil
}

func (c *client) FetchAsset(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.InvalidArgument("asset path cannot be empty")
	}

	url := c.AssetURL(path)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch asset %s", path)
	}
	return body, nil
}

// AssetURL lowercases the path and swaps the texture extensions the game
// ships for the png files the mirror serves
func (c *client) AssetURL(path string) string {
	p := strings.ToLower(path)
	p = strings.ReplaceAll(p, "dds", "png")
	p = strings.ReplaceAll(p, "tex", "png")
	return c.assetBaseURL + strings.TrimPrefix(p, "/")
}

func (c *client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "bad url %s", url)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "request to %s failed", url)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("%s returned status %d", url, resp.StatusCode).
			WithMeta("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", url)
	}
	return body, nil
}
