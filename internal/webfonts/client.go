// Package webfonts is the online font search backend built on the Google
// Web Fonts Developer API.
package webfonts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/api/option"
	webfontsapi "google.golang.org/api/webfonts/v1"

	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/model"
)

// Defaults
const (
	DefaultLimit   = 50
	DefaultSort    = "popularity"
	RegularVariant = "regular"
)

const (
	insecureStaticPrefix = "http://fonts.gstatic.com/"
	secureStaticPrefix   = "https://fonts.gstatic.com/"
)

// ErrMissingAPIKey is returned when the client is created without an API key
var ErrMissingAPIKey = errors.New("webfonts API key is required")

// Config configures the Web Fonts client
type Config struct {
	APIKey   string
	Endpoint string // override for tests and proxies
	Limit    int
}

// Client searches the Google Fonts catalog
type Client struct {
	svc   *webfontsapi.Service
	limit int
}

// New creates a client. Extra options are appended after the ones derived
// from cfg.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		clientOpts = append(clientOpts, option.WithEndpoint(endpoint))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := webfontsapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create webfonts service: %w", err)
	}

	limit := cfg.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	return &Client{svc: svc, limit: limit}, nil
}

// SearchFonts lists families by popularity and keeps those whose name
// contains query, case-insensitively.
func (c *Client) SearchFonts(ctx context.Context, query string) ([]model.Font, error) {
	log := logging.FromContext(ctx)
	needle := strings.ToLower(strings.TrimSpace(query))

	resp, err := c.svc.Webfonts.List().Sort(DefaultSort).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list webfonts: %w", err)
	}

	fonts := make([]model.Font, 0)
	for _, item := range resp.Items {
		if item == nil || !strings.Contains(strings.ToLower(item.Family), needle) {
			continue
		}
		url := pickFile(item.Files)
		if url == "" {
			log.Debug().Str("family", item.Family).Msg("webfont without files")
			continue
		}
		fonts = append(fonts, model.Font{Name: item.Family, URL: url})
		if len(fonts) == c.limit {
			break
		}
	}

	log.Debug().Int("listed", len(resp.Items)).Int("matched", len(fonts)).Msg("webfonts search")
	return fonts, nil
}

// pickFile returns the regular variant's file, or the first variant in
// lexical order when there is no regular one.
func pickFile(files map[string]string) string {
	if len(files) == 0 {
		return ""
	}
	if url, ok := files[RegularVariant]; ok && url != "" {
		return secure(url)
	}

	variants := make([]string, 0, len(files))
	for v := range files {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	for _, v := range variants {
		if files[v] != "" {
			return secure(files[v])
		}
	}
	return ""
}

func secure(url string) string {
	if strings.HasPrefix(url, insecureStaticPrefix) {
		return secureStaticPrefix + strings.TrimPrefix(url, insecureStaticPrefix)
	}
	return url
}
