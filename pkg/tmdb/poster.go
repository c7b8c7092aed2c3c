package tmdb

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	ThumbnailWidth  = 100
	ThumbnailHeight = 150
)

const (
	maxPosterBytes  = 10 << 20
	maxPosterPixels = 25_000_000
)

// Thumbnail is a poster scaled to ThumbnailWidth x ThumbnailHeight, PNG encoded.
type Thumbnail struct {
	Width  int
	Height int
	PNG    []byte
}

// DataURI renders the thumbnail for inline use in an <img> tag.
func (t *Thumbnail) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(t.PNG)
}

// FetchPoster downloads one poster and scales it to the thumbnail bound.
func (c *Client) FetchPoster(ctx context.Context, posterURL string) (*Thumbnail, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new poster request: %w", err)
	}

	resp, err := c.posters.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch poster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch poster: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPosterBytes))
	if err != nil {
		return nil, fmt.Errorf("read poster: %w", err)
	}

	thumb, err := MakeThumbnail(data)
	if err != nil {
		return nil, err
	}

	c.log.Debug("Poster fetched",
		zap.String("url", posterURL),
		zap.Int("bytes", len(data)),
	)

	return thumb, nil
}

// MakeThumbnail decodes JPEG, PNG or GIF bytes and resamples them to the
// thumbnail size.
func MakeThumbnail(data []byte) (*Thumbnail, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode poster header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPosterPixels {
		return nil, fmt.Errorf("decode poster: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxPosterPixels)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode poster: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, ThumbnailWidth, ThumbnailHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode %s thumbnail: %w", format, err)
	}

	return &Thumbnail{
		Width:  ThumbnailWidth,
		Height: ThumbnailHeight,
		PNG:    buf.Bytes(),
	}, nil
}
