package tmdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// MaxResults is how many discover results are surfaced, in provider order.
const MaxResults = 5

const (
	NoDescription = "No description"
	UnknownDate   = "Unknown"
)

// MovieSummary is the slice of a discover result the app keeps.
type MovieSummary struct {
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Rating      float64 `json:"rating"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

type discoverResponse struct {
	Results []discoverResult `json:"results"`
}

type discoverResult struct {
	Title       string   `json:"title"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	PosterPath  *string  `json:"poster_path"`
}

// Discover returns up to MaxResults movies matching all genres, most popular first.
//
// It never returns nil. On any failure the slice is empty and the error is a
// *CatalogError; callers may treat that exactly like zero matches.
func (c *Client) Discover(ctx context.Context, genres []int) ([]MovieSummary, error) {
	codes := make([]string, len(genres))
	for i, g := range genres {
		codes[i] = strconv.Itoa(g)
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("with_genres", strings.Join(codes, ","))
	query.Set("sort_by", "popularity.desc")
	query.Set("language", "en-US")

	endpoint := c.baseURL + "/discover/movie"
	log := c.log.With(zap.String("endpoint", endpoint), zap.String("with_genres", query.Get("with_genres")))

	if err := c.limiter.Wait(ctx); err != nil {
		return c.fail(log, &CatalogError{Kind: classify(err), Err: err})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return c.fail(log, &CatalogError{Kind: KindNetwork, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(log, &CatalogError{Kind: classify(err), Err: redact(err)})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return c.fail(log, &CatalogError{Kind: KindStatus, StatusCode: resp.StatusCode})
	}

	var body discoverResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&body); err != nil {
		kind := KindDecode
		if classify(err) == KindTimeout {
			kind = KindTimeout
		}
		return c.fail(log, &CatalogError{Kind: kind, Err: err})
	}

	results := body.Results
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	movies := make([]MovieSummary, 0, len(results))
	for _, r := range results {
		if strings.TrimSpace(r.Title) == "" {
			log.Warn("Skipping discover result without title")
			continue
		}
		movies = append(movies, c.toSummary(r))
	}

	log.Debug("Discover completed",
		zap.Int("received", len(body.Results)),
		zap.Int("returned", len(movies)),
	)

	return movies, nil
}

func (c *Client) toSummary(r discoverResult) MovieSummary {
	m := MovieSummary{
		Title:       r.Title,
		Overview:    NoDescription,
		ReleaseDate: UnknownDate,
	}

	if r.Overview != nil && *r.Overview != "" {
		m.Overview = *r.Overview
	}
	if r.ReleaseDate != nil && *r.ReleaseDate != "" {
		m.ReleaseDate = *r.ReleaseDate
	}
	if r.VoteAverage != nil {
		m.Rating = *r.VoteAverage
	}
	if r.PosterPath != nil && *r.PosterPath != "" {
		poster := c.imageURL + *r.PosterPath
		m.PosterURL = &poster
	}

	return m
}

func (c *Client) fail(log *zap.Logger, err *CatalogError) ([]MovieSummary, error) {
	log.Error("Catalog request failed",
		zap.String("kind", string(err.Kind)),
		zap.Int("status", err.StatusCode),
		zap.Error(err.Err),
	)
	return []MovieSummary{}, err
}

// redact drops the query string (which carries the api key) from url errors.
func redact(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
		}
	}
	return err
}
