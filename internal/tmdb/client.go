// Package tmdb is a thin client for The Movie Database v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/streamvault/streamvault/internal/domain"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Enabled reports whether an API key is configured. Callers fall back to
// static data when it is not.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type listResponse struct {
	Results []result `json:"results"`
}

type result struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// Fetch calls a TMDB list endpoint (e.g. "/trending/movie/week") and maps
// the results to catalog titles.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) ([]domain.Title, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb request: unexpected status %d", resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("tmdb response: %w", err)
	}

	titles := make([]domain.Title, 0, len(body.Results))
	for _, r := range body.Results {
		titles = append(titles, r.toTitle())
	}
	return titles, nil
}

func (r result) toTitle() domain.Title {
	name := r.Title
	if name == "" {
		name = r.Name
	}
	release := r.ReleaseDate
	if release == "" {
		release = r.FirstAirDate
	}
	return domain.Title{
		ID:           r.ID,
		Title:        name,
		PosterPath:   imageURL(r.PosterPath, "w500"),
		BackdropPath: imageURL(r.BackdropPath, "original"),
		Overview:     r.Overview,
		ReleaseDate:  release,
		Rating:       r.VoteAverage,
	}
}

func imageURL(path, size string) string {
	if path == "" {
		return domain.DefaultAvatarURL
	}
	return fmt.Sprintf("%s/%s%s", imageBaseURL, size, path)
}
