package service

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/streamvault/streamvault/internal/domain"
	"github.com/streamvault/streamvault/internal/tmdb"
)

// Static fallback lists, served whenever TMDB is unconfigured or unreachable.
var mockMovies = []domain.Title{
	{ID: 1, Title: "Inception", PosterPath: "/images/inception_poster.webp", BackdropPath: "/images/inception_poster.webp", Overview: "A thief who steals corporate secrets through the use of dream-sharing technology.", ReleaseDate: "2010", Rating: 8.8, Director: "Christopher Nolan"},
	{ID: 2, Title: "The Dark Knight", PosterPath: "/images/dark_knight_poster.webp", BackdropPath: "/images/dark_knight_poster.webp", Overview: "Batman raises the stakes in his war on crime.", ReleaseDate: "2008", Rating: 9.0, Director: "Christopher Nolan"},
	{ID: 3, Title: "Interstellar", PosterPath: "/images/interstellar_poster.webp", BackdropPath: "/images/interstellar_poster.webp", Overview: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.", ReleaseDate: "2014", Rating: 8.7, Director: "Christopher Nolan"},
	{ID: 4, Title: "The Matrix", PosterPath: "/images/matrix_poster.webp", BackdropPath: "/images/matrix_poster.webp", Overview: "A computer hacker learns from mysterious rebels about the true nature of his reality.", ReleaseDate: "1999", Rating: 8.7, Director: "Wachowski Brothers"},
	{ID: 5, Title: "Pulp Fiction", PosterPath: "/images/pulp_fiction_poster.webp", BackdropPath: "/images/pulp_fiction_poster.webp", Overview: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine.", ReleaseDate: "1994", Rating: 8.9, Director: "Quentin Tarantino"},
}

var mockShows = []domain.Title{
	{ID: 101, Title: "Stranger Things", PosterPath: "/images/stranger_things_poster.webp", BackdropPath: "/images/stranger_things_poster.webp", Overview: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments and terrifying supernatural forces.", ReleaseDate: "2016", Rating: 8.7, Seasons: "4 Seasons"},
	{ID: 102, Title: "The Matrix Series", PosterPath: "/images/matrix_poster.webp", BackdropPath: "/images/matrix_poster.webp", Overview: "TV adaptation of the classic cyber-thriller.", ReleaseDate: "2023", Rating: 9.5, Seasons: "1 Season"},
	{ID: 103, Title: "Dream Space", PosterPath: "/images/inception_poster.webp", BackdropPath: "/images/inception_poster.webp", Overview: "A show exploring the depths of subconscious manipulation.", ReleaseDate: "2022", Rating: 8.6, Seasons: "2 Seasons"},
	{ID: 104, Title: "Galactic Horizon", PosterPath: "/images/interstellar_poster.webp", BackdropPath: "/images/interstellar_poster.webp", Overview: "Following explorers in the outer rim of the galaxy.", ReleaseDate: "2021", Rating: 8.1, Seasons: "3 Seasons"},
}

// CatalogService proxies the TMDB catalog with a static fallback. Upstream
// failures degrade to the fallback rather than erroring out.
type CatalogService struct {
	tmdb *tmdb.Client
}

func NewCatalogService(client *tmdb.Client) *CatalogService {
	return &CatalogService{tmdb: client}
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) []domain.Title {
	endpoint := "/trending/all/week"
	fallback := mockMovies

	switch category {
	case "tv":
		endpoint = "/trending/tv/week"
		fallback = mockShows
	case "movies":
		endpoint = "/discover/movie"
	case "popular":
		endpoint = "/movie/popular"
	}

	if !s.tmdb.Enabled() {
		return fallback
	}

	titles, err := s.tmdb.Fetch(ctx, endpoint, nil)
	if err != nil {
		log.Printf("catalog: category %q: %v", category, err)
		return fallback
	}

	filtered := titles[:0]
	for _, t := range titles {
		if !strings.Contains(strings.ToLower(t.Title), "netflix") {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		return fallback
	}
	return filtered
}

func (s *CatalogService) Trending(ctx context.Context) []domain.Title {
	if !s.tmdb.Enabled() {
		return mockMovies
	}

	titles, err := s.tmdb.Fetch(ctx, "/trending/movie/week", nil)
	if err != nil {
		log.Printf("catalog: trending: %v", err)
		return mockMovies
	}
	return titles
}

func (s *CatalogService) Search(ctx context.Context, query string) []domain.Title {
	if query == "" {
		return []domain.Title{}
	}

	if !s.tmdb.Enabled() {
		matches := []domain.Title{}
		for _, t := range mockMovies {
			if strings.Contains(strings.ToLower(t.Title), strings.ToLower(query)) {
				matches = append(matches, t)
			}
		}
		return matches
	}

	titles, err := s.tmdb.Fetch(ctx, "/search/movie", url.Values{"query": {query}})
	if err != nil {
		log.Printf("catalog: search %q: %v", query, err)
		return mockMovies
	}
	return titles
}
