package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamvault/streamvault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_MapsResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"id":7,"title":"Heat","poster_path":"/heat.jpg","backdrop_path":"/heat_bg.jpg","overview":"Crime saga.","release_date":"1995-12-15","vote_average":8.3},
			{"id":8,"name":"Dark","first_air_date":"2017-12-01","vote_average":8.7}
		]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", srv.URL)
	titles, err := c.Fetch(context.Background(), "/trending/movie/week", nil)
	require.NoError(t, err)
	require.Len(t, titles, 2)

	assert.Equal(t, "Heat", titles[0].Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/heat.jpg", titles[0].PosterPath)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/heat_bg.jpg", titles[0].BackdropPath)
	assert.Equal(t, "1995-12-15", titles[0].ReleaseDate)
	assert.Equal(t, 8.3, titles[0].Rating)

	// TV results use name/first_air_date and fall back to the default
	// image when paths are missing.
	assert.Equal(t, "Dark", titles[1].Title)
	assert.Equal(t, "2017-12-01", titles[1].ReleaseDate)
	assert.Equal(t, domain.DefaultAvatarURL, titles[1].PosterPath)
	assert.Equal(t, domain.DefaultAvatarURL, titles[1].BackdropPath)
}

func TestFetch_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("bad-key", srv.URL)
	_, err := c.Fetch(context.Background(), "/movie/popular", nil)
	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, NewClient("").Enabled())
	assert.True(t, NewClient("k").Enabled())
}
