package domain

// Title is a catalog entry (movie or show) as served to the client.
type Title struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	Rating       float64 `json:"rating"`
	Director     string  `json:"director,omitempty"`
	Seasons      string  `json:"seasons,omitempty"`
}
