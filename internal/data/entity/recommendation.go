package entity

// Recommendation is one movie shown for one submit, tagged with who asked.
type Recommendation struct {
	ID          int64   `db:"id"`
	Sentiment   string  `db:"sentiment"`
	MovieTitle  string  `db:"movie_title"`
	Overview    string  `db:"overview"`
	ReleaseDate string  `db:"release_date"`
	Rating      float64 `db:"rating"`
	UserName    string  `db:"user_name"`
	UserAge     int     `db:"user_age"`
	UserGender  string  `db:"user_gender"`
}
