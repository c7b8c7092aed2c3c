package request

// Genders offered by the form dropdown.
var Genders = []string{"Male", "Female", "Other"}

// RecommendRequest carries raw field values. Age stays text until the workflow parses it.
type RecommendRequest struct {
	Name    string `json:"name"`
	Feeling string `json:"feeling"`
	Gender  string `json:"gender"`
	Age     string `json:"age"`
}
