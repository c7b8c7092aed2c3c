package adaptor

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	"manochitram/internal/dto/request"
	"manochitram/internal/dto/response"
	"manochitram/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").Funcs(template.FuncMap{
		"truncate": utils.Truncate,
		"join":     strings.Join,
		// Only ever fed thumbnails we encoded ourselves.
		"safeURL": func(s string) template.URL { return template.URL(s) },
	}).ParseFS(templateFS, "templates/index.html"),
)

// pageData is everything index.html renders.
type pageData struct {
	AppName string
	Genders []string
	Form    request.RecommendRequest
	Notice  string
	Result  *response.RecommendationResult
}

// viewState is the result panel. A nil result means Idle; anything else is
// Displaying, including an empty list.
type viewState struct {
	mu     sync.RWMutex
	form   request.RecommendRequest
	result *response.RecommendationResult
}

func (v *viewState) snapshot() (request.RecommendRequest, *response.RecommendationResult) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.form, v.result
}

func (v *viewState) display(form request.RecommendRequest, result *response.RecommendationResult) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = form
	v.result = result
}
