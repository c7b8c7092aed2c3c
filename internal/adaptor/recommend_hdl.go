package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"manochitram/internal/dto/request"
	"manochitram/internal/dto/response"
	"manochitram/internal/usecase"
	"manochitram/pkg/utils"

	"go.uber.org/zap"
)

const (
	noticeInvalidAge  = "Please enter valid details."
	noticeCatalogDown = "The movie catalog could not be reached. Try again in a moment."
	noticeNotSaved    = "Recommendations are shown but could not be saved."
	noticeFailed      = "Something went wrong. Please try again."
	noticeCanceled    = "The request was canceled before recommendations were ready."
)

type RecommendHandler struct {
	service usecase.RecommendService
	appName string
	view    *viewState
	log     *zap.Logger
}

func NewRecommendHandler(service usecase.RecommendService, appName string, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		service: service,
		appName: appName,
		view:    &viewState{},
		log:     log.With(zap.String("handler", "recommend")),
	}
}

// Index handles GET /
func (h *RecommendHandler) Index(w http.ResponseWriter, r *http.Request) {
	form, result := h.view.snapshot()
	h.render(w, http.StatusOK, form, result, "")
}

// Submit handles POST /recommendations from the form.
func (h *RecommendHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		form, result := h.view.snapshot()
		h.render(w, http.StatusBadRequest, form, result, noticeFailed)
		return
	}

	req := request.RecommendRequest{
		Name:    r.PostForm.Get("name"),
		Feeling: r.PostForm.Get("feeling"),
		Gender:  r.PostForm.Get("gender"),
		Age:     r.PostForm.Get("age"),
	}

	ctx := r.Context()
	result, err := h.service.Recommend(ctx, &req)
	if err != nil {
		// The displayed results stay exactly as they were.
		_, prior := h.view.snapshot()
		status, notice := h.classifyError(err, "recommend")
		h.render(w, status, req, prior, notice)
		return
	}

	h.service.AttachPosters(ctx, result)
	if err := ctx.Err(); err != nil {
		_, prior := h.view.snapshot()
		status, notice := h.classifyError(err, "attach posters")
		h.render(w, status, req, prior, notice)
		return
	}

	h.view.display(req, result)

	notice := ""
	if result.CatalogError != "" {
		notice = noticeCatalogDown
	}

	if _, err := h.service.Save(ctx, result); err != nil {
		h.log.Error("Failed to persist displayed recommendations",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		notice = noticeNotSaved
	}

	h.render(w, http.StatusOK, req, result, notice)
}

// SubmitJSON handles POST /api/recommendations
func (h *RecommendHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var req request.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAge) {
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{"age": "Must be a whole number"})
			return
		}
		if status, _ := h.classifyError(err, "submit recommendations"); status == http.StatusServiceUnavailable {
			utils.ResponseServiceUnavailable(w, "Request canceled")
			return
		}
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// classifyError logs err and picks the status and notice for the page.
func (h *RecommendHandler) classifyError(err error, operation string) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidAge):
		h.log.Warn(operation+" rejected - invalid age",
			zap.Error(err),
			zap.String("operation", operation))
		return http.StatusUnprocessableEntity, noticeInvalidAge

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.Warn(operation+" canceled - view unchanged",
			zap.Error(err),
			zap.String("operation", operation))
		return http.StatusServiceUnavailable, noticeCanceled

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		return http.StatusInternalServerError, noticeFailed
	}
}

func (h *RecommendHandler) render(w http.ResponseWriter, status int, form request.RecommendRequest, result *response.RecommendationResult, notice string) {
	data := pageData{
		AppName: h.appName,
		Genders: request.Genders,
		Form:    form,
		Notice:  notice,
		Result:  result,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.log.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
