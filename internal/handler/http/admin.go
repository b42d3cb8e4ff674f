package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httputil"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/validator"
)

// adminBackend is the slice of the backend client the dashboard uses. Every
// call forwards the caller's bearer token; authorization is the backend's
// decision.
type adminBackend interface {
	CreateProduct(ctx context.Context, token string, input backend.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, input backend.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	CreateCategory(ctx context.Context, token string, input backend.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, token, id string, input backend.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	CreateArtist(ctx context.Context, token string, input backend.ArtistInput) (*domain.Artist, error)
	UpdateArtist(ctx context.Context, token, id string, input backend.ArtistInput) (*domain.Artist, error)
	DeleteArtist(ctx context.Context, token, id string) error

	CreateCourse(ctx context.Context, token string, input backend.CourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, token, id string, input backend.CourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, token, id string) error

	CreateEvent(ctx context.Context, token string, input backend.EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, token, id string, input backend.EventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, token, id string) error
}

// AdminHandler serves the dashboard CRUD surface. Unlike listing reads,
// every operation here propagates its error to the caller.
type AdminHandler struct {
	backend adminBackend
	logger  *slog.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(b adminBackend, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{backend: b, logger: logger}
}

// --- products ---

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input backend.ProductInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.backend.CreateProduct(r.Context(), bearerToken(r), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(product))
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input backend.ProductInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.backend.UpdateProduct(r.Context(), bearerToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(product))
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(ctx context.Context, token, id string) error {
		return h.backend.DeleteProduct(ctx, token, id)
	})
}

// --- categories ---

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input backend.CategoryInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	category, err := h.backend.CreateCategory(r.Context(), bearerToken(r), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(category))
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input backend.CategoryInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	category, err := h.backend.UpdateCategory(r.Context(), bearerToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(category))
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(ctx context.Context, token, id string) error {
		return h.backend.DeleteCategory(ctx, token, id)
	})
}

// --- artists ---

func (h *AdminHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var input backend.ArtistInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	artist, err := h.backend.CreateArtist(r.Context(), bearerToken(r), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(artist))
}

func (h *AdminHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	var input backend.ArtistInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	artist, err := h.backend.UpdateArtist(r.Context(), bearerToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(artist))
}

func (h *AdminHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(ctx context.Context, token, id string) error {
		return h.backend.DeleteArtist(ctx, token, id)
	})
}

// --- courses ---

func (h *AdminHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var input backend.CourseInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	course, err := h.backend.CreateCourse(r.Context(), bearerToken(r), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(course))
}

func (h *AdminHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var input backend.CourseInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	course, err := h.backend.UpdateCourse(r.Context(), bearerToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(course))
}

func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(ctx context.Context, token, id string) error {
		return h.backend.DeleteCourse(ctx, token, id)
	})
}

// --- events ---

func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input backend.EventInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	event, err := h.backend.CreateEvent(r.Context(), bearerToken(r), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(event))
}

func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var input backend.EventInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	event, err := h.backend.UpdateEvent(r.Context(), bearerToken(r), chi.URLParam(r, "id"), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(event))
}

func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(ctx context.Context, token, id string) error {
		return h.backend.DeleteEvent(ctx, token, id)
	})
}

// delete shares the id-check/delete/respond shape of all five resources.
func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, token, id string) error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("id is required"), h.logger)
		return
	}

	if err := fn(r.Context(), bearerToken(r), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Success: true, Message: "deleted"})
}
