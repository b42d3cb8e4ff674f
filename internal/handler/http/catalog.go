package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/images"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/listing"
	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httputil"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/pagination"
)

// catalogBackend is the slice of the backend client the catalog handler uses.
type catalogBackend interface {
	ListProducts(ctx context.Context, page int) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	FilterProducts(ctx context.Context, filter backend.ProductFilter) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListArtists(ctx context.Context, page int) ([]domain.Artist, error)
	ArtistDetails(ctx context.Context, id string) (*domain.Artist, error)
	ListCourses(ctx context.Context, page int) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	ListEvents(ctx context.Context, page int) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
}

// CatalogHandler serves the browsing surface: product, course, artist, and
// event listings plus detail pages. Listing reads degrade to empty result
// sets on backend failure so pages always render.
type CatalogHandler struct {
	backend catalogBackend
	images  *images.Resolver
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(b catalogBackend, resolver *images.Resolver, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		backend: b,
		images:  resolver,
		logger:  logger,
	}
}

// ListProducts serves GET /api/v1/products. Query params: q, categories
// (comma-separated), min_price, max_price, trending, sort, page, per_page,
// view. The backend supplies the working set; filtering, sorting, and
// pagination run here so the listing behaves identically whichever endpoint
// fed it.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("q")
	categoryIDs := splitParam(q.Get("categories"))
	minPrice := floatParam(q, "min_price")
	maxPrice := floatParam(q, "max_price")
	trendingOnly := q.Get("trending") == "true"

	products := h.fetchProducts(r.Context(), search, categoryIDs, minPrice, maxPrice)

	preds := []listing.Predicate[domain.Product]{
		listing.ProductSearch(search),
		listing.ProductCategories(categoryIDs),
		listing.ProductPriceRange(minPrice, maxPrice),
	}
	if trendingOnly {
		preds = append(preds, listing.ProductTrending())
	}

	query := listing.Query[domain.Product]{
		Predicates: preds,
		Less:       listing.ProductSort(q.Get("sort")),
		Params:     pagination.FromRequest(r),
	}

	result := query.Apply(products)
	for i := range result.Data {
		result.Data[i].Thumbnail = h.images.Resolve(result.Data[i].Thumbnail)
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(result))
}

// fetchProducts picks the backend endpoint that best narrows the working
// set: text search when a term is present, the filter endpoint when price or
// category constraints exist, the plain listing otherwise. Failures log a
// warning and yield an empty set.
func (h *CatalogHandler) fetchProducts(ctx context.Context, search string, categoryIDs []string, minPrice, maxPrice *float64) []domain.Product {
	var (
		products []domain.Product
		err      error
	)

	switch {
	case search != "":
		products, err = h.backend.SearchProducts(ctx, search)
	case len(categoryIDs) > 0 || minPrice != nil || maxPrice != nil:
		products, err = h.backend.FilterProducts(ctx, backend.ProductFilter{
			CategoryIDs: categoryIDs,
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
		})
	default:
		products, err = h.backend.ListProducts(ctx, 1)
	}

	if err != nil {
		h.logger.WarnContext(ctx, "product fetch failed, serving empty listing",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return products
}

// GetProduct serves GET /api/v1/products/{id}. Unlike listings, a detail
// page has nothing sensible to degrade to, so errors propagate.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("product id is required"), h.logger)
		return
	}

	product, err := h.backend.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	product.Thumbnail = h.images.Resolve(product.Thumbnail)
	for i := range product.Gallery {
		product.Gallery[i] = h.images.Resolve(product.Gallery[i])
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(product))
}

// ListCategories serves GET /api/v1/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.backend.ListCategories(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "category fetch failed, serving empty list",
			slog.String("error", err.Error()),
		)
		categories = []domain.Category{}
	}

	for i := range categories {
		categories[i].Image = h.images.Resolve(categories[i].Image)
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(categories))
}

// ListArtists serves GET /api/v1/artists with search, category, experience
// range, sort, and pagination params.
func (h *CatalogHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	artists, err := h.backend.ListArtists(r.Context(), 1)
	if err != nil {
		h.logger.WarnContext(r.Context(), "artist fetch failed, serving empty listing",
			slog.String("error", err.Error()),
		)
		artists = nil
	}

	query := listing.Query[domain.Artist]{
		Predicates: []listing.Predicate[domain.Artist]{
			listing.ArtistSearch(q.Get("q")),
			listing.ArtistCategories(splitParam(q.Get("categories"))),
			listing.ArtistExperienceRange(intParam(q, "min_experience"), intParam(q, "max_experience")),
		},
		Less:   listing.ArtistSort(q.Get("sort")),
		Params: pagination.FromRequest(r),
	}

	result := query.Apply(artists)
	for i := range result.Data {
		result.Data[i].ProfileImage = h.images.Resolve(result.Data[i].ProfileImage)
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(result))
}

// GetArtist serves GET /api/v1/artists/{id}.
func (h *CatalogHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("artist id is required"), h.logger)
		return
	}

	artist, err := h.backend.ArtistDetails(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	artist.ProfileImage = h.images.Resolve(artist.ProfileImage)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(artist))
}

// ListCourses serves GET /api/v1/courses with search, category, level,
// price range, sort, and pagination params.
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	courses, err := h.backend.ListCourses(r.Context(), 1)
	if err != nil {
		h.logger.WarnContext(r.Context(), "course fetch failed, serving empty listing",
			slog.String("error", err.Error()),
		)
		courses = nil
	}

	query := listing.Query[domain.Course]{
		Predicates: []listing.Predicate[domain.Course]{
			listing.CourseSearch(q.Get("q")),
			listing.CourseCategories(splitParam(q.Get("categories"))),
			listing.CourseLevels(splitParam(q.Get("levels"))),
			listing.CoursePriceRange(floatParam(q, "min_price"), floatParam(q, "max_price")),
		},
		Less:   listing.CourseSort(q.Get("sort")),
		Params: pagination.FromRequest(r),
	}

	result := query.Apply(courses)
	for i := range result.Data {
		result.Data[i].Thumbnail = h.images.Resolve(result.Data[i].Thumbnail)
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(result))
}

// GetCourse serves GET /api/v1/courses/{id}.
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("course id is required"), h.logger)
		return
	}

	course, err := h.backend.GetCourse(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	course.Thumbnail = h.images.Resolve(course.Thumbnail)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(course))
}

// ListEvents serves GET /api/v1/events with search, status, category, sort,
// and pagination params.
func (h *CatalogHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	events, err := h.backend.ListEvents(r.Context(), 1)
	if err != nil {
		h.logger.WarnContext(r.Context(), "event fetch failed, serving empty listing",
			slog.String("error", err.Error()),
		)
		events = nil
	}

	query := listing.Query[domain.Event]{
		Predicates: []listing.Predicate[domain.Event]{
			listing.EventSearch(q.Get("q")),
			listing.EventStatuses(splitParam(q.Get("statuses"))),
			listing.EventCategories(splitParam(q.Get("categories"))),
		},
		Less:   listing.EventSort(q.Get("sort")),
		Params: pagination.FromRequest(r),
	}

	result := query.Apply(events)
	for i := range result.Data {
		result.Data[i].Image = h.images.Resolve(result.Data[i].Image)
		result.Data[i].Banner = h.images.Resolve(result.Data[i].Banner)
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(result))
}

// GetEvent serves GET /api/v1/events/{id}.
func (h *CatalogHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("event id is required"), h.logger)
		return
	}

	event, err := h.backend.GetEvent(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	event.Image = h.images.Resolve(event.Image)
	event.Banner = h.images.Resolve(event.Banner)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(event))
}

// --- query param helpers ---

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func floatParam(q map[string][]string, name string) *float64 {
	vals := q[name]
	if len(vals) == 0 || vals[0] == "" {
		return nil
	}
	f, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return nil
	}
	return &f
}

func intParam(q map[string][]string, name string) *int {
	vals := q[name]
	if len(vals) == 0 || vals[0] == "" {
		return nil
	}
	n, err := strconv.Atoi(vals[0])
	if err != nil {
		return nil
	}
	return &n
}
