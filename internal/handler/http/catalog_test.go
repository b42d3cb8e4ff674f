package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/images"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver() *images.Resolver {
	return images.New("https://cdn.test", "", "/static/placeholder.png")
}

// fakeCatalog serves scripted catalog data.
type fakeCatalog struct {
	products    []domain.Product
	productsErr error
	filtered    []domain.Product
	lastFilter  *backend.ProductFilter
	searched    []domain.Product
	categories  []domain.Category
	artists     []domain.Artist
	courses     []domain.Course
	events      []domain.Event
}

func (f *fakeCatalog) ListProducts(context.Context, int) ([]domain.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (f *fakeCatalog) SearchProducts(context.Context, string) ([]domain.Product, error) {
	return f.searched, nil
}

func (f *fakeCatalog) FilterProducts(_ context.Context, filter backend.ProductFilter) ([]domain.Product, error) {
	f.lastFilter = &filter
	return f.filtered, nil
}

func (f *fakeCatalog) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) ListArtists(context.Context, int) ([]domain.Artist, error) {
	return f.artists, nil
}

func (f *fakeCatalog) ArtistDetails(_ context.Context, id string) (*domain.Artist, error) {
	for i := range f.artists {
		if f.artists[i].ID == id {
			return &f.artists[i], nil
		}
	}
	return nil, fmt.Errorf("artist %s not found", id)
}

func (f *fakeCatalog) ListCourses(context.Context, int) ([]domain.Course, error) {
	return f.courses, nil
}

func (f *fakeCatalog) GetCourse(_ context.Context, id string) (*domain.Course, error) {
	return nil, fmt.Errorf("course %s not found", id)
}

func (f *fakeCatalog) ListEvents(context.Context, int) ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeCatalog) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	return nil, fmt.Errorf("event %s not found", id)
}

type listingEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Data       []json.RawMessage `json:"data"`
		TotalCount int               `json:"total_count"`
		TotalPages int               `json:"total_pages"`
		Page       int               `json:"page"`
		PerPage    int               `json:"per_page"`
	} `json:"data"`
}

func decodeListing(t *testing.T, rr *httptest.ResponseRecorder) listingEnvelope {
	t.Helper()
	var env listingEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func catalogProducts(n int) []domain.Product {
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{
			ID:    fmt.Sprintf("p%02d", i+1),
			Name:  fmt.Sprintf("Product %02d", i+1),
			Price: fmt.Sprintf("%d.00", (i+1)*10),
		}
	}
	return out
}

func TestListProducts_DesktopDefaultSixteenPerPage(t *testing.T) {
	h := NewCatalogHandler(&fakeCatalog{products: catalogProducts(20)}, newTestResolver(), newTestLogger())

	rr := httptest.NewRecorder()
	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	env := decodeListing(t, rr)
	assert.True(t, env.Success)
	assert.Len(t, env.Data.Data, 16)
	assert.Equal(t, 20, env.Data.TotalCount)
	assert.Equal(t, 2, env.Data.TotalPages)
}

func TestListProducts_SecondPageHoldsRemainder(t *testing.T) {
	h := NewCatalogHandler(&fakeCatalog{products: catalogProducts(20)}, newTestResolver(), newTestLogger())

	rr := httptest.NewRecorder()
	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products?page=2", nil))

	env := decodeListing(t, rr)
	assert.Len(t, env.Data.Data, 4)
	assert.Equal(t, 2, env.Data.Page)
}

func TestListProducts_MobileViewNinePerPage(t *testing.T) {
	h := NewCatalogHandler(&fakeCatalog{products: catalogProducts(20)}, newTestResolver(), newTestLogger())

	rr := httptest.NewRecorder()
	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products?view=mobile", nil))

	env := decodeListing(t, rr)
	assert.Len(t, env.Data.Data, 9)
	assert.Equal(t, 9, env.Data.PerPage)
}

func TestListProducts_BackendFailureDegradesToEmpty(t *testing.T) {
	h := NewCatalogHandler(&fakeCatalog{productsErr: assert.AnError}, newTestResolver(), newTestLogger())

	rr := httptest.NewRecorder()
	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	// Listing reads never fail the page; they serve an empty result set.
	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeListing(t, rr)
	assert.True(t, env.Success)
	assert.Empty(t, env.Data.Data)
}

func TestListProducts_PriceRangeUsesBackendFilter(t *testing.T) {
	fake := &fakeCatalog{
		filtered: []domain.Product{{ID: "in", Price: "699.00"}},
	}
	h := NewCatalogHandler(fake, newTestResolver(), newTestLogger())

	rr := httptest.NewRecorder()
	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products?min_price=500&max_price=750", nil))

	require.NotNil(t, fake.lastFilter)
	require.NotNil(t, fake.lastFilter.MinPrice)
	require.NotNil(t, fake.lastFilter.MaxPrice)
	assert.Equal(t, 500.0, *fake.lastFilter.MinPrice)
	assert.Equal(t, 750.0, *fake.lastFilter.MaxPrice)

	env := decodeListing(t, rr)
	assert.Equal(t, 1, env.Data.TotalCount)
}

func TestGetProduct_ResolvesImages(t *testing.T) {
	fake := &fakeCatalog{products: []domain.Product{
		{ID: "p1", Thumbnail: "thumbs/p1.png", Gallery: []string{"https://direct.example/g.png"}},
	}}
	h := NewCatalogHandler(fake, newTestResolver(), newTestLogger())

	r := chi.NewRouter()
	r.Get("/products/{id}", h.GetProduct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/p1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "https://cdn.test/thumbs/p1.png")
	assert.Contains(t, body, "https://direct.example/g.png", "direct URLs pass through")
}

func TestListCourses_LevelFilterAndPagination(t *testing.T) {
	courses := []domain.Course{
		{ID: "c1", Title: "Wheel Throwing", Level: domain.LevelBeginner},
		{ID: "c2", Title: "Glazing", Level: domain.LevelExpert},
		{ID: "c3", Title: "Hand Building", Level: domain.LevelBeginner},
	}
	h := NewCatalogHandler(&fakeCatalog{courses: courses}, newTestResolver(), newTestLogger())

	rr := httptest.NewRecorder()
	h.ListCourses(rr, httptest.NewRequest(http.MethodGet, "/api/v1/courses?levels=beginner", nil))

	env := decodeListing(t, rr)
	assert.Equal(t, 2, env.Data.TotalCount)
}
