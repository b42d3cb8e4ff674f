package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/health"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/middleware"
)

// Deps bundles everything the router needs.
type Deps struct {
	ServiceName    string
	Catalog        *CatalogHandler
	Cart           *CartHandler
	Wishlist       *WishlistHandler
	Auth           *AuthHandler
	Admin          *AdminHandler
	Sessions       *store.SessionStore
	Health         *health.Handler
	RateLimiter    *RateLimiter
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter creates the chi router with all storefront routes registered.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	if len(d.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = d.AllowedOrigins
	}

	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(d.Logger))
	r.Use(middleware.Tracing(d.ServiceName))
	r.Use(middleware.PrometheusMetrics(d.ServiceName))
	r.Use(middleware.RequestLogger(d.Logger))
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware)
	}

	r.Get("/health/live", d.Health.LivenessHandler())
	r.Get("/health/ready", d.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(SessionMiddleware(d.Sessions))

		// Browsing surface. Short cache headers keep repeated listing hits
		// off the backend.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(60))

			r.Get("/products", d.Catalog.ListProducts)
			r.Get("/products/{id}", d.Catalog.GetProduct)
			r.Get("/categories", d.Catalog.ListCategories)
			r.Get("/artists", d.Catalog.ListArtists)
			r.Get("/artists/{id}", d.Catalog.GetArtist)
			r.Get("/courses", d.Catalog.ListCourses)
			r.Get("/courses/{id}", d.Catalog.GetCourse)
			r.Get("/events", d.Catalog.ListEvents)
			r.Get("/events/{id}", d.Catalog.GetEvent)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", d.Cart.GetCart)
			r.Post("/items", d.Cart.AddItem)
			r.Put("/items/{id}", d.Cart.UpdateItem)
			r.Delete("/items/{id}", d.Cart.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", d.Wishlist.GetWishlist)
			r.Post("/items", d.Wishlist.SaveItem)
			r.Delete("/items/{productId}", d.Wishlist.RemoveItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", d.Auth.Login)
			r.Post("/verify", d.Auth.Verify)
			r.Post("/logout", d.Auth.Logout)
			r.Post("/register", d.Auth.Register)
			r.Get("/me", d.Auth.Me)
		})
	})

	// Dashboard surface: bearer auth with role gating. The backend still
	// authorizes every forwarded call.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(middleware.Auth(SessionTokenValidator()))
		r.Use(middleware.RequireRole(domain.RoleAdmin))

		r.Post("/products", d.Admin.CreateProduct)
		r.Put("/products/{id}", d.Admin.UpdateProduct)
		r.Delete("/products/{id}", d.Admin.DeleteProduct)

		r.Post("/categories", d.Admin.CreateCategory)
		r.Put("/categories/{id}", d.Admin.UpdateCategory)
		r.Delete("/categories/{id}", d.Admin.DeleteCategory)

		r.Post("/artists", d.Admin.CreateArtist)
		r.Put("/artists/{id}", d.Admin.UpdateArtist)
		r.Delete("/artists/{id}", d.Admin.DeleteArtist)

		r.Post("/courses", d.Admin.CreateCourse)
		r.Put("/courses/{id}", d.Admin.UpdateCourse)
		r.Delete("/courses/{id}", d.Admin.DeleteCourse)

		r.Post("/events", d.Admin.CreateEvent)
		r.Put("/events/{id}", d.Admin.UpdateEvent)
		r.Delete("/events/{id}", d.Admin.DeleteEvent)
	})

	return r
}
