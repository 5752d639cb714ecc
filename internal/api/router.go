package api

import (
	"net/http"

	"github.com/0xIG/article-crud/internal/api/handlers"
	"github.com/0xIG/article-crud/internal/api/middleware"
	"github.com/0xIG/article-crud/internal/cache"
	"github.com/0xIG/article-crud/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, responseCache *cache.ResponseCache) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	articleHandler := handlers.NewArticleHandler(services.Article, services.Auth, responseCache)

	// Public auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
	})

	r.Route("/article", func(r chi.Router) {
		// Public reads
		r.Get("/list", articleHandler.List)
		r.With(responseCache.Middleware).Get("/{id}", articleHandler.Get)

		// Protected mutations
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Post("/", articleHandler.Create)
			r.Patch("/{id}", articleHandler.Edit)
			r.Delete("/{id}", articleHandler.Delete)
		})
	})

	return r
}
