package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/middleware"
)

// Handlers groups the handlers mounted by the router
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Branch    *BranchHandler
	Employee  *EmployeeHandler
	Entry     *EntryHandler
	Dashboard *DashboardHandler
}

// RouterOptions tunes the middleware stack
type RouterOptions struct {
	CORSOrigins []string
	// LoginRateLimit is the number of login attempts allowed per IP per minute.
	LoginRateLimit int
}

// Router sets up the API routes
type Router struct {
	mux      *chi.Mux
	logger   *slog.Logger
	handlers Handlers
	tokens   middleware.TokenParser
	opts     RouterOptions
}

// NewRouter creates the router
func NewRouter(handlers Handlers, tokens middleware.TokenParser, opts RouterOptions, logger *slog.Logger) *Router {
	return &Router{
		mux:      chi.NewRouter(),
		logger:   logger,
		handlers: handlers,
		tokens:   tokens,
		opts:     opts,
	}
}

// Setup registers middleware and routes
func (r *Router) Setup() http.Handler {
	r.mux.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logger(r.logger),
		middleware.Recoverer(r.logger),
		middleware.SecureHeaders(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins: r.opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		middleware.ContentType,
	)

	fallback := newResponder(r.logger)
	r.mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		fallback.respondError(w, http.StatusNotFound, "not found", "")
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		fallback.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	h := r.handlers
	authenticate := middleware.Authenticate(r.tokens, r.logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	r.mux.Get("/", h.Health.Check)
	r.mux.Get("/health", h.Health.Check)

	r.mux.Route("/api", func(api chi.Router) {
		api.Get("/", h.Health.Check)

		api.With(r.loginLimiter()).Post("/auth/login", h.Auth.Login)

		api.Group(func(pr chi.Router) {
			pr.Use(authenticate)

			pr.Get("/auth/me", h.Auth.Me)
			pr.With(adminOnly).Post("/auth/register", h.Auth.Register)

			pr.Route("/branches", func(br chi.Router) {
				br.Get("/", h.Branch.List)
				br.With(adminOnly).Post("/", h.Branch.Create)
				br.With(adminOnly).Put("/{id}", h.Branch.Update)
				br.With(adminOnly).Delete("/{id}", h.Branch.Delete)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.List)
				er.With(adminOnly).Post("/", h.Employee.Create)
				er.With(adminOnly).Put("/{id}", h.Employee.Update)
				er.With(adminOnly).Delete("/{id}", h.Employee.Delete)
			})

			pr.Get("/sales", h.Entry.ListSales)
			pr.Post("/sales", h.Entry.RecordSale)
			pr.Get("/expenses", h.Entry.ListExpenses)
			pr.Post("/expenses", h.Entry.RecordExpense)
			pr.Get("/targets", h.Entry.GetTarget)
			pr.Put("/targets", h.Entry.SetTarget)

			pr.Get("/dashboard", h.Dashboard.Dashboard)
			pr.Get("/dashboard/history", h.Dashboard.History)
		})
	})

	return r.mux
}

func (r *Router) loginLimiter() func(http.Handler) http.Handler {
	limit := r.opts.LoginRateLimit
	if limit < 1 {
		limit = 10
	}

	fallback := newResponder(r.logger)
	return httprate.Limit(limit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
			fallback.respondError(w, http.StatusTooManyRequests, "too many login attempts", "")
		}),
	)
}
