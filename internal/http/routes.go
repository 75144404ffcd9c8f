package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Soil         *service.SoilService
	Distributors *service.DistributorService
	Auth         *service.AuthService
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
//
// Browsing routes under /api require any authenticated session. Publishing
// routes under /api/admin require a resolved admin session; there is no
// role ordering between farmer and admin.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	soilHandlers := &SoilHandlers{Svc: services.Soil}
	distributorHandlers := &DistributorHandlers{Svc: services.Distributors}
	dashboardHandlers := &DashboardHandlers{Soil: services.Soil, Distributors: services.Distributors}
	authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}

	authed := func(h http.Handler) http.Handler {
		return RequireAuth(services.Auth)(h)
	}
	adminOnly := func(h http.Handler) http.Handler {
		return RequireRole(services.Auth, domainauth.RoleAdmin)(h)
	}

	registerBrowseRoutes(mux, browseHandlers{
		Soil:         soilHandlers,
		Distributors: distributorHandlers,
		Dashboard:    dashboardHandlers,
	}, authed)
	registerAdminSoilRoutes(mux, soilHandlers, adminOnly)
	registerAdminDistributorRoutes(mux, distributorHandlers, adminOnly)
	registerAuthRoutes(mux, authHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

// browseHandlers groups the handlers behind the shared authenticated-read
// middleware (≤3 params rule).
type browseHandlers struct {
	Soil         *SoilHandlers
	Distributors *DistributorHandlers
	Dashboard    *DashboardHandlers
}

func registerBrowseRoutes(mux *http.ServeMux, h browseHandlers, mw func(http.Handler) http.Handler) {
	mux.Handle("GET /api/soil", mw(http.HandlerFunc(h.Soil.List)))
	mux.Handle("GET /api/soil/{id}", mw(http.HandlerFunc(h.Soil.GetByID)))
	mux.Handle("GET /api/distributors", mw(http.HandlerFunc(h.Distributors.List)))
	mux.Handle("GET /api/distributors/{id}", mw(http.HandlerFunc(h.Distributors.GetByID)))
	mux.Handle("GET /api/overview", mw(http.HandlerFunc(h.Dashboard.Overview)))
}

func registerAdminSoilRoutes(mux *http.ServeMux, h *SoilHandlers, mw func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/soil",
		Create:     h.Create,
		List:       h.ListOwn,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: mw,
	})
}

func registerAdminDistributorRoutes(mux *http.ServeMux, h *DistributorHandlers, mw func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/distributors",
		Create:     h.Create,
		List:       h.ListOwn,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: mw,
	})
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /auth/signup", h.SignUp)
	mux.HandleFunc("POST /auth/signin", h.SignIn)
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// crudRoutes describes the standard handler set registered under a base path.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
