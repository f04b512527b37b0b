package http

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "finboard/internal/errors"
)

// tickerPattern matches an upstream ticker key, "$" prefix optional in the
// URL (it is added back before the service call).
var tickerPattern = regexp.MustCompile(`^\$?[A-Z][A-Z0-9.]{0,9}$`)

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetDashboard)
	r.Route("/{ticker}", func(r chi.Router) {
		r.Use(h.TickerCtx)
		r.Get("/", h.GetCompanyDashboard)
	})

	return r
}

// TickerCtx validates the ticker URL parameter.
func (h *DashboardHandler) TickerCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := chi.URLParam(r, "ticker")
		if ticker == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("ticker", "Ticker symbol is required"))
			return
		}
		if !tickerPattern.MatchString(ticker) {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("ticker", "Invalid ticker symbol format"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetDashboard handles GET /api/dashboard: every configured company.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboards, err := h.service.LoadAll(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, dashboards)
}

// GetCompanyDashboard handles GET /api/dashboard/{ticker}.
func (h *DashboardHandler) GetCompanyDashboard(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	if !strings.HasPrefix(ticker, "$") {
		ticker = "$" + ticker
	}

	h.logger.DebugContext(r.Context(), "serving company dashboard",
		slog.String("ticker", ticker))

	render.JSON(w, r, h.service.CompanyDashboard(r.Context(), ticker))
}

// CompaniesHandler serves the configured company list.
type CompaniesHandler struct {
	service DashboardServiceInterface
}

// NewCompaniesHandler creates a new companies handler.
func NewCompaniesHandler(service DashboardServiceInterface) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// Routes returns the company routes.
func (h *CompaniesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetCompanies)
	return r
}

// GetCompanies handles GET /api/companies.
func (h *CompaniesHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Companies())
}
