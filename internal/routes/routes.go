package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"CRIME_JOURNAL_BACK-END/internal/handlers"
	"CRIME_JOURNAL_BACK-END/internal/middleware"
)

// Handlers groups the endpoint handlers mounted by SetupRoutes.
type Handlers struct {
	Profile *handlers.ProfileHandler
	Journal *handlers.CrimeJournalHandler
	Health  *handlers.HealthHandler
}

// Options toggles the optional surfaces. A nil Metrics disables both the
// middleware and the exposition endpoint.
type Options struct {
	Logger      zerolog.Logger
	Metrics     *middleware.Metrics
	Gatherer    prometheus.Gatherer
	MetricsPath string
	Swagger     bool
}

// SetupRoutes configures all application routes
func SetupRoutes(h Handlers, opts Options) http.Handler {
	router := mux.NewRouter()

	notFound := http.Handler(http.NotFoundHandler())
	methodNotAllowed := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware)
		notFound = opts.Metrics.Middleware(notFound)
		methodNotAllowed = opts.Metrics.Middleware(methodNotAllowed)
	}
	router.Use(middleware.Recover)
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = methodNotAllowed

	// Health check routes
	router.HandleFunc("/healthz", h.Health.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/livez", h.Health.LivenessCheck).Methods(http.MethodGet)
	router.HandleFunc("/readyz", h.Health.ReadinessCheck).Methods(http.MethodGet)

	// Profile routes
	router.HandleFunc("/profile", h.Profile.List).Methods(http.MethodGet)
	router.HandleFunc("/profile", h.Profile.Create).Methods(http.MethodPost)
	router.HandleFunc("/profile/{id}", h.Profile.Get).Methods(http.MethodGet)
	router.HandleFunc("/profile/{id}", h.Profile.Update).Methods(http.MethodPut)
	router.HandleFunc("/profile/{id}", h.Profile.Delete).Methods(http.MethodDelete)

	// Journal routes
	router.HandleFunc("/journal", h.Journal.List).Methods(http.MethodGet)
	router.HandleFunc("/journal", h.Journal.Create).Methods(http.MethodPost)
	router.HandleFunc("/journal/search/{query}", h.Journal.Search).Methods(http.MethodGet)
	router.HandleFunc("/journal/user/{profileId}", h.Journal.ListByProfile).Methods(http.MethodGet)
	router.HandleFunc("/journal/user/{profileId}", h.Journal.DeleteByProfile).Methods(http.MethodDelete)
	router.HandleFunc("/journal/{id}", h.Journal.Get).Methods(http.MethodGet)
	router.HandleFunc("/journal/{id}", h.Journal.Update).Methods(http.MethodPut)
	router.HandleFunc("/journal/{id}", h.Journal.Delete).Methods(http.MethodDelete)

	if opts.Metrics != nil && opts.Gatherer != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.Handle(path, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	if opts.Swagger {
		router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler).Methods(http.MethodGet)
	}

	// Root route
	router.HandleFunc("/", handlers.Root).Methods(http.MethodGet)

	return middleware.Logging(opts.Logger)(router)
}
