package router

import (
	"net/http"

	mem "vetcalc/internal/adapters/storage/memory"
	"vetcalc/internal/adapters/storage/kvrepo"
	"vetcalc/internal/domain/dashboard"
	"vetcalc/internal/domain/drugs"
	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/vaccines"
	"vetcalc/internal/middleware"
	"vetcalc/internal/platform/logger"
	"vetcalc/internal/platform/metrics"
	"vetcalc/internal/ports/kvstore"

	_ "vetcalc/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultAppTag = "VetCalc v1.0"

type Options struct {
	// Opcional: si no viene, in-memory.
	Store kvstore.Store

	Logger  logger.Logger      // nil => descarta
	Metrics *metrics.Collector // nil => sin /metrics

	// Campo "app" del export.
	AppTag string

	// Opcionales: catálogos distintos a los de fábrica.
	Drugs    *drugs.Registry
	Vaccines *vaccines.Catalog
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics(opts.Metrics))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	store := opts.Store
	if store == nil {
		store = mem.NewKVStore()
	}

	registry := opts.Drugs
	if registry == nil {
		registry = drugs.DefaultRegistry()
	}
	catalog := opts.Vaccines
	if catalog == nil {
		catalog = vaccines.DefaultCatalog()
	}
	appTag := opts.AppTag
	if appTag == "" {
		appTag = defaultAppTag
	}

	// Services por módulo
	calc := drugs.NewCalculator(registry)
	historySvc := history.NewService(kvrepo.NewHistoryRepo(store), calc, opts.Metrics)
	vaccinesSvc := vaccines.NewService(kvrepo.NewVaccineRepo(store), catalog, opts.Metrics)
	dashboardSvc := dashboard.NewService(historySvc, vaccinesSvc, appTag, log)

	// Rutas por módulo
	drugs.RegisterRoutes(r, calc, opts.Metrics)
	history.RegisterRoutes(r, historySvc, opts.Metrics)
	vaccines.RegisterRoutes(r, vaccinesSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
