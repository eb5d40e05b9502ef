package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lounge-scheduler/internal/handler/api"
	"lounge-scheduler/internal/handler/middleware"
	"lounge-scheduler/internal/pkg/config"
	"lounge-scheduler/internal/telemetry"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Machines      *api.MachineHandler
	Bookings      *api.BookingHandler
	Offers        *api.OfferHandler
	Subscriptions *api.SubscriptionHandler
	Reports       *api.ReportHandler
}

func NewHandlers(
	machines *api.MachineHandler,
	bookings *api.BookingHandler,
	offers *api.OfferHandler,
	subscriptions *api.SubscriptionHandler,
	reports *api.ReportHandler,
) Handlers {
	return Handlers{
		Machines:      machines,
		Bookings:      bookings,
		Offers:        offers,
		Subscriptions: subscriptions,
		Reports:       reports,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *telemetry.Metrics, h Handlers) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, cfg, metrics, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *telemetry.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, metrics *telemetry.Metrics, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RateLimiter(cfg.RateLimit))
	{
		addRoutes(apiGroup.Group("/machines"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Machines.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Machines.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Machines.Get},
			{Method: http.MethodPost, Path: "/:id/transitions", Handler: h.Machines.Transition},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Machines.Bookings},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
			{Method: http.MethodPost, Path: "/:id/begin", Handler: h.Bookings.Begin},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Bookings.Complete},
		})

		addRoutes(apiGroup.Group("/offers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Offers.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Offers.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Offers.Get},
			{Method: http.MethodPost, Path: "/:id/revoke", Handler: h.Offers.Revoke},
		})

		addRoutes(apiGroup.Group("/subscriptions"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Subscriptions.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Subscriptions.Get},
			{Method: http.MethodPost, Path: "/:id/renew", Handler: h.Subscriptions.Renew},
			{Method: http.MethodPost, Path: "/:id/evaluate", Handler: h.Subscriptions.Evaluate},
			{Method: http.MethodGet, Path: "/:id/notifications", Handler: h.Subscriptions.Notifications},
		})

		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodPost, Path: "/:id/read", Handler: h.Subscriptions.MarkRead},
		})

		addRoutes(apiGroup.Group("/reports"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reports.Generate},
			{Method: http.MethodGet, Path: "/range", Handler: h.Reports.GenerateRange},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
