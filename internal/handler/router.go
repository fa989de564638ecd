package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
	"storefront/internal/telemetry"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	restockHandler *api.RestockHandler,
	favoriteHandler *api.FavoriteHandler,
	shippingHandler *api.ShippingHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, metrics, checkoutHandler, orderHandler, restockHandler, favoriteHandler, shippingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	metrics *telemetry.Metrics,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	restockHandler *api.RestockHandler,
	favoriteHandler *api.FavoriteHandler,
	shippingHandler *api.ShippingHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Create},
		})

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/lookup", Handler: orderHandler.LookupByPhone},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: orderHandler.SetStatus},
				{Method: http.MethodPost, Path: "/:id/dispatch", Handler: orderHandler.Dispatch},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/restock-subscriptions", Handler: restockHandler.Subscribe},
			{Method: http.MethodPost, Path: "/products/:id/restock", Handler: restockHandler.NotifyRestock},
			{Method: http.MethodGet, Path: "/shipping/quote", Handler: shippingHandler.Quote},
		})

		favorites := apiGroup.Group("/favorites")
		{
			addRoutes(favorites, []route{
				{Method: http.MethodPost, Path: "", Handler: favoriteHandler.Add},
				{Method: http.MethodGet, Path: "", Handler: favoriteHandler.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: favoriteHandler.Remove},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
