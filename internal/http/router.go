package http

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"pantry/internal/config"
	"pantry/internal/http/controller"
	"pantry/internal/http/middleware"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, registry *prometheus.Registry, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		requestid.New(),
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
	)
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}
	router.SetHTMLTemplate(parseTemplates())

	router.GET("/health", func(c *gin.Context) {
		c.Status(200)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	router.GET("/", handler.Page)
	ui := router.Group("/ui")
	ui.POST("/open", handler.OpenAdd)
	ui.POST("/edit", handler.OpenEdit)
	ui.POST("/close", handler.CloseModal)
	ui.POST("/submit", handler.Submit)
	ui.POST("/remove", handler.Remove)

	api := router.Group("/api/items")
	api.GET("", handler.ListItems)
	api.PUT("/:name", handler.UpsertItem)
	api.DELETE("/:name", handler.DeleteItem)
	api.POST("/publish", handler.PublishCommand)

	router.GET("/sse/:collection", handler.Events)

	return router
}
