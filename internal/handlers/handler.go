package handlers

import (
	"time"

	"github.com/dharavthjayanth/3D-Model/internal/logger"
	"github.com/dharavthjayanth/3D-Model/internal/metrics"
	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/service"

	"github.com/gin-gonic/gin"

	_ "github.com/dharavthjayanth/3D-Model/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options carries HTTP-level settings from configuration.
type Options struct {
	HistoryLimit   int      // default ?limit for /history
	AllowedOrigins []string // "*" allows any origin
}

// Handler wires HTTP layer to services, logging and metrics.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Metrics
	opts     Options
	now      func() time.Time
}

// NewHandler constructs a new HTTP handler with dependencies. log and m may be nil.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Metrics, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = service.DefaultHistoryLimit
	}
	return &Handler{services: services, log: log, metrics: m, opts: opts, now: time.Now}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.corsMiddleware, h.observeMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	router.GET("/health", h.health)

	h.registerUnitRoutes(router)
	h.registerCommandRoutes(router)

	return router
}

func (h *Handler) registerUnitRoutes(r *gin.Engine) {
	r.GET("/ac", h.listUnits)
	r.GET("/ac/:ac_id", h.getUnit)
	r.GET("/history/:ac_id", h.getHistory)
}

func (h *Handler) registerCommandRoutes(r *gin.Engine) {
	// Body example: {"user":"Admin","ac_id":"F1-AC1","action":"set_temp","value":22.5}
	r.POST("/command", h.applyCommand)
	// Body example: {"text":"turn off F1-AC2"}
	r.POST("/command/text", h.applyTextCommand)
	r.GET("/commands", h.listCommands)
}

// nowString is the wall-clock time in the tables' timestamp layout.
func (h *Handler) nowString() string {
	return h.now().Format(models.TimestampLayout)
}
