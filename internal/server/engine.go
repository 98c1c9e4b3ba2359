package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	sloggin "github.com/samber/slog-gin"

	"github.com/hana-sre/cluster-manager/internal/middleware"
	"github.com/hana-sre/cluster-manager/pkg/checks"
	"github.com/hana-sre/cluster-manager/pkg/cluster"
	"github.com/hana-sre/cluster-manager/pkg/event"
	"github.com/hana-sre/cluster-manager/pkg/health"
	"github.com/hana-sre/cluster-manager/pkg/operations"
)

func GetEngine(
	logger *slog.Logger,
	basePath string,
	clusterHandler cluster.Handler,
	checksHandler checks.Handler,
	operationsHandler operations.Handler,
	eventHandler event.Handler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sloggin.New(logger))
	r.Use(middleware.CorrelationID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	redoc(router, basePath)

	router.GET("/health", health.Health)

	cluster.Routes(router, clusterHandler)
	checks.Routes(router, checksHandler)
	operations.Routes(router, operationsHandler)
	event.Routes(router, eventHandler)

	return r
}

func redoc(router *gin.RouterGroup, basePath string) {
	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: basePath,
		SpecURL:  "./swagger.yaml",
	}
	router.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
