package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishttp "github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/http"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/service"
	httpapi "github.com/GoSim-25-26J-441/doc-analysis-client/internal/api/http"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/api/http/middleware"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	UpstreamURL    string
	AllowedOrigins []string
	MaxUploadMB    int
	Controller     *service.Controller
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	if len(dep.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.UpstreamURL)
	healthHandler.RegisterRoutes(r)

	analysis := r.Group("/api/v1/analysis")
	analysishttp.New(dep.Controller, dep.MaxUploadMB).Register(analysis)

	return r
}
