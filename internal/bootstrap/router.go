package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	adminhttp "github.com/bau-builds/gallery-api/internal/admin/http"
	adminmw "github.com/bau-builds/gallery-api/internal/admin/middleware"
	httpapi "github.com/bau-builds/gallery-api/internal/api/http"
	galleryhttp "github.com/bau-builds/gallery-api/internal/gallery/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	// DB is nil in degraded mode; health reports it as disabled.
	DB *pgxpool.Pool

	Gallery galleryhttp.Gallery

	// Access is nil in degraded mode; mutating routes then answer 503.
	Access adminmw.Verifier
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowedOrigins) == 1 && dep.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = dep.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Admin-Code")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	gate := []gin.HandlerFunc{adminmw.RateLimit(rate.Limit(1), 5)}
	if dep.Access != nil {
		gate = append(gate, adminmw.RequireAccessCode(dep.Access))
	} else {
		gate = append(gate, adminmw.NotConfigured())
	}

	api := r.Group("/api/v1")

	galleryHandler := galleryhttp.New(dep.Gallery)
	galleryHandler.Register(api.Group("/projects"), gate...)

	adminHandler := adminhttp.New(dep.Access)
	adminHandler.Register(api.Group("/admin"))

	return r
}
