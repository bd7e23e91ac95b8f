package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/archlens/landscape-backend/internal/api/http"
	"github.com/archlens/landscape-backend/internal/api/http/middleware"
	landhttp "github.com/archlens/landscape-backend/internal/landscape/http"
	"github.com/archlens/landscape-backend/internal/landscape/repository"
	"github.com/archlens/landscape-backend/internal/landscape/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	UpstreamURL string
	UpstreamRPS float64
	Burst       int
	Cache       *redis.Client
	SnapshotTTL time.Duration
}

func BuildRouter(dep RouterDeps) (*gin.Engine, *service.LandscapeService) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Cache)
	healthHandler.RegisterRoutes(r)

	var snapshots *repository.SnapshotRepository
	if dep.Cache != nil {
		snapshots = repository.NewSnapshotRepository(dep.Cache, dep.SnapshotTTL)
	}

	client := service.NewReviewClient(dep.UpstreamURL, dep.UpstreamRPS, dep.Burst)
	svc := service.NewLandscapeService(client, snapshots)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	landscape := api.Group("/landscape")
	landhttp.New(svc).Register(landscape)

	return r, svc
}
