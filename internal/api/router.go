package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/api/handlers"
	"github.com/stitts-dev/cricket-sim/internal/api/middleware"
	"github.com/stitts-dev/cricket-sim/internal/fantasy"
	"github.com/stitts-dev/cricket-sim/internal/matchup"
	"github.com/stitts-dev/cricket-sim/internal/projection"
	"github.com/stitts-dev/cricket-sim/internal/push"
	"github.com/stitts-dev/cricket-sim/internal/refdata"
	"github.com/stitts-dev/cricket-sim/internal/services"
	"github.com/stitts-dev/cricket-sim/internal/simulator"
	"github.com/stitts-dev/cricket-sim/pkg/config"
	"github.com/stitts-dev/cricket-sim/pkg/random"
)

// Dependencies are the long-lived components the routes serve. Cache may be
// nil, and HealthChecks only lists dependencies that are configured.
type Dependencies struct {
	Store        *refdata.Store
	Cache        services.Cache
	Hub          *push.Hub
	Driver       *simulator.Driver
	FantasySrc   random.Source
	HealthChecks map[string]handlers.HealthCheck
	Logger       *logrus.Logger
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)
	router.GET("/health", healthHandler.GetHealth)

	wsHandler := handlers.NewWebSocketHandler(deps.Hub, cfg.CorsOrigins, deps.Logger)
	router.GET("/ws", wsHandler.HandleWebSocket)

	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	SetupRoutes(apiV1, cfg.CacheTTL, deps)

	return router
}

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, cacheTTL time.Duration, deps Dependencies) {
	referenceHandler := handlers.NewReferenceHandler(deps.Store)
	projectionHandler := handlers.NewProjectionHandler(projection.NewModel(deps.Store), deps.Cache, cacheTTL, deps.Logger)
	matchupHandler := handlers.NewMatchupHandler(matchup.NewAnalyzer(deps.Store), deps.Cache, cacheTTL, deps.Logger)
	fantasyHandler := handlers.NewFantasyHandler(fantasy.NewScorer(deps.Store, deps.FantasySrc))
	simulationHandler := handlers.NewSimulationHandler(deps.Driver, deps.Logger)

	// Reference data
	group.GET("/teams", referenceHandler.GetTeams)
	group.GET("/venues", referenceHandler.GetVenues)
	group.GET("/players", referenceHandler.GetPlayers)

	// Projections
	group.POST("/projections", projectionHandler.CreateProjection)

	// Matchups
	group.GET("/matchups", matchupHandler.GetMatchup)
	group.GET("/matchups/candidates", matchupHandler.GetCandidates)

	// Fantasy
	group.POST("/fantasy/score", fantasyHandler.ScoreTeam)

	// Live simulation
	sim := group.Group("/simulation")
	{
		sim.GET("", simulationHandler.GetState)
		sim.POST("/start", simulationHandler.Start)
		sim.POST("/pause", simulationHandler.Pause)
		sim.POST("/reset", simulationHandler.Reset)
	}
}
