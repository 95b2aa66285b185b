package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/api"
	"github.com/stitts-dev/cricket-sim/internal/api/handlers"
	"github.com/stitts-dev/cricket-sim/internal/push"
	"github.com/stitts-dev/cricket-sim/internal/refdata"
	"github.com/stitts-dev/cricket-sim/internal/services"
	"github.com/stitts-dev/cricket-sim/internal/simulator"
	"github.com/stitts-dev/cricket-sim/pkg/config"
	"github.com/stitts-dev/cricket-sim/pkg/database"
	"github.com/stitts-dev/cricket-sim/pkg/logger"
	"github.com/stitts-dev/cricket-sim/pkg/random"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.WithService("cricket-sim").WithFields(logrus.Fields{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Starting cricket projection service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthChecks := map[string]handlers.HealthCheck{}

	// Reference data, from Postgres when configured
	store := refdata.Default()
	if cfg.DatabaseURL != "" {
		db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment(), log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		store, err = refdata.NewRepository(db.DB).Load(ctx)
		if err != nil {
			log.Fatalf("Failed to load reference data: %v", err)
		}
		healthChecks["database"] = db.HealthCheck
	}
	log.WithFields(logrus.Fields{
		"teams":   len(store.Teams("")),
		"venues":  len(store.Venues()),
		"players": len(store.Players("")),
	}).Info("Reference data loaded")

	// Redis, optional
	var redisClient *redis.Client
	var cache services.Cache
	if cfg.RedisURL != "" {
		redisClient, err = initRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		cacheService := services.NewCacheService(redisClient)
		cache = cacheService
		healthChecks["redis"] = cacheService.Ping
	}

	// Initialize WebSocket hub
	hub := push.NewHub(log)
	go hub.Run(ctx.Done())

	// Live simulation, every delivery goes out on its own topic
	match := simulator.NewMatch(random.New(cfg.SimulationSeed), log)
	driver := simulator.NewDriver(match, cfg.SimulationTickInterval, func(d simulator.Delivery, snap simulator.Snapshot) {
		payload := gin.H{"delivery": d, "snapshot": snap}
		if err := hub.BroadcastToTopic(push.TopicLiveSimulation, "delivery", payload); err != nil {
			log.WithError(err).Warn("Failed to broadcast delivery")
		}
		if snap.State == simulator.StateCompleted {
			logger.WithMatchContext(snap.MatchID, string(snap.State)).WithFields(logrus.Fields{
				"score":   snap.Live.Score,
				"wickets": snap.Live.Wickets,
				"overs":   snap.OversDisplay,
			}).Info("Live simulation innings completed")
		}
	}, log)
	defer driver.Stop()

	// Push feed
	if cfg.PushEnabled {
		switch cfg.PushSource {
		case "redis":
			relay := push.NewRelay(redisClient, cfg.PushChannel, hub, log)
			go func() {
				if err := relay.Run(ctx); err != nil {
					log.WithError(err).Error("Match update relay stopped")
				}
			}()
		default:
			var publisher push.Publisher
			if redisClient != nil {
				publisher = push.NewRedisPublisher(redisClient, cfg.PushChannel, log)
			}
			emitter := push.NewEmitter(cfg.PushMatchID, cfg.PushInterval, hub, publisher, random.New(0), log)
			if err := emitter.Start(); err != nil {
				log.Fatalf("Failed to start push emitter: %v", err)
			}
			defer emitter.Stop()
		}
	}

	router := api.NewRouter(cfg, api.Dependencies{
		Store:        store,
		Cache:        cache,
		Hub:          hub,
		Driver:       driver,
		FantasySrc:   random.New(cfg.FantasySeed),
		HealthChecks: healthChecks,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server exited")
}

func initRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}
