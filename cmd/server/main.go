package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/config"
	"github.com/iliyamo/vehicle-workshop/internal/handler"
	"github.com/iliyamo/vehicle-workshop/internal/middleware"
	"github.com/iliyamo/vehicle-workshop/internal/queue"
	"github.com/iliyamo/vehicle-workshop/internal/repository"
	"github.com/iliyamo/vehicle-workshop/internal/router"
	queue_publisher "github.com/iliyamo/vehicle-workshop/internal/service"
	"github.com/iliyamo/vehicle-workshop/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env next to the binary

	cfg := config.Load()

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	accounts, err := repository.NewAccountRepo(cfg)
	if err != nil {
		log.Fatalf("build account table: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache and rate limit disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// Events are only wired when a broker URL is configured; the tracker is
	// fully functional without one, the boards just rely on the poll tick.
	var events handler.EventSink
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		events = func(ev queue.VehicleEvent) {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = queue_publisher.PublishVehicleEvent(ctx, ev)
			}()
		}
		go func() { _ = queue.StartVehicleEventsConsumer(rdb, cacheCfg.Prefix) }()
	}

	e := echo.New()
	a := handler.NewAuthHandler(cfg, accounts)
	v := handler.NewVehicleHandler(st, events)
	o := handler.NewOptionHandler(st)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, a, middleware.NewTokenBucket(rlCfg, rdb))
	router.RegisterAPI(e, a, v, o, cfg.SessionSecret, middleware.NewRedisCache(cacheCfg, rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, data=%s)", addr, cfg.Env, cfg.DataDir)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
