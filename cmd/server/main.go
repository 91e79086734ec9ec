package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ticketlane/ticket-orders/internal/config"
	"github.com/ticketlane/ticket-orders/internal/handler"
	"github.com/ticketlane/ticket-orders/internal/middleware"
	"github.com/ticketlane/ticket-orders/internal/queue"
	"github.com/ticketlane/ticket-orders/internal/render"
	"github.com/ticketlane/ticket-orders/internal/router"
	"github.com/ticketlane/ticket-orders/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	st, err := store.Open(store.Paths{
		Orders: cfg.OrderData,
		Games:  cfg.GameData,
		Seats:  cfg.SeatData,
	})
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	r, err := render.New()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	e := echo.New()
	e.Renderer = r
	e.Use(middleware.CORS())

	// Rate limiting and response caching are active only when Redis is
	// reachable; with a nil client both are pass-throughs.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	h := &handler.OrderHandler{Store: st, PublishEvents: cfg.EventsEnabled}
	router.RegisterRoutes(e, h)

	if cfg.RunConsumer {
		go func() {
			if err := queue.StartOrderConsumer(); err != nil {
				log.Printf("order consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, orders=%d)", addr, cfg.Env, st.OrderCount())

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
