package main

import (
	"context"
	"log"

	"globehunters/activities"
	"globehunters/config"
	"globehunters/currency"
	"globehunters/httputil"
	"globehunters/logging"
	"globehunters/providers"
	"globehunters/scheduler"
	"globehunters/server"
	"globehunters/services"
	"globehunters/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := logging.Setup(cfg.LogPath)
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Println("Starting globehunters search API...")
	log.Printf("Allow-lists: %d UK airports, %d package destinations",
		len(cfg.Destinations.UKAirports), len(cfg.Destinations.PackageDests))

	clients := httputil.NewClients()

	// Response cache: redis when configured, in-memory otherwise.
	var cache storage.Cache
	if cfg.Redis.URL != "" {
		redisCache, err := storage.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		cache = redisCache
		log.Println("Cache: redis")
	} else {
		cache = storage.NewMemoryCache()
		log.Println("Cache: in-memory")
	}

	flights := providers.NewDuffelClient(cfg.Duffel, clients)
	hotels := providers.NewRateHawkClient(cfg.RateHawk, clients)
	klook := activities.NewKlookClient(clients)
	packages := services.NewPackageService(flights, hotels)

	if !flights.Configured() {
		log.Println("Warning: DUFFEL_ACCESS_TOKEN not set, flight search disabled")
	}
	if !hotels.Configured() {
		log.Println("Warning: RATEHAWK_API_KEY not set, hotel search disabled")
	}

	rates := currency.NewLiveRates(clients.API)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(cfg, rates)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, flights, hotels, klook, packages, cache, rates)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
