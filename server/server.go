// Package server is the HTTP surface of the search API. Handlers validate
// input, consult the response cache, call the provider clients, and run the
// result set through the filter/sort engine before responding.
package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"globehunters/activities"
	"globehunters/config"
	"globehunters/currency"
	"globehunters/providers"
	"globehunters/services"
	"globehunters/storage"
)

const (
	flightCacheTTL   = 5 * time.Minute
	activityCacheTTL = 1 * time.Hour
)

type Server struct {
	cfg      *config.Config
	flights  *providers.DuffelClient
	hotels   *providers.RateHawkClient
	klook    *activities.KlookClient
	packages *services.PackageService
	cache    storage.Cache
	rates    currency.RateProvider
}

func New(
	cfg *config.Config,
	flights *providers.DuffelClient,
	hotels *providers.RateHawkClient,
	klook *activities.KlookClient,
	packages *services.PackageService,
	cache storage.Cache,
	rates currency.RateProvider,
) *Server {
	return &Server{
		cfg:      cfg,
		flights:  flights,
		hotels:   hotels,
		klook:    klook,
		packages: packages,
		cache:    cache,
		rates:    rates,
	}
}

// Router builds the gin engine with CORS and all /api routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies(nil)

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	for _, u := range strings.Split(s.cfg.FrontendURL, ",") {
		if u = strings.TrimSpace(u); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/search/flights", s.handleFlightSearch)
		api.GET("/search/hotels", s.handleHotelSearch)
		api.GET("/search/hotels/:id", s.handleHotelDetail)
		api.GET("/search/packages", s.handlePackageSearch)
		api.GET("/search/activities", s.handleActivitySearch)
		api.GET("/price/quote", s.handlePriceQuote)
	}

	return r
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	log.Printf("Search API listening on %s", addr)
	return s.Router().Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"flights": s.flights.Configured(),
		"hotels":  s.hotels.Configured(),
	})
}

// detectCurrency applies the param > cookie > geo-country chain.
func detectCurrency(c *gin.Context) string {
	cookie, _ := c.Cookie("currency")
	return string(currency.Detect(c.Query("currency"), cookie, c.GetHeader("CF-IPCountry")))
}
