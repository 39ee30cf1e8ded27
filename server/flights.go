package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"globehunters/models"
	"globehunters/providers"
	"globehunters/search"
)

// handleFlightSearch serves GET /api/search/flights. The upstream response
// is cached for five minutes keyed by the full query; filters and sort run
// on every request so refinement never re-hits the provider.
func (s *Server) handleFlightSearch(c *gin.Context) {
	origin := strings.ToUpper(c.Query("origin"))
	destination := strings.ToUpper(c.Query("destination"))
	departureDate := c.Query("departureDate")

	if origin == "" || destination == "" || departureDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: origin, destination, departureDate",
		})
		return
	}

	cur := detectCurrency(c)
	q := providers.FlightQuery{
		Origin:            origin,
		Destination:       destination,
		DepartureDate:     departureDate,
		ReturnDate:        c.Query("returnDate"),
		Adults:            queryInt(c, "adults", 1),
		Children:          queryInt(c, "children", 0),
		ChildAges:         parseChildAges(c.Query("childAges")),
		Currency:          models.Currency(cur),
		CabinClass:        c.DefaultQuery("cabinClass", "economy"),
		DirectFlightsOnly: queryBool(c, "directFlightsOnly"),
	}

	if !s.flights.Configured() {
		log.Println("[FlightSearch] Duffel token not configured")
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.FlightOffer{}, "totalResults": 0,
			"currency": cur, "message": "Flight search service unavailable",
		})
		return
	}

	flights, fromCache, message := s.cachedFlightSearch(c, q)

	flights = search.FilterFlights(flights, flightFilterFromQuery(c))
	search.SortFlights(flights, search.FlightSortKey(c.DefaultQuery("sort", "best")), search.DefaultFlightWeights)

	resp := gin.H{
		"status": true, "data": flights, "totalResults": len(flights), "currency": cur,
	}
	if fromCache {
		resp["fromCache"] = true
	}
	if message != "" {
		resp["message"] = message
	}
	c.JSON(http.StatusOK, resp)
}

// cachedFlightSearch returns the unfiltered offer set for a query, serving
// from cache when fresh. Provider failure yields an empty set plus a
// user-facing message, never an error status.
func (s *Server) cachedFlightSearch(c *gin.Context, q providers.FlightQuery) (flights []models.FlightOffer, fromCache bool, message string) {
	ctx := c.Request.Context()
	key := q.CacheKey()

	if data, ok := s.cache.Get(ctx, key); ok {
		if err := json.Unmarshal(data, &flights); err == nil {
			return flights, true, ""
		}
	}

	flights, err := s.flights.SearchFlights(ctx, q)
	if err != nil {
		log.Printf("[FlightSearch] search failed: %v", err)
		return nil, false, err.Error()
	}

	if data, err := json.Marshal(flights); err == nil {
		s.cache.Set(ctx, key, data, flightCacheTTL)
	}
	return flights, false, ""
}

func flightFilterFromQuery(c *gin.Context) search.FlightFilter {
	return search.FlightFilter{
		Airlines:        queryCSVUpper(c, "airlines"),
		Stops:           queryCSVInts(c, "stops"),
		MinPrice:        queryFloatPtr(c, "minPrice"),
		MaxPrice:        queryFloatPtr(c, "maxPrice"),
		MaxDuration:     queryIntPtr(c, "maxDuration"),
		DepartureAfter:  queryIntPtr(c, "departureAfter"),
		DepartureBefore: queryIntPtr(c, "departureBefore"),
		CabinBaggage:    queryBool(c, "cabinBaggage"),
		CheckedBaggage:  queryBool(c, "checkedBaggage"),
	}
}

func parseChildAges(param string) []int {
	if param == "" {
		return nil
	}
	var ages []int
	for _, p := range strings.Split(param, ",") {
		if age, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			ages = append(ages, age)
		}
	}
	return ages
}
