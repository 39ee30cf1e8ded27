package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globehunters/models"
	"globehunters/search"
	"globehunters/services"
)

// handlePackageSearch serves GET /api/search/packages. Origin and
// destination are checked against the configured allow-lists before any
// upstream call is made.
func (s *Server) handlePackageSearch(c *gin.Context) {
	origin := strings.ToUpper(c.DefaultQuery("origin", "LHR"))
	destination := c.Query("destination")
	departureDate := c.Query("departureDate")
	returnDate := c.Query("returnDate")

	if destination == "" || departureDate == "" || returnDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: destination, departureDate, returnDate",
		})
		return
	}

	if !s.cfg.Destinations.ValidUKAirport(origin) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Origin must be a supported UK airport",
		})
		return
	}
	dest, ok := s.cfg.Destinations.ResolveDestination(destination)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Destination is not available for packages",
		})
		return
	}

	cur := detectCurrency(c)
	adults := queryInt(c, "adults", 2)
	children := queryInt(c, "children", 0)
	rooms := queryInt(c, "rooms", 1)

	result, err := s.packages.Search(c.Request.Context(), services.PackageQuery{
		Origin:        origin,
		Destination:   dest.Name,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Adults:        adults,
		Children:      children,
		Rooms:         rooms,
		Currency:      models.Currency(cur),
	})
	if err != nil {
		log.Printf("[PackageSearch] search failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.PackageOffer{}, "totalResults": 0,
			"currency": cur, "message": "Package search failed, please try again",
		})
		return
	}

	if result.Message != "" {
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.PackageOffer{}, "totalResults": 0,
			"currency": cur, "message": result.Message,
		})
		return
	}

	packages := search.FilterPackages(result.Packages, packageFilterFromQuery(c))
	search.SortPackages(packages, search.PackageSortKey(c.DefaultQuery("sort", "price")))

	resp := gin.H{
		"status":       true,
		"data":         packages,
		"totalResults": len(packages),
		"currency":     cur,
		"searchParams": gin.H{
			"origin":        origin,
			"destination":   dest.Name,
			"departureDate": departureDate,
			"returnDate":    returnDate,
			"adults":        adults,
			"children":      children,
			"rooms":         rooms,
		},
	}
	if result.Region != nil {
		resp["destination"] = gin.H{
			"id":      result.Region.ID,
			"name":    result.Region.Name,
			"country": result.Region.Country,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func packageFilterFromQuery(c *gin.Context) search.PackageFilter {
	return search.PackageFilter{
		MaxPricePerPerson: queryFloatPtr(c, "maxPricePerPerson"),
		MinStars:          queryIntPtr(c, "minStars"),
		MaxStops:          queryIntPtr(c, "maxStops"),
		FreeCancellation:  queryBool(c, "freeCancellation"),
	}
}
