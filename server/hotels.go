package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"globehunters/models"
	"globehunters/providers"
	"globehunters/search"
)

const hotelPageSize = 20

// handleHotelSearch serves GET /api/search/hotels with page-based slicing
// of the filtered, sorted result set.
func (s *Server) handleHotelSearch(c *gin.Context) {
	destination := c.Query("destination")
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	if destination == "" || checkIn == "" || checkOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: destination, checkIn, checkOut",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	cur := detectCurrency(c)
	if !s.hotels.Configured() {
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.HotelOffer{}, "totalResults": 0,
			"currency": cur, "message": "Hotel search service unavailable",
		})
		return
	}

	ctx := c.Request.Context()
	region, err := s.hotels.SearchRegion(ctx, destination)
	if err != nil {
		log.Printf("[HotelSearch] region lookup failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.HotelOffer{}, "totalResults": 0,
			"currency": cur, "message": "Hotel search failed, please try again",
		})
		return
	}
	if region == nil {
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.HotelOffer{}, "totalResults": 0,
			"currency": cur,
			"message":  "No hotels found for destination: " + destination + ". Please try a different search term.",
		})
		return
	}

	q := providers.HotelQuery{
		Destination: destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      queryInt(c, "adults", 2),
		Children:    queryInt(c, "children", 0),
		Rooms:       queryInt(c, "rooms", 1),
		Currency:    models.Currency(cur),
	}
	hotels, err := s.hotels.SearchHotels(ctx, region, q)
	if err != nil {
		log.Printf("[HotelSearch] search failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status": true, "data": []models.HotelOffer{}, "totalResults": 0,
			"currency": cur, "message": "Hotel search failed, please try again",
		})
		return
	}

	hotels = search.FilterHotels(hotels, hotelFilterFromQuery(c))
	search.SortHotels(hotels, search.HotelSortKey(c.DefaultQuery("sort", "topPicks")), search.DefaultHotelWeights)

	total := len(hotels)
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	start := (page - 1) * hotelPageSize
	if start > total {
		start = total
	}
	end := start + hotelPageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         true,
		"data":           hotels[start:end],
		"totalResults":   end - start,
		"totalAvailable": total,
		"hasMore":        end < total,
		"page":           page,
		"currency":       cur,
		"destination": gin.H{
			"id":      region.ID,
			"name":    region.Name,
			"country": region.Country,
		},
		"checkIn":  checkIn,
		"checkOut": checkOut,
	})
}

func hotelFilterFromQuery(c *gin.Context) search.HotelFilter {
	return search.HotelFilter{
		Stars:            queryCSVInts(c, "stars"),
		MinPricePerNight: queryFloatPtr(c, "minPrice"),
		MaxPricePerNight: queryFloatPtr(c, "maxPrice"),
		FreeCancellation: queryBool(c, "freeCancellation"),
		PopularFilters:   queryCSV(c, "popularFilters"),
		RoomAmenities:    queryCSV(c, "roomAmenities"),
		MinReviewScore:   queryFloatPtr(c, "minReviewScore"),
		PropertyTypes:    queryCSV(c, "propertyTypes"),
	}
}

// handleHotelDetail serves GET /api/search/hotels/:id.
func (s *Server) handleHotelDetail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing hotel id"})
		return
	}

	detail, err := s.hotels.GetHotelDetail(c.Request.Context(), id)
	if err != nil {
		log.Printf("[HotelDetail] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Hotel lookup failed, please try again"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "data": detail})
}
