package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globehunters/currency"
	"globehunters/models"
	"globehunters/pricing"
)

// handlePriceQuote serves GET /api/price/quote: the package price breakdown
// for component prices the client already holds. Component prices arrive in
// `from` currency (default GBP) and are converted to the display currency
// before aggregation. Missing flight or hotel prices propagate as null
// totals rather than estimates.
func (s *Server) handlePriceQuote(c *gin.Context) {
	flightPrice := queryFloatPtr(c, "flightPrice")
	hotelPrice := queryFloatPtr(c, "hotelPrice")
	activityTotal := 0.0
	if v := queryFloatPtr(c, "activityTotal"); v != nil {
		activityTotal = *v
	}

	cur := models.Currency(detectCurrency(c))
	from := models.Currency(c.DefaultQuery("from", string(models.GBP)))
	if !from.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported source currency"})
		return
	}

	if from != cur {
		if flightPrice != nil {
			v := currency.Convert(s.rates, *flightPrice, from, cur)
			flightPrice = &v
		}
		if hotelPrice != nil {
			v := currency.Convert(s.rates, *hotelPrice, from, cur)
			hotelPrice = &v
		}
		activityTotal = currency.Convert(s.rates, activityTotal, from, cur)
	}

	breakdown := pricing.CalculateTotalPrice(pricing.Input{
		FlightPrice:   flightPrice,
		HotelPrice:    hotelPrice,
		ActivityTotal: activityTotal,
		Nights:        queryInt(c, "nights", 0),
		Adults:        queryInt(c, "adults", 0),
	})

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"data":     breakdown,
		"currency": string(cur),
	})
}
