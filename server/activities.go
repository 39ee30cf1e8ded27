package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globehunters/models"
)

// handleActivitySearch serves GET /api/search/activities. Results are
// cached for an hour per destination+currency; activities without a usable
// image are dropped here, after the cache, so the cached set stays raw.
func (s *Server) handleActivitySearch(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: destination"})
		return
	}

	cur := detectCurrency(c)
	limit := queryInt(c, "limit", 10)
	if limit <= 0 || limit > 20 {
		limit = 10
	}

	ctx := c.Request.Context()
	key := fmt.Sprintf("activities:%s-%s-%d", strings.ToLower(destination), cur, limit)

	var acts []models.Activity
	if data, ok := s.cache.Get(ctx, key); ok {
		if err := json.Unmarshal(data, &acts); err != nil {
			acts = nil
		}
	}
	if acts == nil {
		acts = s.klook.Search(ctx, destination, models.Currency(cur), limit)
		if data, err := json.Marshal(acts); err == nil {
			s.cache.Set(ctx, key, data, activityCacheTTL)
		}
	}

	withImages := make([]models.Activity, 0, len(acts))
	for i := range acts {
		if acts[i].HasImage() {
			withImages = append(withImages, acts[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": withImages,
		"meta": gin.H{
			"total":    len(withImages),
			"currency": cur,
			"searchParams": gin.H{
				"destination": destination,
				"startDate":   c.Query("startDate"),
				"endDate":     c.Query("endDate"),
				"adults":      queryInt(c, "adults", 2),
			},
		},
	})
}
