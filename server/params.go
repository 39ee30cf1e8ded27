package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Query parameter parsing shared by the search handlers. Malformed numeric
// values are treated as absent rather than rejected; the required-parameter
// checks happen per handler.

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func queryIntPtr(c *gin.Context, key string) *int {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &i
}

func queryFloatPtr(c *gin.Context, key string) *float64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBool(c *gin.Context, key string) bool {
	return c.Query(key) == "true"
}

func queryCSV(c *gin.Context, key string) []string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func queryCSVInts(c *gin.Context, key string) []int {
	var out []int
	for _, p := range queryCSV(c, key) {
		if i, err := strconv.Atoi(p); err == nil {
			out = append(out, i)
		}
	}
	return out
}

func queryCSVUpper(c *gin.Context, key string) []string {
	parts := queryCSV(c, key)
	for i := range parts {
		parts[i] = strings.ToUpper(parts[i])
	}
	return parts
}
