package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Helper functions shared across handlers

const defaultListLimit = 100

// pagination reads the skip/limit query parameters. Limit defaults to 100;
// no upper bound is enforced.
func pagination(c *gin.Context) (offset, limit int) {
	offset, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 0 {
		limit = defaultListLimit
	}
	return offset, limit
}

// entityID parses the numeric {id} path parameter. A malformed id cannot
// match any row, so it is reported the same way as a missing one.
func entityID(c *gin.Context, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return 0, false
	}
	return uint(id), true
}

// respondFetchError maps a failed row fetch to a response: 404 only for a
// missing row, 500 for any other storage error.
func respondFetchError(c *gin.Context, err error, notFound, failed string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": failed})
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
