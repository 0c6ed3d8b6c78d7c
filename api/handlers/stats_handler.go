package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/gorm"
)

// StatsHandler serves the /api/stats aggregation endpoint.
type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

// GoalStats summary counts for goals
type GoalStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

// TodoStats summary counts for todos
type TodoStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

// StatsResponse aggregate counts across all three entities
type StatsResponse struct {
	Goals          GoalStats `json:"goals"`
	Todos          TodoStats `json:"todos"`
	CalendarEvents int64     `json:"calendar_events"`
}

// GetStats computes summary counts across goals, todos and calendar events.
// Pure derived computation, nothing is written.
func (h *StatsHandler) GetStats(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())
	var stats StatsResponse

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Goals.Total, db.Model(&models.Goal{})},
		{&stats.Goals.Active, db.Model(&models.Goal{}).Where("status = ?", models.GoalStatusActive)},
		{&stats.Goals.Completed, db.Model(&models.Goal{}).Where("status = ?", models.GoalStatusCompleted)},
		{&stats.Todos.Total, db.Model(&models.Todo{})},
		{&stats.Todos.Completed, db.Model(&models.Todo{}).Where("completed = ?", true)},
		{&stats.Todos.Pending, db.Model(&models.Todo{}).Where("completed = ?", false)},
		{&stats.CalendarEvents, db.Model(&models.CalendarEvent{})},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
	}

	c.JSON(http.StatusOK, stats)
}
