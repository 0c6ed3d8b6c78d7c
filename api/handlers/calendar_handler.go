package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/gorm"
)

// CalendarHandler serves the /api/calendar endpoints. Derived events created
// by goal/todo writes and manually created events are served alike.
type CalendarHandler struct {
	db *gorm.DB
}

func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{db: db}
}

// CreateCalendarEventInput DTO for creating a calendar event. event_date is
// the one field that is never optional.
type CreateCalendarEventInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	TodoID      *uint     `json:"todo_id"`
	GoalID      *uint     `json:"goal_id"`
}

// UpdateCalendarEventInput DTO for partially updating a calendar event. An
// explicit null todo_id or goal_id clears the reference. event_date is a
// not-null column, so a null there is ignored like an omitted field.
type UpdateCalendarEventInput struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	EventDate   *time.Time     `json:"event_date"`
	TodoID      Optional[uint] `json:"todo_id"`
	GoalID      Optional[uint] `json:"goal_id"`
}

// ListEvents retrieves calendar events, optionally windowed by the inclusive
// start_date/end_date query parameters. Events are returned ordered by
// event_date.
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.CalendarEvent{})

	if s := c.Query("start_date"); s != "" {
		start, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid start_date"})
			return
		}
		query = query.Where("event_date >= ?", start)
	}
	if s := c.Query("end_date"); s != "" {
		end, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid end_date"})
			return
		}
		query = query.Where("event_date <= ?", end)
	}

	var events []models.CalendarEvent
	if err := query.Order("event_date").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve calendar events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent retrieves a single calendar event by its ID.
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	id, ok := entityID(c, "Calendar event not found")
	if !ok {
		return
	}

	var event models.CalendarEvent
	if err := h.db.WithContext(c.Request.Context()).First(&event, id).Error; err != nil {
		respondFetchError(c, err, "Calendar event not found", "Failed to retrieve calendar event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent creates a calendar event directly through the calendar
// surface.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var input CreateCalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	event := models.CalendarEvent{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		TodoID:      input.TodoID,
		GoalID:      input.GoalID,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create calendar event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent applies a partial update to a calendar event.
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	id, ok := entityID(c, "Calendar event not found")
	if !ok {
		return
	}

	var event models.CalendarEvent
	if err := h.db.WithContext(c.Request.Context()).First(&event, id).Error; err != nil {
		respondFetchError(c, err, "Calendar event not found", "Failed to retrieve calendar event")
		return
	}

	var input UpdateCalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.TodoID.Present {
		event.TodoID = input.TodoID.Value
	}
	if input.GoalID.Present {
		event.GoalID = input.GoalID.Value
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update calendar event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes a calendar event. Deleting a derived event does not
// touch the goal or todo it was derived from.
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	id, ok := entityID(c, "Calendar event not found")
	if !ok {
		return
	}

	var event models.CalendarEvent
	if err := h.db.WithContext(c.Request.Context()).First(&event, id).Error; err != nil {
		respondFetchError(c, err, "Calendar event not found", "Failed to retrieve calendar event")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete calendar event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calendar event deleted successfully"})
}
