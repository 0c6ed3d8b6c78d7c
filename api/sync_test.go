package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/gorm"
)

func allEvents(t *testing.T, db *gorm.DB) []models.CalendarEvent {
	t.Helper()
	var events []models.CalendarEvent
	require.NoError(t, db.Order("id").Find(&events).Error)
	return events
}

func TestGoalCreateWithTargetDateCreatesDerivedEvent(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","description":"the big one","target_date":"2026-10-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	goal := decodeBody[models.Goal](t, w)

	events := allEvents(t, db)
	require.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, "Goal: Ship v1", event.Title)
	assert.Equal(t, "the big one", event.Description)
	assert.True(t, event.EventDate.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, event.GoalID)
	assert.Equal(t, goal.ID, *event.GoalID)
	assert.Nil(t, event.TodoID)
}

func TestGoalCreateWithoutTargetDateCreatesNoEvent(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/goals", `{"title":"Someday"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, allEvents(t, db))
}

func TestGoalUpdateMutatesExistingDerivedEvent(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","description":"original","target_date":"2026-10-01T00:00:00Z"}`)

	w := doJSON(t, r, http.MethodPut, "/api/goals/1",
		`{"title":"Ship v2","target_date":"2026-11-15T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	events := allEvents(t, db)
	require.Len(t, events, 1, "update must not create a second derived event")
	event := events[0]
	assert.Equal(t, "Goal: Ship v2", event.Title)
	assert.True(t, event.EventDate.Equal(time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)))
	// Description is not overwritten on update.
	assert.Equal(t, "original", event.Description)
}

func TestGoalUpdateCreatesDerivedEventWhenMissing(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals", `{"title":"Someday"}`)
	require.Empty(t, allEvents(t, db))

	w := doJSON(t, r, http.MethodPut, "/api/goals/1", `{"target_date":"2026-12-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	events := allEvents(t, db)
	require.Len(t, events, 1)
	assert.Equal(t, "Goal: Someday", events[0].Title)
	require.NotNil(t, events[0].GoalID)
	assert.Equal(t, uint(1), *events[0].GoalID)
	assert.Nil(t, events[0].TodoID)
}

func TestGoalUpdateWithoutDateNeverTouchesEvents(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","target_date":"2026-10-01T00:00:00Z"}`)
	before := allEvents(t, db)
	require.Len(t, before, 1)

	// Omitted target_date.
	doJSON(t, r, http.MethodPut, "/api/goals/1", `{"title":"Renamed"}`)
	// Explicit null target_date behaves the same.
	doJSON(t, r, http.MethodPut, "/api/goals/1", `{"target_date":null}`)

	after := allEvents(t, db)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].Title, after[0].Title)
	assert.True(t, before[0].EventDate.Equal(after[0].EventDate))
}

func TestGoalUpdateExplicitNullClearsTargetDate(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","target_date":"2026-10-01T00:00:00Z"}`)
	before := allEvents(t, db)
	require.Len(t, before, 1)

	w := doJSON(t, r, http.MethodPut, "/api/goals/1", `{"target_date":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	goal := decodeBody[models.Goal](t, w)
	assert.Nil(t, goal.TargetDate)

	var stored models.Goal
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Nil(t, stored.TargetDate)

	// The derived event stays exactly as it was.
	after := allEvents(t, db)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].Title, after[0].Title)
	assert.True(t, before[0].EventDate.Equal(after[0].EventDate))
}

func TestTodoUpdateExplicitNullUnlinksGoal(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals", `{"title":"Learn Go"}`)
	doJSON(t, r, http.MethodPost, "/api/todos",
		`{"title":"Write tests","goal_id":1,"due_date":"2026-09-15T00:00:00Z"}`)

	w := doJSON(t, r, http.MethodPut, "/api/todos/1", `{"goal_id":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	todo := decodeBody[models.Todo](t, w)
	assert.Nil(t, todo.GoalID)

	var stored models.Todo
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Nil(t, stored.GoalID)

	// Unlinking carries no date, so the derived event keeps its old goal.
	events := allEvents(t, db)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].GoalID)
	assert.Equal(t, uint(1), *events[0].GoalID)
}

func TestTodoUpdateExplicitNullClearsDueDate(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/todos",
		`{"title":"Write tests","due_date":"2026-09-15T00:00:00Z"}`)
	before := allEvents(t, db)
	require.Len(t, before, 1)

	w := doJSON(t, r, http.MethodPut, "/api/todos/1", `{"due_date":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Todo
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Nil(t, stored.DueDate)

	after := allEvents(t, db)
	require.Len(t, after, 1)
	assert.True(t, before[0].EventDate.Equal(after[0].EventDate))
}

func TestGoalDeleteCascadesTodosButNotEvents(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","target_date":"2026-10-01T00:00:00Z"}`)
	doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"step 1","goal_id":1}`)
	doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"step 2","goal_id":1}`)
	doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"unaffiliated"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/goals/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var todos []models.Todo
	require.NoError(t, db.Find(&todos).Error)
	require.Len(t, todos, 1)
	assert.Equal(t, "unaffiliated", todos[0].Title)

	// The derived event survives, still pointing at the deleted goal.
	events := allEvents(t, db)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].GoalID)
	assert.Equal(t, uint(1), *events[0].GoalID)
}

func TestTodoCreateWithDueDateCreatesDerivedEvent(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals", `{"title":"Learn Go"}`)
	w := doJSON(t, r, http.MethodPost, "/api/todos",
		`{"title":"Write tests","description":"table driven","due_date":"2026-09-15T00:00:00Z","goal_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	todo := decodeBody[models.Todo](t, w)

	events := allEvents(t, db)
	require.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, "Todo: Write tests", event.Title)
	assert.Equal(t, "table driven", event.Description)
	assert.True(t, event.EventDate.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, event.TodoID)
	assert.Equal(t, todo.ID, *event.TodoID)
	// The event inherits the todo's goal.
	require.NotNil(t, event.GoalID)
	assert.Equal(t, uint(1), *event.GoalID)
}

func TestTodoCreateWithoutDueDateCreatesNoEvent(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"Whenever"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, allEvents(t, db))
}

func TestTodoUpdateMutatesExistingDerivedEvent(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/todos",
		`{"title":"Write tests","due_date":"2026-09-15T00:00:00Z"}`)

	w := doJSON(t, r, http.MethodPut, "/api/todos/1",
		`{"title":"Write more tests","due_date":"2026-09-20T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	events := allEvents(t, db)
	require.Len(t, events, 1)
	assert.Equal(t, "Todo: Write more tests", events[0].Title)
	assert.True(t, events[0].EventDate.Equal(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))
}

func TestTodoUpdateCreatesDerivedEventWithCurrentGoal(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals", `{"title":"Learn Go"}`)
	doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"Whenever"}`)
	require.Empty(t, allEvents(t, db))

	// The same update attaches the goal and sets the due date: the new
	// derived event must carry the just-updated goal_id.
	w := doJSON(t, r, http.MethodPut, "/api/todos/1",
		`{"goal_id":1,"due_date":"2026-09-15T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	events := allEvents(t, db)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].TodoID)
	assert.Equal(t, uint(1), *events[0].TodoID)
	require.NotNil(t, events[0].GoalID)
	assert.Equal(t, uint(1), *events[0].GoalID)
}

func TestTodoUpdateWithoutDateNeverTouchesEvents(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/todos",
		`{"title":"Write tests","due_date":"2026-09-15T00:00:00Z"}`)
	before := allEvents(t, db)
	require.Len(t, before, 1)

	doJSON(t, r, http.MethodPut, "/api/todos/1", `{"completed":true}`)
	doJSON(t, r, http.MethodPut, "/api/todos/1", `{"due_date":null}`)

	after := allEvents(t, db)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].Title, after[0].Title)
	assert.True(t, before[0].EventDate.Equal(after[0].EventDate))
}

func TestTodoDeleteLeavesDerivedEvent(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/todos",
		`{"title":"Write tests","due_date":"2026-09-15T00:00:00Z"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/todos/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	events := allEvents(t, db)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].TodoID)
	assert.Equal(t, uint(1), *events[0].TodoID)
}

func TestUserDeletedDerivedEventIsRecreatedOnNextDateWrite(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","target_date":"2026-10-01T00:00:00Z"}`)
	events := allEvents(t, db)
	require.Len(t, events, 1)

	// The user removes the derived event through the calendar surface.
	w := doJSON(t, r, http.MethodDelete, "/api/calendar/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, allEvents(t, db))

	// An update without a date does not bring it back.
	doJSON(t, r, http.MethodPut, "/api/goals/1", `{"title":"Ship v1.1"}`)
	require.Empty(t, allEvents(t, db))

	// A date-carrying update finds none and creates a fresh one.
	doJSON(t, r, http.MethodPut, "/api/goals/1", `{"target_date":"2026-10-02T00:00:00Z"}`)
	events = allEvents(t, db)
	require.Len(t, events, 1)
	assert.Equal(t, "Goal: Ship v1.1", events[0].Title)
}

func TestDuplicateDerivedEventsUpdateOldestDeterministically(t *testing.T) {
	r, db := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Ship v1","target_date":"2026-10-01T00:00:00Z"}`)
	// A manually created event satisfying the derived-event predicate; the
	// store does not forbid duplicates.
	doJSON(t, r, http.MethodPost, "/api/calendar",
		`{"title":"manual twin","event_date":"2026-10-03T00:00:00Z","goal_id":1}`)

	doJSON(t, r, http.MethodPut, "/api/goals/1", `{"target_date":"2026-10-05T00:00:00Z"}`)

	events := allEvents(t, db)
	require.Len(t, events, 2)
	// The oldest match (lowest id) is the one updated.
	assert.Equal(t, "Goal: Ship v1", events[0].Title)
	assert.True(t, events[0].EventDate.Equal(time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "manual twin", events[1].Title)
	assert.True(t, events[1].EventDate.Equal(time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)))
}
