package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/taskodos/taskodos/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

// Client is a thin HTTP client for the taskodos REST API, used by the
// command line tool.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client
func NewClient() *Client {
	baseURL := os.Getenv("TASKODOS_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response body
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// GoalPayload carries goal fields for create and update requests. Nil
// pointers are omitted from the JSON body, so updates stay partial.
type GoalPayload struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// TodoPayload carries todo fields for create and update requests.
type TodoPayload struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	GoalID      *uint      `json:"goal_id,omitempty"`
}

// Stats mirrors the /api/stats response.
type Stats struct {
	Goals struct {
		Total     int64 `json:"total"`
		Active    int64 `json:"active"`
		Completed int64 `json:"completed"`
	} `json:"goals"`
	Todos struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
		Pending   int64 `json:"pending"`
	} `json:"todos"`
	CalendarEvents int64 `json:"calendar_events"`
}

func (c *Client) ListGoals() ([]models.Goal, error) {
	data, err := c.makeRequest(http.MethodGet, "/api/goals", nil)
	if err != nil {
		return nil, err
	}
	var goals []models.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return goals, nil
}

func (c *Client) CreateGoal(payload GoalPayload) (*models.Goal, error) {
	data, err := c.makeRequest(http.MethodPost, "/api/goals", payload)
	if err != nil {
		return nil, err
	}
	var goal models.Goal
	if err := json.Unmarshal(data, &goal); err != nil {
		return nil, fmt.Errorf("failed to decode goal: %w", err)
	}
	return &goal, nil
}

func (c *Client) UpdateGoal(id uint, payload GoalPayload) (*models.Goal, error) {
	data, err := c.makeRequest(http.MethodPut, fmt.Sprintf("/api/goals/%d", id), payload)
	if err != nil {
		return nil, err
	}
	var goal models.Goal
	if err := json.Unmarshal(data, &goal); err != nil {
		return nil, fmt.Errorf("failed to decode goal: %w", err)
	}
	return &goal, nil
}

func (c *Client) DeleteGoal(id uint) error {
	_, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/api/goals/%d", id), nil)
	return err
}

func (c *Client) ListTodos() ([]models.Todo, error) {
	data, err := c.makeRequest(http.MethodGet, "/api/todos", nil)
	if err != nil {
		return nil, err
	}
	var todos []models.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}
	return todos, nil
}

func (c *Client) CreateTodo(payload TodoPayload) (*models.Todo, error) {
	data, err := c.makeRequest(http.MethodPost, "/api/todos", payload)
	if err != nil {
		return nil, err
	}
	var todo models.Todo
	if err := json.Unmarshal(data, &todo); err != nil {
		return nil, fmt.Errorf("failed to decode todo: %w", err)
	}
	return &todo, nil
}

func (c *Client) UpdateTodo(id uint, payload TodoPayload) (*models.Todo, error) {
	data, err := c.makeRequest(http.MethodPut, fmt.Sprintf("/api/todos/%d", id), payload)
	if err != nil {
		return nil, err
	}
	var todo models.Todo
	if err := json.Unmarshal(data, &todo); err != nil {
		return nil, fmt.Errorf("failed to decode todo: %w", err)
	}
	return &todo, nil
}

func (c *Client) DeleteTodo(id uint) error {
	_, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil)
	return err
}

// ListEvents lists calendar events, optionally windowed by the inclusive
// start/end filters. Empty strings skip the corresponding filter.
func (c *Client) ListEvents(startDate, endDate string) ([]models.CalendarEvent, error) {
	endpoint := "/api/calendar"
	sep := "?"
	if startDate != "" {
		endpoint += sep + "start_date=" + startDate
		sep = "&"
	}
	if endDate != "" {
		endpoint += sep + "end_date=" + endDate
	}

	data, err := c.makeRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var events []models.CalendarEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode calendar events: %w", err)
	}
	return events, nil
}

func (c *Client) GetStats() (*Stats, error) {
	data, err := c.makeRequest(http.MethodGet, "/api/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &stats, nil
}
