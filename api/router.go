package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskodos/taskodos/api/handlers"
	"github.com/taskodos/taskodos/pkg/config"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine with all middleware and routes. The
// database handle is injected into each handler; no handler reaches for
// ambient state.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	goals := handlers.NewGoalHandler(db)
	todos := handlers.NewTodoHandler(db)
	calendar := handlers.NewCalendarHandler(db)
	stats := handlers.NewStatsHandler(db)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/goals", goals.ListGoals)
		apiGroup.POST("/goals", goals.CreateGoal)
		apiGroup.GET("/goals/:id", goals.GetGoal)
		apiGroup.PUT("/goals/:id", goals.UpdateGoal)
		apiGroup.DELETE("/goals/:id", goals.DeleteGoal)

		apiGroup.GET("/todos", todos.ListTodos)
		apiGroup.POST("/todos", todos.CreateTodo)
		apiGroup.GET("/todos/:id", todos.GetTodo)
		apiGroup.PUT("/todos/:id", todos.UpdateTodo)
		apiGroup.DELETE("/todos/:id", todos.DeleteTodo)

		apiGroup.GET("/calendar", calendar.ListEvents)
		apiGroup.POST("/calendar", calendar.CreateEvent)
		apiGroup.GET("/calendar/:id", calendar.GetEvent)
		apiGroup.PUT("/calendar/:id", calendar.UpdateEvent)
		apiGroup.DELETE("/calendar/:id", calendar.DeleteEvent)

		apiGroup.GET("/stats", stats.GetStats)
	}

	return r
}
