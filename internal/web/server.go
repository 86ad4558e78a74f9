// Package web exposes the reporting surface over HTTP: the global
// overview, the per-user breakdown, and the task listing. All routes
// are read-only; mutations stay with the CLI, which is the sole writer
// of the backing files.
package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/richard-gotts/task-manager/internal/dates"
	"github.com/richard-gotts/task-manager/internal/tasks"
)

// UserDirectory is the slice of the user store the handlers read.
type UserDirectory interface {
	Usernames() []string
}

// TaskLister is the slice of the task store the handlers read.
type TaskLister interface {
	All() []tasks.Task
	Find(id string) (tasks.Task, bool)
}

// Server is the task manager web server
type Server struct {
	users  UserDirectory
	tasks  TaskLister
	today  func() time.Time
	router *gin.Engine
}

// NewServer creates a new web server over loaded stores. The stores
// are a startup snapshot: the process is single-writer and the routes
// never mutate.
func NewServer(users UserDirectory, lister TaskLister) *Server {
	router := gin.Default()

	s := &Server{
		users:  users,
		tasks:  lister,
		today:  dates.Today,
		router: router,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/overview", s.handleOverview)
		api.GET("/users", s.handleUsers)
		api.GET("/tasks", s.handleTasks)
		api.GET("/tasks/:id", s.handleTask)
	}

	return s
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
