package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richard-gotts/task-manager/internal/dates"
	"github.com/richard-gotts/task-manager/internal/report"
	"github.com/richard-gotts/task-manager/internal/tasks"
)

// taskView is the JSON shape of a task. Dates go out in the same
// YYYY-MM-DD form they are stored in; overdue is derived per request,
// never stored.
type taskView struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"due_date"`
	AssignedDate string `json:"assigned_date"`
	Completed    bool   `json:"completed"`
	Overdue      bool   `json:"overdue"`
}

func (s *Server) view(t tasks.Task) taskView {
	return taskView{
		ID:           t.ID,
		Username:     t.Username,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      dates.Format(t.DueDate),
		AssignedDate: dates.Format(t.AssignedDate),
		Completed:    t.Completed,
		Overdue:      tasks.IsOverdue(t, s.today()),
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleOverview(c *gin.Context) {
	summary := report.GlobalSummary(s.tasks.All(), s.today())
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"overview": summary,
	})
}

func (s *Server) handleUsers(c *gin.Context) {
	summaries := report.PerUserSummary(s.tasks.All(), s.users.Usernames(), s.today())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   summaries,
		"count":   len(summaries),
	})
}

func (s *Server) handleTasks(c *gin.Context) {
	username := c.Query("username")

	list := s.tasks.All()
	views := make([]taskView, 0, len(list))
	for _, t := range list {
		if username != "" && t.Username != username {
			continue
		}
		views = append(views, s.view(t))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   views,
		"count":   len(views),
	})
}

func (s *Server) handleTask(c *gin.Context) {
	id := c.Param("id")

	t, ok := s.tasks.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "task not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    s.view(t),
	})
}
