package handler

import (
	"database/sql"
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	DB        *sql.DB
	StartTime time.Time
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{DB: db, StartTime: time.Now()}
}

func (h *HealthHandler) Status(c *gin.Context) {
	dbStatus := "up"
	status := http.StatusOK
	if err := h.DB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":         dbStatus,
		"uptime_seconds": int64(time.Since(h.StartTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
