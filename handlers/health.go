package handlers

import (
	"net/http"

	"course_catalog/db"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store db.Store
}

func NewHealthHandler(store db.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Store unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
