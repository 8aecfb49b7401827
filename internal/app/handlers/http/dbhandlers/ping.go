// Package dbhandlers contains the storage health-check handler.
package dbhandlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose reachability can be checked, usually the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler serves GET /ping.
type PingHandler struct {
	db Pinger
}

func NewPingHandler(db Pinger) *PingHandler {
	return &PingHandler{db}
}

// Ping answers 503 without a store, 500 when the ping fails and 200 otherwise.
func (h *PingHandler) Ping(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server doesn't use database"})
		return
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
