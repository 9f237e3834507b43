package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/storage"
)

// Health reports process liveness and whether the storage backend answers.
func Health(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		estado := "ok"
		codigo := http.StatusOK
		if _, _, err := backend.Get("health_probe"); err != nil {
			estado = "degraded"
			codigo = http.StatusServiceUnavailable
		}
		c.JSON(codigo, gin.H{"status": estado})
	}
}
