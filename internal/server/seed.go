package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spiten/spiten/internal/seed"
)

// SeedDemoData provisions the built-in demo organizations.
func (s *Server) SeedDemoData(c *gin.Context) {
	result, err := seed.DemoData(c.Request.Context(), s.orgsvc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"message": fmt.Sprintf("Demo data seeded: %d created, %d skipped",
			len(result.Created), len(result.Skipped)),
		"data": result,
	})
}
