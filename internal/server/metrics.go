package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Metrics records a usage snapshot and returns the current counts.
func (s *Server) Metrics(c *gin.Context) {
	counts, err := s.metricssvc.Record(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   counts,
	})
}
