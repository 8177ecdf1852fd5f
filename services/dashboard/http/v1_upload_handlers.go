package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

// handleV1Upload replaces the session's dataset with the uploaded file
// POST /api/v1/upload (multipart field "file")
func (s *Server) handleV1Upload(c *gin.Context) {
	status, table, err := s.readUpload(c)
	if err != nil {
		respondError(c, s.rejectUpload(err), err)
		return
	}
	if status == trips.StatusWaiting {
		respondWaiting(c)
		return
	}

	sess := s.acceptUpload(c, table)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"state":     trips.StatusReady.String(),
			"rows":      table.Len(),
			"dropped":   table.Dropped,
			"columns":   table.Columns(),
			"options":   sess.Options,
			"selection": sess.Selection,
		},
		"meta": gin.H{
			"source":      table.Source,
			"uploaded_at": sess.UploadedAt.UTC().Format(time.RFC3339),
		},
	})
}

// handleV1DeleteSession discards the caller's dataset
// DELETE /api/v1/session
func (s *Server) handleV1DeleteSession(c *gin.Context) {
	deleted := false
	if id := s.sessionID(c, false); id != "" {
		deleted = s.store.Delete(id)
	}
	s.clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"deleted": deleted},
	})
}
