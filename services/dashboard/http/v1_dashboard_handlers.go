package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/store"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

// dashboardFor resolves the request's selection against the caller's session
// and recomputes. It writes the response itself and reports false when the
// session has no data or the selection is invalid.
func (s *Server) dashboardFor(c *gin.Context) (store.Session, trips.Dashboard, bool) {
	sess, ok := s.session(c)
	if !ok {
		respondWaiting(c)
		return store.Session{}, trips.Dashboard{}, false
	}

	sel, err := s.selection(c, sess)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return store.Session{}, trips.Dashboard{}, false
	}

	return sess, s.compute(sess, sel), true
}

// handleV1Options returns the values the filter controls may take
// GET /api/v1/options
func (s *Server) handleV1Options(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		respondWaiting(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": sess.Options,
		"meta": gin.H{
			"selection": sess.Selection,
		},
	})
}

// handleV1Dashboard returns every aggregate for the selection
// GET /api/v1/dashboard?rider=&day=&month=
func (s *Server) handleV1Dashboard(c *gin.Context) {
	sess, d, ok := s.dashboardFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": d,
		"meta": gin.H{
			"source":       sess.Table.Source,
			"rows":         sess.Table.Len(),
			"dropped":      sess.Table.Dropped,
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleV1Summary returns total rides and mean duration
// GET /api/v1/summary
func (s *Server) handleV1Summary(c *gin.Context) {
	_, d, ok := s.dashboardFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": d.Summary,
		"meta": gin.H{
			"selection": d.Selection,
			"warnings":  d.Warnings,
		},
	})
}

// handleV1Hourly returns ride counts for hours 0..23
// GET /api/v1/hourly
func (s *Server) handleV1Hourly(c *gin.Context) {
	_, d, ok := s.dashboardFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": d.Hourly,
		"meta": gin.H{
			"selection": d.Selection,
			"count":     len(d.Hourly),
			"warnings":  d.Warnings,
		},
	})
}

// handleV1Weekday returns ride counts Monday through Sunday
// GET /api/v1/weekday
func (s *Server) handleV1Weekday(c *gin.Context) {
	_, d, ok := s.dashboardFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": d.Weekday,
		"meta": gin.H{
			"selection": d.Selection,
			"count":     len(d.Weekday),
			"warnings":  d.Warnings,
		},
	})
}

// handleV1Geo returns up to MaxGeoPoints start coordinates
// GET /api/v1/geo
func (s *Server) handleV1Geo(c *gin.Context) {
	_, d, ok := s.dashboardFor(c)
	if !ok {
		return
	}

	meta := gin.H{
		"selection": d.Selection,
		"count":     len(d.Geo.Points),
		"limit":     trips.MaxGeoPoints,
		"warnings":  d.Warnings,
	}
	if !d.Geo.Available {
		meta["message"] = s.story.MapUnavailable
	}

	c.JSON(http.StatusOK, gin.H{
		"data": d.Geo,
		"meta": meta,
	})
}

// handleV1Story returns the narrative text
// GET /api/v1/story
func (s *Server) handleV1Story(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": s.story,
	})
}
