package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/metrics"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/store"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

var errUploadTooLarge = errors.New("upload too large")

// sessionID returns the caller's session id from the cookie. With create
// set, a missing or foreign id is replaced by a new one and the cookie is
// issued.
func (s *Server) sessionID(c *gin.Context, create bool) string {
	if id, err := c.Cookie(s.cfg.SessionCookie); err == nil && store.ValidID(id) {
		return id
	}
	if !create {
		return ""
	}
	id := store.NewID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cfg.SessionCookie, id, 0, "/", "", false, true)
	return id
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cfg.SessionCookie, "", -1, "/", "", false, true)
}

// session looks up the caller's dataset.
func (s *Server) session(c *gin.Context) (store.Session, bool) {
	id := s.sessionID(c, false)
	if id == "" {
		return store.Session{}, false
	}
	return s.store.Get(id)
}

// readUpload loads the multipart "file" field. A request without a file
// yields StatusWaiting.
func (s *Server) readUpload(c *gin.Context) (trips.Status, trips.Table, error) {
	limit := s.cfg.MaxUploadBytes()
	if c.Request.ContentLength > limit {
		return trips.StatusReady, trips.Table{}, fmt.Errorf("%w: limit is %d MB", errUploadTooLarge, s.cfg.MaxUploadMB)
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return trips.StatusReady, trips.Table{}, fmt.Errorf("%w: limit is %d MB", errUploadTooLarge, s.cfg.MaxUploadMB)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return trips.Load(nil)
		default:
			return trips.StatusReady, trips.Table{}, &trips.MalformedInputError{Err: err}
		}
	}

	f, err := fh.Open()
	if err != nil {
		return trips.StatusReady, trips.Table{}, &trips.MalformedInputError{Source: fh.Filename, Err: err}
	}
	defer f.Close()

	return trips.Load(&trips.Upload{Name: fh.Filename, Body: f})
}

// acceptUpload stores a successfully loaded table in the caller's session
// and records the outcome.
func (s *Server) acceptUpload(c *gin.Context, table trips.Table) store.Session {
	sess := s.store.Put(s.sessionID(c, true), table)
	s.metrics.ObserveUpload(metrics.ResultOK, table.Len(), table.Dropped)
	s.log.Infow("dataset uploaded",
		"source", table.Source,
		"rows", table.Len(),
		"dropped", table.Dropped,
		"rider_types", sess.Options.RiderTypes,
	)
	return sess
}

// rejectUpload records a failed upload and returns the HTTP status for it.
func (s *Server) rejectUpload(err error) int {
	result := metrics.ResultMalformed
	var missing *trips.MissingColumnError
	switch {
	case errors.Is(err, errUploadTooLarge):
		result = metrics.ResultTooLarge
	case errors.As(err, &missing):
		result = metrics.ResultMissingColumns
	}
	s.metrics.ObserveUpload(result, 0, 0)
	return errorStatus(err)
}

// selection merges query values over the session's last selection and
// validates the result.
func (s *Server) selection(c *gin.Context, sess store.Session) (trips.Selection, error) {
	var q trips.Selection
	if err := c.ShouldBindQuery(&q); err != nil {
		return trips.Selection{}, err
	}

	sel := sess.Selection
	if q.Rider != "" {
		sel.Rider = q.Rider
	}
	if q.Day != "" {
		sel.Day = q.Day
	}
	if q.Month != "" {
		sel.Month = q.Month
	}

	sel, err := sess.Options.Resolve(sel)
	if err != nil {
		return trips.Selection{}, err
	}
	s.store.Select(sess.ID, sel)
	return sel, nil
}

// compute runs a full recomputation for the selection.
func (s *Server) compute(sess store.Session, sel trips.Selection) trips.Dashboard {
	start := time.Now()
	d := trips.Compute(sess.Table, sel)
	s.metrics.ObserveRecompute(time.Since(start))
	return d
}

func errorStatus(err error) int {
	var (
		malformed *trips.MalformedInputError
		missing   *trips.MissingColumnError
		invalid   *trips.InvalidSelectionError
	)
	switch {
	case errors.Is(err, errUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &malformed), errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondWaiting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"state":   trips.StatusWaiting.String(),
			"message": trips.WaitingMessage,
		},
	})
}
