package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/present"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/story"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

// pageData feeds templates/index.html.
type pageData struct {
	Story     story.Story
	State     string
	Message   string
	Error     string
	Source    string
	Rows      string
	Dropped   string
	Options   trips.Options
	Selection trips.Selection
	Panel     *present.Panel
}

func (s *Server) waitingPage() pageData {
	return pageData{
		Story:   s.story,
		State:   trips.StatusWaiting.String(),
		Message: trips.WaitingMessage,
	}
}

// handlePage renders the dashboard for the session's dataset
// GET /?rider=&day=&month=
func (s *Server) handlePage(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		c.HTML(http.StatusOK, "index.html", s.waitingPage())
		return
	}

	data := pageData{
		Story:     s.story,
		State:     trips.StatusReady.String(),
		Source:    sess.Table.Source,
		Rows:      present.FormatCount(sess.Table.Len()),
		Dropped:   present.FormatCount(sess.Table.Dropped),
		Options:   sess.Options,
		Selection: sess.Selection,
	}

	sel, err := s.selection(c, sess)
	if err != nil {
		_ = c.Error(err)
		data.Error = err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	panel := present.Build(s.compute(sess, sel))
	data.Selection = sel
	data.Panel = &panel
	c.HTML(http.StatusOK, "index.html", data)
}

// handlePageUpload accepts the upload form and redirects to the dashboard
// POST /upload
func (s *Server) handlePageUpload(c *gin.Context) {
	status, table, err := s.readUpload(c)
	if err != nil {
		code := s.rejectUpload(err)
		_ = c.Error(err)
		data := s.waitingPage()
		data.Error = err.Error()
		c.HTML(code, "index.html", data)
		return
	}
	if status == trips.StatusReady {
		s.acceptUpload(c, table)
	}
	c.Redirect(http.StatusSeeOther, "/")
}
