package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the JSON API.
// Groups: /api/v1 (upload, session, options, story) and the per-selection
// aggregates under the same prefix.
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware())

	// Dataset lifecycle
	{
		v1.POST("/upload", s.handleV1Upload)
		v1.DELETE("/session", s.handleV1DeleteSession)
		v1.GET("/options", s.handleV1Options)
	}

	// Aggregates - recomputed from scratch on every request
	{
		v1.GET("/dashboard", s.handleV1Dashboard)
		v1.GET("/summary", s.handleV1Summary)
		v1.GET("/hourly", s.handleV1Hourly)
		v1.GET("/weekday", s.handleV1Weekday)
		v1.GET("/geo", s.handleV1Geo)
	}

	v1.GET("/story", s.handleV1Story)
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
